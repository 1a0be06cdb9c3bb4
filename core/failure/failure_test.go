// File: failure_test.go
// Title: Failure Value Tests
// Description: Tests for failure construction, default codes, rendering,
//              immutability guarantees, structural equality and JSON output.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-08
// Modified: 2025-03-08
//
// Change History:
// - 2025-03-08 v0.1.0: Initial test coverage for failure values

package failure

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestConstructorDefaults(t *testing.T) {
	// Every constructor without WithCode yields exactly the table default
	tests := []struct {
		name     string
		failure  *Failure
		wantKind Kind
		wantCode Code
	}{
		{"validation", NewValidation("invalid input"), KindValidation, "VALIDATION_ERROR"},
		{"auth", NewAuth("not authorized"), KindAuth, "AUTH_ERROR"},
		{"database", NewDatabase("query failed"), KindDatabase, "DB_ERROR"},
		{"network", NewNetwork("request failed"), KindNetwork, "NETWORK_ERROR"},
		{"server", NewServer("internal server error", 500), KindServer, "SERVER_ERROR"},
		{"connection", NewConnection("host unreachable"), KindConnection, "CONNECTION_ERROR"},
		{"timeout", NewTimeout("deadline exceeded"), KindTimeout, "TIMEOUT_ERROR"},
		{"application", NewApplication("something broke"), KindApplication, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Kind() != tt.wantKind {
				t.Errorf("Kind() = %s, want %s", tt.failure.Kind(), tt.wantKind)
			}
			if tt.failure.Code() != tt.wantCode {
				t.Errorf("Code() = %q, want %q", tt.failure.Code(), tt.wantCode)
			}
			if tt.failure.Timestamp().IsZero() {
				t.Error("Timestamp() should not be zero")
			}
			if !tt.failure.HasTrace() {
				t.Error("HasTrace() = false, trace should be captured at construction")
			}
		})
	}
}

func TestWithCodeOverride(t *testing.T) {
	f := NewDatabase("constraint violated", WithCode("DB_CONSTRAINT"))
	if f.Code() != "DB_CONSTRAINT" {
		t.Errorf("Code() = %q, want %q", f.Code(), "DB_CONSTRAINT")
	}
}

func TestServerAlwaysHasStatus(t *testing.T) {
	f := NewServer("internal server error", 500)
	status, ok := f.StatusCode()
	if !ok {
		t.Fatal("StatusCode() reported absent, Server always implies a status")
	}
	if status != 500 {
		t.Errorf("StatusCode() = %d, want 500", status)
	}
}

func TestConnectionNeverHasStatus(t *testing.T) {
	// Even an explicit WithStatusCode is discarded for Connection
	f := NewConnection("host unreachable", WithStatusCode(502))
	if _, ok := f.StatusCode(); ok {
		t.Error("StatusCode() reported present, Connection never carries a status")
	}
}

func TestNetworkOptionalStatus(t *testing.T) {
	plain := NewNetwork("request failed")
	if _, ok := plain.StatusCode(); ok {
		t.Error("StatusCode() present without WithStatusCode")
	}

	with := NewNetwork("request failed", WithStatusCode(503))
	if status, ok := with.StatusCode(); !ok || status != 503 {
		t.Errorf("StatusCode() = (%d, %v), want (503, true)", status, ok)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name    string
		failure *Failure
		want    string
	}{
		{
			"validation",
			NewValidation("email is required"),
			"Validation: VALIDATION_ERROR - email is required",
		},
		{
			"server with status",
			NewServer("internal server error", 500),
			"Server: SERVER_ERROR - internal server error (Status: 500)",
		},
		{
			"connection without status",
			NewConnection("host unreachable"),
			"Connection: CONNECTION_ERROR - host unreachable (Status: absent)",
		},
		{
			"network without status",
			NewNetwork("request failed"),
			"Network: NETWORK_ERROR - request failed (Status: absent)",
		},
		{
			"application without code",
			NewApplication("something broke"),
			"Application: something broke",
		},
		{
			"application with code",
			NewApplication("bad state", WithCode("APP_STATE")),
			"Application: APP_STATE - bad state",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.failure.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFieldErrorsDefensiveCopy(t *testing.T) {
	fields := map[string]string{"email": "required"}
	f := NewValidation("invalid input", WithFieldErrors(fields))

	// Mutating the input map after construction must not affect the failure
	fields["email"] = "changed"
	if got := f.FieldErrors()["email"]; got != "required" {
		t.Errorf("FieldErrors()[email] = %q after input mutation, want %q", got, "required")
	}

	// Mutating the returned map must not affect the failure
	out := f.FieldErrors()
	out["email"] = "changed"
	if got := f.FieldErrors()["email"]; got != "required" {
		t.Errorf("FieldErrors()[email] = %q after output mutation, want %q", got, "required")
	}
}

func TestStructuralEquality(t *testing.T) {
	a := NewValidation("email is required")
	b := NewValidation("email is required")
	c := NewValidation("name is required")

	if !errors.Is(a, b) {
		t.Error("errors.Is(a, b) = false for structurally equal failures")
	}
	if errors.Is(a, c) {
		t.Error("errors.Is(a, c) = true for different messages")
	}

	d := NewValidation("email is required", WithCode("VALIDATION_EMAIL"))
	if errors.Is(a, d) {
		t.Error("errors.Is(a, d) = true for different codes")
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("socket closed")
	f := NewConnection("host unreachable", WithCause(cause))

	if !errors.Is(f, cause) {
		t.Error("errors.Is(f, cause) = false, cause should be reachable via Unwrap")
	}
}

func TestWithoutTrace(t *testing.T) {
	f := NewAuth("not authorized", WithoutTrace())
	if f.HasTrace() {
		t.Error("HasTrace() = true after WithoutTrace")
	}
	if f.Trace() != nil {
		t.Error("Trace() != nil after WithoutTrace")
	}
}

func TestTraceDefensiveCopy(t *testing.T) {
	f := NewAuth("not authorized")
	trace := f.Trace()
	if len(trace) == 0 {
		t.Fatal("Trace() is empty")
	}

	trace[0].Function = "mutated"
	if f.Trace()[0].Function == "mutated" {
		t.Error("Trace() returned the internal slice, want a copy")
	}
}

func TestMarshalJSON(t *testing.T) {
	f := NewServer("internal server error", 500,
		WithFieldErrors(map[string]string{"field": "bad"}))

	raw, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	if data["kind"] != "Server" {
		t.Errorf("kind = %v, want Server", data["kind"])
	}
	if data["code"] != "SERVER_ERROR" {
		t.Errorf("code = %v, want SERVER_ERROR", data["code"])
	}
	if data["status_code"] != float64(500) {
		t.Errorf("status_code = %v, want 500", data["status_code"])
	}
	if _, ok := data["stack_trace"]; !ok {
		t.Error("stack_trace missing from JSON output")
	}
}

func TestErrorInterface(t *testing.T) {
	f := NewAuth("not authorized")
	if f.Error() != "not authorized" {
		t.Errorf("Error() = %q, want %q", f.Error(), "not authorized")
	}

	var nilFailure *Failure
	if nilFailure.Error() != "<nil>" {
		t.Errorf("nil Failure Error() = %q, want %q", nilFailure.Error(), "<nil>")
	}
}

func TestTraceContainsConstructor(t *testing.T) {
	f := NewDatabase("query failed")
	found := false
	for _, frame := range f.Trace() {
		if strings.Contains(frame.Function, "TestTraceContainsConstructor") {
			found = true
			break
		}
	}
	if !found {
		t.Error("captured trace does not contain the raising function")
	}
}
