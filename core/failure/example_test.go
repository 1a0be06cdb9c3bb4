// File: example_test.go
// Title: Failure Module Examples
// Description: Example usage patterns for the failure taxonomy, covering
//              construction, rendering, normalization and family matching.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-08
// Modified: 2025-03-08
//
// Change History:
// - 2025-03-08 v0.1.0: Initial implementation with taxonomy examples

package failure

import (
	"errors"
	"fmt"
)

// ExampleNewValidation demonstrates a validation failure with per-field messages
func ExampleNewValidation() {
	err := NewValidation("invalid registration input",
		WithFieldErrors(map[string]string{"email": "required"}))

	fmt.Println(err.String())
	fmt.Println("Code:", err.Code())
	fmt.Println("Field email:", err.FieldErrors()["email"])

	// Output:
	// Validation: VALIDATION_ERROR - invalid registration input
	// Code: VALIDATION_ERROR
	// Field email: required
}

// ExampleNewServer demonstrates the network-family rendering with a status
func ExampleNewServer() {
	err := NewServer("internal server error", 500)

	fmt.Println(err.String())

	// Output:
	// Server: SERVER_ERROR - internal server error (Status: 500)
}

// ExampleNewConnection demonstrates that connection failures never carry a status
func ExampleNewConnection() {
	err := NewConnection("connection refused: host is offline")

	fmt.Println(err.String())

	// Output:
	// Connection: CONNECTION_ERROR - connection refused: host is offline (Status: absent)
}

// ExampleEnsure demonstrates normalizing an error from outside the taxonomy
func ExampleEnsure() {
	raw := errors.New("disk on fire")

	f := Ensure(raw)
	fmt.Println("Kind:", f.Kind())
	fmt.Println("Message:", f.Message())
	fmt.Println("Cause preserved:", errors.Is(f, raw))

	// Output:
	// Kind: Application
	// Message: unhandled error: disk on fire
	// Cause preserved: true
}

// ExampleIsKind demonstrates family-aware matching
func ExampleIsKind() {
	err := NewServer("internal server error", 500)

	fmt.Println("is Server:", IsKind(err, KindServer))
	fmt.Println("is Network:", IsKind(err, KindNetwork))
	fmt.Println("is Auth:", IsKind(err, KindAuth))

	// Output:
	// is Server: true
	// is Network: true
	// is Auth: false
}
