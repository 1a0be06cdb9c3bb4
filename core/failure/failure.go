// File: failure.go
// Title: Core Failure Implementation
// Description: Implements the immutable Failure value shared by every kind of
//              the taxonomy. A failure is constructed once, at the point an
//              operation cannot satisfy its contract, and is read-only for
//              every layer it passes through afterwards. Construction captures
//              a stack trace; functional options supply kind-specific fields
//              and code overrides.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-08
// Modified: 2025-03-08
//
// Change History:
// - 2025-03-08 v0.1.0: Initial implementation with per-kind constructors

package failure

import (
	"encoding/json"
	"fmt"
	"runtime"
	"sync"
	"time"
)

// Failure represents a single immutable failure value tagged with exactly one
// kind from the closed taxonomy
type Failure struct {
	kind    Kind
	code    Code
	message string

	// Network-family status; hasStatus distinguishes 0 from absent
	statusCode int
	hasStatus  bool

	// Validation per-field messages; keys are field names
	fieldErrors map[string]string

	timestamp time.Time
	trace     []Frame
	cause     error
}

// Frame represents a single frame in a captured stack trace
type Frame struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
}

// Stack capture limits and pooling
const (
	// MaxTraceFrames limits the number of stack frames captured at construction
	MaxTraceFrames = 20
)

var (
	// framePool pools frame slices for efficient memory reuse during capture
	framePool = sync.Pool{
		New: func() interface{} {
			return make([]Frame, 0, MaxTraceFrames)
		},
	}
)

// Option configures a Failure during construction. Options are applied only
// inside the constructors; a Failure is immutable afterwards.
type Option func(*Failure)

// WithCode overrides the kind's default code
func WithCode(code Code) Option {
	return func(f *Failure) { f.code = code }
}

// WithStatusCode attaches a numeric status to a network-family failure.
// Connection failures discard it; they never carry a status.
func WithStatusCode(status int) Option {
	return func(f *Failure) {
		f.statusCode = status
		f.hasStatus = true
	}
}

// WithFieldErrors attaches per-field validation messages. The map is
// defensively cloned.
func WithFieldErrors(fields map[string]string) Option {
	return func(f *Failure) { f.fieldErrors = cloneFields(fields) }
}

// WithCause records the underlying error for errors.Is / errors.As via Unwrap
func WithCause(cause error) Option {
	return func(f *Failure) { f.cause = cause }
}

// WithoutTrace drops the stack trace captured at construction
func WithoutTrace() Option {
	return func(f *Failure) { f.trace = nil }
}

// newFailure is the common constructor; skip counts the frames between the
// caller of the exported constructor and runtime.Caller.
func newFailure(kind Kind, message string, opts ...Option) *Failure {
	f := &Failure{
		kind:      kind,
		code:      kind.DefaultCode(),
		message:   message,
		timestamp: time.Now(),
		trace:     captureTrace(3),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewApplication creates an Application failure, the fallback kind.
// It has no default code; supply one via WithCode if needed.
func NewApplication(message string, opts ...Option) *Failure {
	return newFailure(KindApplication, message, opts...)
}

// NewValidation creates a Validation failure. Per-field messages are attached
// via WithFieldErrors.
func NewValidation(message string, opts ...Option) *Failure {
	return newFailure(KindValidation, message, opts...)
}

// NewAuth creates an Auth failure
func NewAuth(message string, opts ...Option) *Failure {
	return newFailure(KindAuth, message, opts...)
}

// NewDatabase creates a Database failure
func NewDatabase(message string, opts ...Option) *Failure {
	return newFailure(KindDatabase, message, opts...)
}

// NewNetwork creates a Network failure; the status code is optional
func NewNetwork(message string, opts ...Option) *Failure {
	return newFailure(KindNetwork, message, opts...)
}

// NewServer creates a Server failure. Server failures always imply a status
// code, so it is part of the signature rather than an option.
func NewServer(message string, statusCode int, opts ...Option) *Failure {
	f := newFailure(KindServer, message, opts...)
	f.statusCode = statusCode
	f.hasStatus = true
	return f
}

// NewConnection creates a Connection failure. Connection failures never carry
// a status code; any WithStatusCode option is discarded.
func NewConnection(message string, opts ...Option) *Failure {
	f := newFailure(KindConnection, message, opts...)
	f.statusCode = 0
	f.hasStatus = false
	return f
}

// NewTimeout creates a Timeout failure, the network-family kind for elapsed
// deadlines
func NewTimeout(message string, opts ...Option) *Failure {
	return newFailure(KindTimeout, message, opts...)
}

// Error implements the standard error interface
func (f *Failure) Error() string {
	if f == nil {
		return "<nil>"
	}
	return f.message
}

// Unwrap returns the underlying cause for error unwrapping
func (f *Failure) Unwrap() error {
	return f.cause
}

// Is implements structural equality for errors.Is: two failures are equal
// when kind, code and message match. Reference equality is never relied on.
func (f *Failure) Is(target error) bool {
	other, ok := target.(*Failure)
	if !ok {
		return false
	}
	return f.kind == other.kind && f.code == other.code && f.message == other.message
}

// Kind returns the kind tag of the failure
func (f *Failure) Kind() Kind {
	return f.kind
}

// Code returns the stable failure code
func (f *Failure) Code() Code {
	return f.code
}

// Message returns the human-readable description
func (f *Failure) Message() string {
	return f.message
}

// StatusCode returns the numeric status and whether one is present
func (f *Failure) StatusCode() (int, bool) {
	return f.statusCode, f.hasStatus
}

// FieldErrors returns a defensive copy of the per-field validation messages
func (f *Failure) FieldErrors() map[string]string {
	return cloneFields(f.fieldErrors)
}

// Timestamp returns when the failure was constructed
func (f *Failure) Timestamp() time.Time {
	return f.timestamp
}

// Trace returns a defensive copy of the captured stack trace, or nil if none
// was captured
func (f *Failure) Trace() []Frame {
	if f.trace == nil {
		return nil
	}
	result := make([]Frame, len(f.trace))
	copy(result, f.trace)
	return result
}

// HasTrace returns true if a stack trace was captured at construction
func (f *Failure) HasTrace() bool {
	return len(f.trace) > 0
}

// String returns the stable textual form used in logs:
// "<Kind>: <code> - <message>". Network-family kinds append the status
// (" (Status: 500)" or " (Status: absent)"); a failure with no code omits
// the code segment.
func (f *Failure) String() string {
	var s string
	if f.code.IsZero() {
		s = fmt.Sprintf("%s: %s", f.kind, f.message)
	} else {
		s = fmt.Sprintf("%s: %s - %s", f.kind, f.code, f.message)
	}

	if f.kind.IsNetwork() {
		if f.hasStatus {
			s += fmt.Sprintf(" (Status: %d)", f.statusCode)
		} else {
			s += " (Status: absent)"
		}
	}

	return s
}

// MarshalJSON implements json.Marshaler for structured logging
func (f *Failure) MarshalJSON() ([]byte, error) {
	data := map[string]interface{}{
		"kind":      f.kind.String(),
		"message":   f.message,
		"timestamp": f.timestamp.Format(time.RFC3339),
	}

	if !f.code.IsZero() {
		data["code"] = f.code.String()
	}

	if f.hasStatus {
		data["status_code"] = f.statusCode
	}

	if len(f.fieldErrors) > 0 {
		data["field_errors"] = f.fieldErrors
	}

	if f.cause != nil {
		data["cause"] = f.cause.Error()
	}

	if len(f.trace) > 0 {
		data["stack_trace"] = f.trace
	}

	return json.Marshal(data)
}

// cloneFields copies a field-error map so callers never share the internal map
func cloneFields(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// captureTrace captures the current stack trace with pooling optimization
func captureTrace(skip int) []Frame {
	frames := framePool.Get().([]Frame)
	frames = frames[:0]

	for i := skip; i < MaxTraceFrames+skip; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}

		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}

		frames = append(frames, Frame{
			Function: fn.Name(),
			File:     file,
			Line:     line,
		})
	}

	// Copy out before returning the slice to the pool
	result := make([]Frame, len(frames))
	copy(result, frames)
	framePool.Put(frames)

	return result
}
