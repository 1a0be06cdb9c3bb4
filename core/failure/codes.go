// File: codes.go
// Title: Failure Code Definitions
// Description: Defines the stable machine-readable codes carried by failure
//              values. Each kind of the taxonomy defaults to exactly one code;
//              producers may override the code at construction. The table is
//              fixed and not meant to be extended at runtime.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-08
// Modified: 2025-03-08
//
// Change History:
// - 2025-03-08 v0.1.0: Initial implementation with the default code table

package failure

// Code represents a stable, machine-readable failure identifier
type Code string

// Default codes for the closed taxonomy
const (
	// CodeNetworkError is the default code for the Network base kind
	CodeNetworkError Code = "NETWORK_ERROR"

	// CodeServerError is the default code for the Server kind
	CodeServerError Code = "SERVER_ERROR"

	// CodeConnectionError is the default code for the Connection kind
	CodeConnectionError Code = "CONNECTION_ERROR"

	// CodeTimeoutError is the default code for the Timeout kind
	CodeTimeoutError Code = "TIMEOUT_ERROR"

	// CodeAuthError is the default code for the Auth kind
	CodeAuthError Code = "AUTH_ERROR"

	// CodeDatabaseError is the default code for the Database kind
	CodeDatabaseError Code = "DB_ERROR"

	// CodeValidationError is the default code for the Validation kind
	CodeValidationError Code = "VALIDATION_ERROR"

	// CodeHandlerError marks a dispatcher handler that panicked; it is logged
	// by the dispatcher and never propagated
	CodeHandlerError Code = "HANDLER_ERROR"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// IsZero returns true if no code has been assigned
func (c Code) IsZero() bool {
	return c == ""
}
