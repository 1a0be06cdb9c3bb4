// Package failure provides the typed failure taxonomy for the fault library.
//
// Package: failure
// Title: fault Failure Taxonomy
// Description: This package implements a closed, tagged failure taxonomy with
//              immutable failure values. Each failure carries a human-readable
//              message, a stable machine-readable code defaulted per kind, an
//              optional numeric status, optional per-field validation messages,
//              and an optional captured stack trace. The taxonomy is flat with
//              a single level of specialization: the Network family contains
//              the Server, Connection and Timeout kinds.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-08
// Modified: 2025-03-08
//
// Change History:
// - 2025-03-08 v0.1.0: Initial implementation with closed kind enumeration
//
// Features:
// - Closed kind enumeration with family classification (depth <= 2)
// - One constructor per kind with functional options applied at construction
// - Deterministic per-kind default codes
// - Immutable values; accessors return defensive copies
// - Stack trace capture at construction
// - Structural equality via errors.Is (kind, code, message)
// - Normalization of unrecognized errors into the Application kind
//
// Usage:
//   import "github.com/msto63/fault/core/failure"
//
//   // Raise a validation failure with per-field messages
//   err := failure.NewValidation("URL cannot be empty",
//     failure.WithFieldErrors(map[string]string{"url": "required"}))
//
//   // Raise a server failure with a status code
//   err = failure.NewServer("internal server error", 500)
//
//   // Normalize an arbitrary error at a propagation boundary
//   f := failure.Ensure(err)
//
//   // Family-aware matching: Server is also a Network failure
//   if failure.IsKind(err, failure.KindNetwork) {
//     // handle any network-family failure
//   }
package failure
