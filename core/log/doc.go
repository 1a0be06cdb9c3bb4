// Package log provides the structured logging sink for the fault library.
//
// Package: log
// Title: fault Structured Logging Sink
// Description: This package implements a leveled, structured logger used as
//              the logging seam by the dispatcher and boundary. Writes are
//              atomic per call: one entry's text and fields are never
//              interleaved with another's, which is the only ordering
//              guarantee offered across concurrent callers. The logger is an
//              explicitly passed capability, not ambient global state.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-08
// Modified: 2025-03-08
//
// Change History:
// - 2025-03-08 v0.1.0: Initial implementation with failure-aware logging
//
// Features:
// - Structured logging with JSON, text and console formats
// - Leveled filtering (trace through fatal)
// - Contextual fields via clone-on-With immutable derivation
// - Failure-aware logging that renders kind, code, message and trace
// - Mutex-guarded output so each call is atomic
//
// Usage:
//   import faultlog "github.com/msto63/fault/core/log"
//
//   logger := faultlog.New().
//     WithLevel(faultlog.LevelDebug).
//     WithFormat(faultlog.FormatText).
//     WithField("service", "fetcher")
//
//   logger.Warn("retrying request", faultlog.Field("attempt", 2))
//   logger.LogFailure(err)
package log
