// File: handler.go
// Title: Kind Handlers
// Description: Defines the handler contract and the default handlers shipped
//              with the dispatcher. A handler's only contractual obligation is
//              to emit one kind-appropriate log line; handlers never raise
//              failures themselves.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-09
// Modified: 2025-03-09
//
// Change History:
// - 2025-03-09 v0.1.0: Initial implementation with default handlers

package dispatch

import (
	"github.com/msto63/fault/core/failure"
	"github.com/msto63/fault/core/log"
)

// Handler consumes one failure of a recognized kind. Handlers log at warn
// severity and must not raise; a panicking handler is recovered by the
// dispatcher.
type Handler func(f *failure.Failure, logger *log.Logger)

// UnknownHandler consumes a value that belongs to no known kind. It logs at
// error severity.
type UnknownHandler func(err error, logger *log.Logger)

// handleValidation is the default handler for Validation failures
func handleValidation(f *failure.Failure, logger *log.Logger) {
	fields := log.Fields{"failure_code": f.Code().String()}
	if fieldErrs := f.FieldErrors(); len(fieldErrs) > 0 {
		fields["field_errors"] = fieldErrs
	}
	logger.Warn("validation failure: "+f.Message(), fields)
}

// handleAuth is the default handler for Auth failures
func handleAuth(f *failure.Failure, logger *log.Logger) {
	logger.Warn("authentication failure: "+f.Message(),
		log.Fields{"failure_code": f.Code().String()})
}

// handleNetwork is the default handler for the whole network family
// (Network, Server, Connection, Timeout)
func handleNetwork(f *failure.Failure, logger *log.Logger) {
	fields := log.Fields{
		"failure_code": f.Code().String(),
		"failure_kind": f.Kind().String(),
	}
	if status, ok := f.StatusCode(); ok {
		fields["status_code"] = status
	}
	logger.Warn("network failure: "+f.Message(), fields)
}

// handleDatabase is the default handler for Database failures
func handleDatabase(f *failure.Failure, logger *log.Logger) {
	logger.Warn("database failure: "+f.Message(),
		log.Fields{"failure_code": f.Code().String()})
}

// handleApplication is the default handler for Application failures,
// including values normalized from unrecognized errors
func handleApplication(f *failure.Failure, logger *log.Logger) {
	fields := log.Fields{}
	if !f.Code().IsZero() {
		fields["failure_code"] = f.Code().String()
	}
	logger.Warn("application failure: "+f.Message(), fields)
}

// handleUnknown is the default fallback for values outside the taxonomy that
// reached the dispatcher without normalization
func handleUnknown(err error, logger *log.Logger) {
	logger.ErrorWithErr("unrecognized failure", err)
}
