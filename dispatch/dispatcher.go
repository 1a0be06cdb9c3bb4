// File: dispatcher.go
// Title: Dispatcher Implementation
// Description: Implements Dispatch, the single entry point for uncaught
//              failures. Every call logs the failure through the injected
//              sink, routes it to exactly one handler keyed on the family
//              root of its kind, and recovers handler panics. The handler
//              table is fixed after construction, so concurrent Dispatch
//              calls share no mutable state beyond the logging sink.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-09
// Modified: 2025-03-09
//
// Change History:
// - 2025-03-09 v0.1.0: Initial implementation

package dispatch

import (
	"fmt"

	"github.com/msto63/fault/core/failure"
	"github.com/msto63/fault/core/log"
)

// Dispatcher routes unhandled failures to kind handlers. Construct with New;
// the zero value is not usable.
type Dispatcher struct {
	logger   *log.Logger
	handlers map[failure.Kind]Handler
	unknown  UnknownHandler
}

// Option configures a Dispatcher during construction
type Option func(*Dispatcher)

// WithHandler replaces the handler for a kind. The kind is collapsed to its
// family root, so registering for KindServer replaces the network-family
// handler.
func WithHandler(kind failure.Kind, h Handler) Option {
	return func(d *Dispatcher) { d.handlers[kind.Family()] = h }
}

// WithUnknownHandler replaces the fallback handler for values outside the
// taxonomy
func WithUnknownHandler(h UnknownHandler) Option {
	return func(d *Dispatcher) { d.unknown = h }
}

// New creates a Dispatcher with the injected logging sink and the default
// handler per kind family. The logger must not be nil.
func New(logger *log.Logger, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		handlers: map[failure.Kind]Handler{
			failure.KindValidation:  handleValidation,
			failure.KindAuth:        handleAuth,
			failure.KindNetwork:     handleNetwork,
			failure.KindDatabase:    handleDatabase,
			failure.KindApplication: handleApplication,
		},
		unknown: handleUnknown,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Dispatch consumes one failure. It logs unconditionally, invokes exactly one
// handler, and returns nothing: it is a terminal sink. It never raises, even
// for values outside the taxonomy or panicking handlers.
func (d *Dispatcher) Dispatch(err error) {
	if err == nil {
		return
	}

	f, ok := failure.As(err)
	if !ok {
		// A raw value reached the boundary without passing through an owning
		// operation's normalization; handle it, never raise
		d.logger.Info("dispatching failure",
			log.String("failure_kind", "unrecognized"),
			log.Err(err))
		d.invokeUnknown(err)
		return
	}

	fields := log.Fields{
		"failure_kind": f.Kind().String(),
		"failure_code": f.Code().String(),
		"message":      f.Message(),
	}
	if f.HasTrace() {
		fields["stack_trace"] = f.Trace()
	}
	d.logger.Info("dispatching failure", fields)

	handler := d.handlers[f.Kind().Family()]
	d.invoke(handler, f)
}

// invoke runs a handler with panic recovery
func (d *Dispatcher) invoke(h Handler, f *failure.Failure) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("failure handler panicked", log.Fields{
				"failure_code": failure.CodeHandlerError.String(),
				"failure_kind": f.Kind().String(),
				"panic":        fmt.Sprint(r),
			})
		}
	}()

	h(f, d.logger)
}

// invokeUnknown runs the fallback handler with panic recovery
func (d *Dispatcher) invokeUnknown(err error) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("failure handler panicked", log.Fields{
				"failure_code": failure.CodeHandlerError.String(),
				"panic":        fmt.Sprint(r),
			})
		}
	}()

	d.unknown(err, d.logger)
}
