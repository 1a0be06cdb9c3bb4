// Package dispatch implements the centralized failure dispatcher.
//
// Package: dispatch
// Title: fault Centralized Dispatcher
// Description: The dispatcher is the sole terminal consumer of otherwise
//              unhandled failures at a process or session boundary. Every
//              dispatched value is first logged through the injected logging
//              sink, then routed to exactly one handler selected by the most
//              specific matching kind; network-family kinds share one handler.
//              Recognized kinds are handled at warn severity, the unknown
//              fallback at error. A handler that panics is recovered and
//              logged, never propagated: Dispatch is a sink, not a transform,
//              and it never raises.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-09
// Modified: 2025-03-09
//
// Change History:
// - 2025-03-09 v0.1.0: Initial implementation with kind-keyed routing
//
// Usage:
//   logger := faultlog.New()
//   d := dispatch.New(logger,
//     dispatch.WithHandler(failure.KindAuth, redirectToLogin))
//
//   d.Dispatch(err)
package dispatch
