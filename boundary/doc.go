// Package boundary provides the top-level capture region for task lifecycles.
//
// Package: boundary
// Title: fault Task Boundary
// Description: A boundary is the explicit replacement for process-wide
//              uncaught-error interception: it wraps one task, catches any
//              otherwise-unhandled failure or panic, and forwards it to the
//              dispatcher before the task terminates. The boundary is a
//              supervisory wrapper around the taxonomy, not part of it.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-09
// Modified: 2025-03-09
//
// Change History:
// - 2025-03-09 v0.1.0: Initial implementation
//
// Usage:
//   b := boundary.New(dispatcher, logger)
//   if f := b.Run(ctx, "fetch", func(ctx context.Context) error {
//     _, err := client.FetchData(ctx, url)
//     return err
//   }); f != nil {
//     // f has already been dispatched; present f.Message() to the user
//   }
package boundary
