// Package validate provides composable validation rule chains that produce
// Validation failures from the fault taxonomy.
//
// Package: validate
// Title: fault Validation Chains
// Description: Rules check one named value each; a chain runs its rules in
//              order and turns the failing ones into a single Validation
//              failure with per-field messages. Producers use chains at the
//              edge of an operation so invalid input never reaches deeper
//              layers.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-09
// Modified: 2025-03-09
//
// Change History:
// - 2025-03-09 v0.1.0: Initial implementation
//
// Usage:
//   chain := validate.NewChain("fetch_url").
//     Add(validate.NonEmpty("url", "URL cannot be empty")).
//     Add(validate.HTTPS("url")).
//     StopOnFirstError(true)
//
//   if f := chain.Validate(map[string]string{"url": raw}); f != nil {
//     return f
//   }
package validate
