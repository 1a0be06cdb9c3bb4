// File: validate.go
// Title: Validation Rules and Chains
// Description: Provides composable validation rules whose outcome is a
//              Validation failure from the taxonomy, carrying one message per
//              failing field. Chains run rules in order and either collect all
//              field errors or stop on the first failure.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-09
// Modified: 2025-03-09
//
// Change History:
// - 2025-03-09 v0.1.0: Initial implementation with rule chains

package validate

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/msto63/fault/core/failure"
)

// Rule checks a single named value and reports a message when it fails
type Rule struct {
	Field string
	Check func(value string) (ok bool, message string)
}

// NonEmpty fails with the given message when the value is empty
func NonEmpty(field, message string) Rule {
	return Rule{
		Field: field,
		Check: func(value string) (bool, string) {
			if value == "" {
				return false, message
			}
			return true, ""
		},
	}
}

// HTTPS fails when the value is not a well-formed URL using the https scheme
func HTTPS(field string) Rule {
	return Rule{
		Field: field,
		Check: func(value string) (bool, string) {
			parsed, err := url.Parse(value)
			if err != nil || parsed.Host == "" {
				return false, "URL is not valid"
			}
			if parsed.Scheme != "https" {
				return false, "URL must use HTTPS protocol"
			}
			return true, ""
		},
	}
}

// OneOf fails when the value is not a member of the allowed set
func OneOf(field string, allowed ...string) Rule {
	return Rule{
		Field: field,
		Check: func(value string) (bool, string) {
			for _, a := range allowed {
				if value == a {
					return true, ""
				}
			}
			return false, fmt.Sprintf("must be one of %v", allowed)
		},
	}
}

// PositiveInt fails when the value is not an integer greater than zero
func PositiveInt(field string) Rule {
	return Rule{
		Field: field,
		Check: func(value string) (bool, string) {
			n, err := strconv.Atoi(value)
			if err != nil {
				return false, "must be an integer"
			}
			if n <= 0 {
				return false, "must be greater than zero"
			}
			return true, ""
		},
	}
}

// Chain runs rules in order against a set of named values
type Chain struct {
	name        string
	rules       []Rule
	stopOnFirst bool
}

// NewChain creates a named rule chain. The name appears in the failure's
// field errors only indirectly, through log context supplied by callers.
func NewChain(name string) *Chain {
	return &Chain{name: name}
}

// Add appends a rule to the chain
func (c *Chain) Add(rule Rule) *Chain {
	c.rules = append(c.rules, rule)
	return c
}

// StopOnFirstError configures the chain to stop at the first failing rule.
// By default chains collect every field error.
func (c *Chain) StopOnFirstError(stop bool) *Chain {
	c.stopOnFirst = stop
	return c
}

// Validate runs the chain against the given values. It returns nil when every
// rule passes; otherwise it returns a Validation failure whose message is the
// first failing rule's message and whose field errors hold one message per
// failing field.
func (c *Chain) Validate(values map[string]string) *failure.Failure {
	var firstMessage string
	fieldErrors := make(map[string]string)

	for _, rule := range c.rules {
		// A field already reported keeps its first message
		if _, seen := fieldErrors[rule.Field]; seen {
			continue
		}

		ok, message := rule.Check(values[rule.Field])
		if ok {
			continue
		}

		if firstMessage == "" {
			firstMessage = message
		}
		fieldErrors[rule.Field] = message

		if c.stopOnFirst {
			break
		}
	}

	if firstMessage == "" {
		return nil
	}

	return failure.NewValidation(firstMessage, failure.WithFieldErrors(fieldErrors))
}
