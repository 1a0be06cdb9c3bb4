// File: kind.go
// Title: Failure Kind Enumeration
// Description: Defines the closed set of failure kinds and their family
//              classification. The taxonomy is flat with one level of
//              specialization: Server, Connection and Timeout belong to the
//              Network family. Every kind maps deterministically to a default
//              code.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-08
// Modified: 2025-03-08
//
// Change History:
// - 2025-03-08 v0.1.0: Initial implementation with closed kind enumeration

package failure

import (
	"strings"
)

// Kind identifies which category of the closed taxonomy a failure belongs to
type Kind int

const (
	// KindApplication is the fallback kind used when an unrecognized error
	// must be normalized into the taxonomy
	KindApplication Kind = iota

	// KindValidation indicates invalid input, optionally with per-field messages
	KindValidation

	// KindAuth indicates a failed authentication or authorization check
	KindAuth

	// KindDatabase indicates a storage-layer failure
	KindDatabase

	// KindNetwork is the base kind of the network family
	KindNetwork

	// KindServer is a network-family kind; it always carries a status code
	KindServer

	// KindConnection is a network-family kind; it never carries a status code
	KindConnection

	// KindTimeout is a network-family kind for elapsed deadlines
	KindTimeout
)

// String returns the display name of the kind
func (k Kind) String() string {
	switch k {
	case KindApplication:
		return "Application"
	case KindValidation:
		return "Validation"
	case KindAuth:
		return "Auth"
	case KindDatabase:
		return "Database"
	case KindNetwork:
		return "Network"
	case KindServer:
		return "Server"
	case KindConnection:
		return "Connection"
	case KindTimeout:
		return "Timeout"
	default:
		return "Unknown"
	}
}

// Family returns the family root of the kind. Server, Connection and Timeout
// collapse to Network; every other kind is its own family.
func (k Kind) Family() Kind {
	switch k {
	case KindServer, KindConnection, KindTimeout:
		return KindNetwork
	default:
		return k
	}
}

// IsNetwork returns true if the kind belongs to the network family
func (k Kind) IsNetwork() bool {
	return k.Family() == KindNetwork
}

// DefaultCode returns the deterministic default code for the kind.
// Application has no default; its code is caller-supplied or absent.
func (k Kind) DefaultCode() Code {
	switch k {
	case KindValidation:
		return CodeValidationError
	case KindAuth:
		return CodeAuthError
	case KindDatabase:
		return CodeDatabaseError
	case KindNetwork:
		return CodeNetworkError
	case KindServer:
		return CodeServerError
	case KindConnection:
		return CodeConnectionError
	case KindTimeout:
		return CodeTimeoutError
	default:
		return ""
	}
}

// IsValid checks if the kind is a member of the closed enumeration
func (k Kind) IsValid() bool {
	switch k {
	case KindApplication, KindValidation, KindAuth, KindDatabase,
		KindNetwork, KindServer, KindConnection, KindTimeout:
		return true
	default:
		return false
	}
}

// AllKinds returns every kind in the closed enumeration
func AllKinds() []Kind {
	return []Kind{
		KindApplication,
		KindValidation,
		KindAuth,
		KindDatabase,
		KindNetwork,
		KindServer,
		KindConnection,
		KindTimeout,
	}
}

// ParseKind parses a display name into a kind
func ParseKind(name string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "application":
		return KindApplication, true
	case "validation":
		return KindValidation, true
	case "auth":
		return KindAuth, true
	case "database":
		return KindDatabase, true
	case "network":
		return KindNetwork, true
	case "server":
		return KindServer, true
	case "connection":
		return KindConnection, true
	case "timeout":
		return KindTimeout, true
	default:
		return KindApplication, false
	}
}
