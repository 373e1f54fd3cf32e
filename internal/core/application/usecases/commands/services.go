package commands

import (
	"time"

	"catering/internal/core/application/auth"
)

// Service dependencies of the command handlers, declared as narrow
// interfaces so tests can substitute them.
type (
	// PasswordHasher hashes credentials and verifies them against stored hashes.
	PasswordHasher interface {
		Hash(password string) (string, error)
		Compare(hash, password string) error
	}

	// TokenIssuer signs session tokens for authenticated principals.
	TokenIssuer interface {
		Issue(p auth.Principal, ttl time.Duration) (string, error)
	}

	// TrackingCodeGenerator produces customer-facing order tracking codes.
	TrackingCodeGenerator interface {
		Generate() string
	}
)
