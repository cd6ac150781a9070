package store

import "github.com/google/uuid"

// TokenGenerator generates run tokens for audit correlation. Implemented by
// UUIDv7Generator (production) and testutil.FixedGenerator (tests).
type TokenGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-ordered UUIDv7 run tokens.
type UUIDv7Generator struct{}

// Generate returns a new UUIDv7 string. UUIDv7 generation only fails when
// the system entropy source does, in which case a random v4 still serves.
func (UUIDv7Generator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
