// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher turns account passwords into stored hashes and checks login attempts against them.
type PasswordHasher interface {
	// Hash returns the salted hash stored for a new account.
	Hash(password string) (string, error)

	// Check reports whether password matches the stored hash. Malformed hashes never match.
	Check(password, hash string) bool
}
