// Package service declares the external capabilities the usecases depend on:
// identity, tokens, messaging, publishing, exports and metrics.
package service

// PasswordHasher hashes the passwords kept by the local identity provider.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Check reports whether password matches hash.
	Check(password, hash string) bool
}
