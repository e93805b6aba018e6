// Package service defines interfaces for domain services whose implementations
// live in the infra layer.
package service

// PasswordHasher abstracts one-way password hashing so the use case layer does
// not depend on a concrete algorithm.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash in constant time.
	Check(password, hash string) bool
}
