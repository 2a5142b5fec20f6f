package ports

// SecretHasher one-way hashes and verifies plaintext secrets.
type SecretHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches the stored hash. A wrong
	// secret is a false return, never an error.
	Verify(plaintext, hash string) bool
}
