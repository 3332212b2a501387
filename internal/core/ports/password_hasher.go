package ports

// PasswordHasher abstracts one-way credential hashing.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. Two calls
	// with the same input produce different blobs.
	Hash(password string) (string, error)

	// Verify reports whether plaintext matches the stored blob. Malformed
	// or foreign blobs yield false, never an error.
	Verify(password, hash string) bool
}
