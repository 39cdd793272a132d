package model

// PasswordHasher is a one-way credential hasher. Compare returns false for
// a mismatch or a malformed digest; it never reports a system error.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}
