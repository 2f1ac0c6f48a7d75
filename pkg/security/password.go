// Package security contains everything related to the security of user data
package security

import "golang.org/x/crypto/bcrypt"

type PasswordHasher struct {
	Cost int
}

func NewHasher() *PasswordHasher {
	return &PasswordHasher{
		Cost: bcrypt.DefaultCost,
	}
}

// GenerateFromPassword hashes p with a per-call random salt. Two calls
// with the same input always produce different digests
func (h *PasswordHasher) GenerateFromPassword(p string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(p), h.Cost)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// VerifyPasswd compares a password p with the stored encoded hash e.
// A malformed hash is reported as a mismatch, never as an error
func (h *PasswordHasher) VerifyPasswd(p, e string) bool {
	return bcrypt.CompareHashAndPassword([]byte(e), []byte(p)) == nil
}
