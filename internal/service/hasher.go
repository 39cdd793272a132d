package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/lynossweets/storefront-server/internal/model"
)

// bcryptCost matches the work factor the stored hashes were created with.
const bcryptCost = 10

var _ model.PasswordHasher = (*BcryptHasher)(nil)

// BcryptHasher implements PasswordHasher with salted bcrypt digests.
type BcryptHasher struct{}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{}
}

func (BcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

func (BcryptHasher) Compare(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
