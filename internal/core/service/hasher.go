package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/taskhive/project-api/internal/core/ports"
)

const hashCost = 10

type bcryptHasher struct{}

// NewBcryptHasher returns the bcrypt-backed SecretHasher.
func NewBcryptHasher() ports.SecretHasher {
	return bcryptHasher{}
}

func (bcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", fmt.Errorf("hash secret: %w", err)
	}
	return string(hash), nil
}

func (bcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
