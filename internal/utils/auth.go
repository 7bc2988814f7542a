package utils

import (
	"crypto/subtle"
	"fmt"

	"medilink/internal/config"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher turns a password into its stored form and checks a
// candidate against it.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, stored string) bool
}

// NewPasswordHasher returns the hasher for a config.Hashing* scheme.
func NewPasswordHasher(scheme string) (PasswordHasher, error) {
	switch scheme {
	case config.HashingPlain:
		return PlainHasher{}, nil
	case config.HashingBcrypt:
		return BcryptHasher{Cost: bcrypt.DefaultCost}, nil
	}
	return nil, fmt.Errorf("unknown password hashing %q", scheme)
}

// PlainHasher stores passwords as given, which keeps user files readable by
// tools that expect the plaintext field.
type PlainHasher struct{}

func (PlainHasher) Hash(password string) (string, error) {
	return password, nil
}

func (PlainHasher) Check(password, stored string) bool {
	return subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1
}

// BcryptHasher stores bcrypt hashes.
type BcryptHasher struct {
	Cost int
}

// Hash generates a bcrypt hash of the password.
func (h BcryptHasher) Hash(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), h.Cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// Check compares a bcrypt hashed password with its possible plaintext equivalent.
func (h BcryptHasher) Check(password, stored string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password))
	return err == nil
}
