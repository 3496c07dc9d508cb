package auth

import (
	"slices"
	"strings"
	"unicode"

	"mealplanner/config"
	domainerrors "mealplanner/internal/domain/errors"
	"mealplanner/internal/domain/service"
	"mealplanner/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

var forbiddenPasswords = []string{"password", "12345678", "qwertyui", "letmein1"}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost      int
	minLength int
}

// NewBcryptHasher is the constructor for bcryptHasher.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	h := &bcryptHasher{cost: bcrypt.DefaultCost, minLength: 8}
	if cfg != nil && cfg.Auth != nil {
		if cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
			h.cost = cfg.Auth.BcryptCost
		}
		if cfg.Auth.PasswordMinLength > 0 {
			h.minLength = cfg.Auth.PasswordMinLength
		}
	}

	return h
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength requires the minimum length, a letter and a digit.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if len(password) < h.minLength {
		return domainerrors.ErrPasswordStrength.WrapMessage("password is too short")
	}
	// bcrypt ignores everything past 72 bytes.
	if len(password) > 72 {
		return domainerrors.ErrPasswordStrength.WrapMessage("password is too long")
	}
	if slices.Contains(forbiddenPasswords, strings.ToLower(password)) {
		return domainerrors.ErrPasswordStrength.WrapMessage("password is too common")
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain letters and digits")
	}

	return nil
}
