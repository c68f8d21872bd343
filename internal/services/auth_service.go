package services

import (
	"strings"

	"wedding-site/internal/auth"

	"golang.org/x/crypto/bcrypt"
)

// AuthService checks the shared event passphrase. There is one passphrase
// for every guest; success issues a session token, failure is reported as
// a plain boolean so the gate can show "incorrect password" without
// treating it as an error.
type AuthService struct {
	passwordHash []byte
	jwtManager   *auth.JWTManager
}

func NewAuthService(passwordHash string, jwtManager *auth.JWTManager) *AuthService {
	return &AuthService{
		passwordHash: []byte(passwordHash),
		jwtManager:   jwtManager,
	}
}

// CheckPassword compares the submitted passphrase against the configured
// bcrypt hash. On a match it also returns a fresh session token.
func (s *AuthService) CheckPassword(password string) (bool, string, error) {
	password = strings.TrimSpace(password)
	if password == "" {
		return false, "", nil
	}

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		// Mismatch is the expected failure mode, not an error
		return false, "", nil
	}

	token, err := s.jwtManager.Generate()
	if err != nil {
		return false, "", err
	}

	return true, token, nil
}

// ValidateToken reports whether a previously issued session token is
// still good
func (s *AuthService) ValidateToken(token string) bool {
	return s.jwtManager.Validate(token) == nil
}
