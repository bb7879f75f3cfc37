package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when the username or password is wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService checks the configured admin credentials and issues tokens.
type AuthService struct {
	username     string
	passwordHash []byte
	tokens       *TokenManager
}

func NewAuthService(username, passwordHash string, tokens *TokenManager) *AuthService {
	return &AuthService{
		username:     username,
		passwordHash: []byte(passwordHash),
		tokens:       tokens,
	}
}

// Login returns a signed token for valid credentials.
func (a *AuthService) Login(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	// always run bcrypt so a wrong username costs the same as a wrong password
	passErr := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password))
	if !userOK || passErr != nil {
		return "", ErrInvalidCredentials
	}
	return a.tokens.GenerateToken(username)
}

// Tokens exposes the manager used to verify bearer tokens.
func (a *AuthService) Tokens() *TokenManager {
	return a.tokens
}
