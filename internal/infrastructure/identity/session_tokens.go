package identity

import (
	"errors"
	"os"
	"time"

	"engagetrack/internal/domain/entities"
	"engagetrack/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidSession = errors.New("invalid session token")

const sessionTTL = 24 * time.Hour

// SessionTokens mints and verifies the HMAC-signed session JWT carried in the
// auth cookie. SESSION_SECRET must be set outside local development.

type SessionTokens struct {
	secret []byte
}

var _ interfaces.ISessionTokens = (*SessionTokens)(nil)

func NewSessionTokens() *SessionTokens {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "local-dev-secret"
	}
	return &SessionTokens{secret: []byte(secret)}
}

func (s *SessionTokens) Issue(user entities.User) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":   user.AzureID,
		"name":  user.FullName,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(sessionTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *SessionTokens) Verify(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidSession
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidSession
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", ErrInvalidSession
	}
	return sub, nil
}
