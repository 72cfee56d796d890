// Package auth issues and verifies admin session tokens. Credentials are
// checked against bcrypt hashes in the users table; sessions are HS256
// JWTs, never client-side flags.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/arbazessaqkhan/jktfeed/models"
	"github.com/arbazessaqkhan/jktfeed/store"
)

const sessionTTL = 12 * time.Hour

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid session token")
)

// Service authenticates users and manages session tokens
type Service struct {
	store  *store.Store
	secret []byte
}

// NewService creates an auth service with the given signing secret
func NewService(st *store.Store, secret string) *Service {
	return &Service{store: st, secret: []byte(secret)}
}

// Login verifies the credentials and returns a signed session token
func (s *Service) Login(username, password string) (string, *models.User, error) {
	user, err := s.store.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.UserID,
		"usr":  user.Username,
		"role": user.Role,
		"typ":  "session",
		"exp":  time.Now().Add(sessionTTL).Unix(),
	})
	token, err := t.SignedString(s.secret)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Claims is the verified content of a session token
type Claims struct {
	UserID   uint
	Username string
	Role     string
}

// ParseToken verifies a session token and returns its claims
func (s *Service) ParseToken(token string) (*Claims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims["typ"] != "session" {
		return nil, ErrInvalidToken
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	username, _ := claims["usr"].(string)
	role, _ := claims["role"].(string)

	return &Claims{
		UserID:   uint(sub),
		Username: username,
		Role:     role,
	}, nil
}
