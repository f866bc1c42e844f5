package auth

import (
	"fmt"

	apperrors "loadout-backend/internal/errors"
	"loadout-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthService verifies session tokens issued by the external auth provider
type AuthService struct {
	secret []byte
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	Username string `json:"username" example:"ghost"`
	Admin    bool   `json:"admin" example:"false"`
	// Standard JWT fields
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// UserID returns the subject claim as a uuid
func (c *AuthClaims) UserID() (uuid.UUID, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid subject claim: %w", err)
	}
	return id, nil
}

// Actor converts verified claims into the caller identity the store checks
func (c *AuthClaims) Actor() (repository.Actor, error) {
	id, err := c.UserID()
	if err != nil {
		return repository.Actor{}, err
	}
	return repository.Actor{UserID: id, Username: c.Username, Admin: c.Admin}, nil
}

// NewAuthService creates a new auth service
func NewAuthService(secret string) (*AuthService, error) {
	if secret == "" {
		return nil, apperrors.ErrJWTSecretNotSet
	}
	return &AuthService{secret: []byte(secret)}, nil
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	if _, err := claims.UserID(); err != nil {
		return nil, err
	}
	return claims, nil
}
