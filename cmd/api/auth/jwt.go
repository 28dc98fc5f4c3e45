package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTManager signs and verifies tokens with a single HS256 secret.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewJWTManagerFromEnv builds a JWTManager from environment variables.
//
// - JWT_SECRET: HS256 signing secret (required)
// - JWT_ISSUER: iss claim value (optional, defaults to "blog-api")
func NewJWTManagerFromEnv() (*JWTManager, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	issuer := os.Getenv("JWT_ISSUER")
	if issuer == "" {
		issuer = "blog-api"
	}

	return &JWTManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    24 * time.Hour,
	}, nil
}

// Sign issues a token carrying the user's id and admin flag.
func (m *JWTManager) Sign(userID string, isAdmin bool) (string, error) {
	claims := jwt.MapClaims{
		"sub":   userID,
		"admin": isAdmin,
		"iss":   m.issuer,
		"exp":   time.Now().Add(m.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse verifies the token and returns the embedded user id and admin flag.
func (m *JWTManager) Parse(tokenString string) (string, bool, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", false, err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return "", false, fmt.Errorf("invalid token claims")
	}

	sub, _ := claims["sub"].(string)
	isAdmin, _ := claims["admin"].(bool)
	if sub == "" {
		return "", false, fmt.Errorf("token missing sub claim")
	}

	return sub, isAdmin, nil
}
