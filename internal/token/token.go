// Package token mints the fixed development bearer token. The token is a real
// HS256 JWT so frontend JWT decoding works against it, but nothing in this
// service ever validates it.
package token

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"vidgencraft-mock-backend/internal/config"
)

// Fixed expiry so the minted token is byte-stable across restarts.
const devTokenExpiry = 1716976127

// Mint signs the development token for the seeded mock user.
func Mint(cfg *config.Config) (string, error) {
	claims := jwt.MapClaims{
		"sub":    cfg.MockUserEmail,
		"userId": cfg.MockUserID,
		"exp":    devTokenExpiry,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign dev token: %w", err)
	}
	return signed, nil
}
