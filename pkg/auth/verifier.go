package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoVerifier is returned when neither a shared secret nor a JWKS endpoint is configured.
var ErrNoVerifier = errors.New("auth: no JWT secret or JWKS configured")

// Verifier validates Supabase-issued tokens: HS256 with the project secret,
// RS256 against the project's JWKS.
type Verifier struct {
	secret []byte
	jwks   *Provider
}

func NewVerifier(secret string, jwks *Provider) *Verifier {
	return &Verifier{secret: []byte(secret), jwks: jwks}
}

// Parse validates tokenString and returns its claims.
func (v *Verifier) Parse(tokenString string) (jwt.MapClaims, error) {
	if len(v.secret) == 0 && v.jwks == nil {
		return nil, ErrNoVerifier
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		switch token.Method.(type) {
		case *jwt.SigningMethodHMAC:
			if len(v.secret) == 0 {
				return nil, fmt.Errorf("HS256 token received but SUPABASE_JWT_SECRET is not configured")
			}
			return v.secret, nil
		case *jwt.SigningMethodRSA:
			if v.jwks == nil {
				return nil, fmt.Errorf("RS256 token received but no JWKS is configured")
			}
			return v.jwks.KeyFunc(token)
		}
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// Role reads the application role from app_metadata.role, falling back to the top-level role claim.
func Role(claims jwt.MapClaims) string {
	if meta, ok := claims["app_metadata"].(map[string]interface{}); ok {
		if role, ok := meta["role"].(string); ok && role != "" {
			return role
		}
	}
	role, _ := claims["role"].(string)
	return role
}
