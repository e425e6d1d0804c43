package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// AccessTokenValidity is how long an issued token stays usable.
const AccessTokenValidity = 24 * time.Hour

// GenerateToken signs an access token embedding the user's id and name.
func GenerateToken(userID uint, name string, secret string) (string, error) {
	if secret == "" {
		return "", errors.New("JWT secret key is missing")
	}

	claims := jwt.MapClaims{
		"id":   userID,
		"name": name,
		"exp":  time.Now().Add(AccessTokenValidity).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateAndGetClaims verifies the token signature and expiry against
// the shared secret and returns the embedded claims.
func ValidateAndGetClaims(tokenString string, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
