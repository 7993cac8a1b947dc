// server/internal/auth/auth.go
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// JWTClaims defines the payload for the JWT.
type JWTClaims struct {
	UserID string `json:"userID"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Hashing
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

var (
	jwtSecret  []byte
	expiration = 24 * time.Hour
)

// Configure sets the signing secret and token lifetime. Must be called once at
// startup before any token is issued or verified.
func Configure(secret string, tokenLifetime time.Duration) {
	jwtSecret = []byte(secret)
	if tokenLifetime > 0 {
		expiration = tokenLifetime
	}
}

// Secret returns the configured signing key for token verification.
func Secret() []byte { return jwtSecret }

func GenerateJWT(userID, email, role string) (string, error) {
	expirationTime := time.Now().Add(expiration)
	claims := &JWTClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}
