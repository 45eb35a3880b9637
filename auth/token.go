package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"nutriplan/apperr"
)

// TokenTTL is how long issued tokens stay valid. Tokens are stateless;
// there is no server-side revocation list.
const TokenTTL = 7 * 24 * time.Hour

type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

func GenerateToken(userID int64, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
	})
	return token.SignedString(secret)
}

// ParseToken verifies the signature and expiry and returns the subject
// user id. Any failure (bad signature, wrong algorithm, expired) comes
// back as an error; callers map it to a 403.
func ParseToken(tokenString string, secret []byte) (int64, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return 0, err
	}
	if !token.Valid {
		return 0, apperr.ErrInvalidToken
	}

	return claims.UserID, nil
}
