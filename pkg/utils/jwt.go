package utils

import (
	"time"

	"github.com/drezzup/catalog-service/pkg/errs"
	"github.com/golang-jwt/jwt"
)

type TokenClaims struct {
	UserID int64
	Email  string
	Role   string
}

func CreateJWTToken(userID int64, email string, role string, jwtSecretKey string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{}
	claims["id"] = userID
	claims["email"] = email
	claims["role"] = role
	claims["exp"] = time.Now().Add(ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecretKey))
}

func VerifyJWTToken(tokenString string, jwtSecretKey string) (TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrInvalidToken
		}
		return []byte(jwtSecretKey), nil
	})
	if err != nil || !token.Valid {
		return TokenClaims{}, errs.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, errs.ErrInvalidToken
	}

	parsed := TokenClaims{}
	if id, ok := claims["id"].(float64); ok {
		parsed.UserID = int64(id)
	}
	if email, ok := claims["email"].(string); ok {
		parsed.Email = email
	}
	if role, ok := claims["role"].(string); ok {
		parsed.Role = role
	}

	return parsed, nil
}
