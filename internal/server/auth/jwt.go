// Package auth issues and parses the access tokens carried in gRPC metadata.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/cofund/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the caller's user id and the label recorded on their stakes.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
	Label  string
}

// Subject is the identity an access token stands for.
type Subject struct {
	UserID string
	Label  string
}

func GenerateToken(userID, label string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: userID,
		Label:  label,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func ParseToken(tokenString string, secretKey []byte) (Subject, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Subject{}, common.ErrTokenExpired
		}
		return Subject{}, err
	}

	if !token.Valid || claims.UserID == "" {
		return Subject{}, common.ErrInvalidToken
	}

	return Subject{UserID: claims.UserID, Label: claims.Label}, nil
}
