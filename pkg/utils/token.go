package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenManager issues and verifies the signed bearer tokens the API
// hands out on register/login. Tokens carry only the user id; the role
// is resolved from the store on every request.
type TokenManager struct {
	secret []byte
	expiry time.Duration
}

func NewTokenManager(secret string, expiryHours int) *TokenManager {
	if expiryHours <= 0 {
		expiryHours = 24
	}
	return &TokenManager{
		secret: []byte(secret),
		expiry: time.Duration(expiryHours) * time.Hour,
	}
}

// IssueToken signs a token for the given user, valid for the configured expiry.
func (tm *TokenManager) IssueToken(userID uuid.UUID) (string, time.Time, error) {
	expiresAt := time.Now().Add(tm.expiry)

	claims := jwt.MapClaims{
		"id":  userID.String(),
		"exp": expiresAt.Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// VerifyToken checks signature and expiry and returns the embedded user id.
func (tm *TokenManager) VerifyToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return tm.secret, nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse token: %w", err)
	}

	if !token.Valid {
		return uuid.Nil, fmt.Errorf("token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, fmt.Errorf("invalid token claims")
	}

	idStr, ok := claims["id"].(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("id not found in token")
	}

	userID, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id in token: %w", err)
	}

	return userID, nil
}
