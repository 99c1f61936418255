package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// POSClaims are the JWT claims carried by a POS session token. Role gates the
// dashboards; branch and shift seed new transactions for cashier sessions.
type POSClaims struct {
	Role     string `json:"role"`
	BranchID string `json:"branchID,omitempty"`
	Shift    string `json:"shift,omitempty"`
	jwt.RegisteredClaims
}

// GenerateJWT signs a session token for the given employee. Each token gets a
// random ID so two tokens issued in the same second are still distinct.
func GenerateJWT(employeeID, role, branchID, shift string, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	jti, err := GenerateSecureRandomString(16)
	if err != nil {
		return "", err
	}
	now := time.Now()
	claims := POSClaims{
		Role:     role,
		BranchID: branchID,
		Shift:    shift,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   employeeID,
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateJWT parses a session token and validates its signature and
// standard claims, returning the POS claims when valid.
func ParseAndValidateJWT(tokenString string, secretKey string) (*POSClaims, error) {
	claims := &POSClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return claims, nil
}
