package utils

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// The gateway never holds the marketplace JWT secret. Like the page shell it
// replaces, it only decodes the token payload for identity display and role
// gating; the marketplace API re-validates the signature on every call.

type Claims struct {
	UserID string
	Email  string
	Role   string
}

// DecodeClaims parses the token without signature verification and rejects
// expired tokens.
func DecodeClaims(tokenString string) (*Claims, error) {
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("malformed token: %w", err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		if exp.Before(time.Now()) {
			return nil, fmt.Errorf("token expired")
		}
	}

	userID, _ := mapClaims["sub"].(string)
	email, _ := mapClaims["email"].(string)
	role, _ := mapClaims["role"].(string)
	if email == "" {
		// The marketplace issues tokens with the email as subject
		email = userID
	}

	return &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
	}, nil
}

// BearerToken extracts the raw bearer token from the request header or cookie
func BearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		return authHeader[7:], nil
	}
	cookie, err := r.Cookie("revshop_token")
	if err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}
	return "", fmt.Errorf("no token found")
}
