// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides staff token signing and verification.
//
// # Architecture
//
// This package isolates security-sensitive code from the domain logic. The
// HTTP middleware depends on it only through the TokenVerifier interface.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoSecret is returned when a TokenService is built without a signing secret.
var ErrNoSecret = errors.New("sec: signing secret is empty")

// AuthClaims is the payload of a staff bearer token.
type AuthClaims struct {
	jwt.RegisteredClaims

	// Role is abbreviated to keep the token small.
	Role Role `json:"rol"`
}

// TokenService signs and verifies HS256 tokens with a shared secret.
type TokenService struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewTokenService creates a new TokenService.
func NewTokenService(secret, issuer string) (*TokenService, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
		now:    time.Now,
	}, nil
}

// GenerateToken creates a signed token for subject with the given role.
func (service *TokenService) GenerateToken(subject string, role Role, timeToLive time.Duration) (string, error) {
	currentTime := service.now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		Role: role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks the signature, issuer and expiry of a token string.
func (service *TokenService) VerifyToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	},
		jwt.WithIssuer(service.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(service.now),
	)
	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sec: invalid token claims")
	}

	return claims, nil
}
