// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net/http"
	"strings"

	"github.com/taibuivan/quantumbooks/internal/platform/apperr"
	"github.com/taibuivan/quantumbooks/internal/platform/constants"
	"github.com/taibuivan/quantumbooks/internal/platform/ctxutil"
	"github.com/taibuivan/quantumbooks/internal/platform/respond"
	"github.com/taibuivan/quantumbooks/internal/platform/sec"
)

// TokenVerifier checks a bearer token and returns its claims.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.AuthClaims, error)
}

// Authenticate extracts and verifies the JWT from the Authorization header.
//
// # Flow
//  1. No header: the request proceeds as anonymous.
//  2. Malformed header or no verifier configured: 401.
//  3. Invalid or expired token: 401.
//  4. Otherwise [*sec.AuthClaims] are injected into the request context.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get(constants.HeaderAuthorization)

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			scheme, tokenStr, found := strings.Cut(authHeader, " ")
			if !found || !strings.EqualFold(scheme, "bearer") || tokenStr == "" {
				respond.Error(writer, request, apperr.Unauthorized("Invalid authorization format"))
				return
			}
			if verifier == nil {
				respond.Error(writer, request, apperr.Unauthorized("Token authentication is not configured"))
				return
			}

			// ── 3. Token Verification ─────────────────────────────────────────
			claims, err := verifier.VerifyToken(tokenStr)
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithClaims(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireStaff guards inventory management routes.
//
// # Usage
//
// Must be registered AFTER [Authenticate]. When open is true every request
// passes; the server sets it only in development without a token secret.
//
// # Flow
//  1. Missing claims: 401.
//  2. Role other than staff: 403.
func RequireStaff(open bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if open {
				next.ServeHTTP(writer, request)
				return
			}

			claims := ctxutil.GetClaims(request.Context())
			if claims == nil {
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
				return
			}

			if !claims.Role.CanManageInventory() {
				respond.Error(writer, request, apperr.Forbidden("Staff role required"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
