package middleware

import (
	"context"
	"net/http"

	"revshop-web/internal/domain"
	"revshop-web/pkg/utils"
)

// AuthMiddleware extracts the buyer's bearer token, decodes its claims for
// identity and role gating, and stores the Session in the request context.
// The signature is not verified here: the gateway forwards the raw token to
// the marketplace API, which remains the authority on its validity.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := utils.BearerToken(r)
		if err != nil {
			utils.WriteError(w, http.StatusUnauthorized, "Please login to continue")
			return
		}

		claims, err := utils.DecodeClaims(token)
		if err != nil {
			utils.WriteError(w, http.StatusUnauthorized, "Session expired, please login again")
			return
		}

		session := &domain.Session{
			Token:  token,
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   claims.Role,
		}

		ctx := context.WithValue(r.Context(), domain.SessionContextKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// BuyerOnly rejects sessions whose role is not BUYER, mirroring the page
// shell's ensureRole redirect.
func BuyerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := domain.SessionFromContext(r.Context())
		if !ok {
			utils.WriteError(w, http.StatusUnauthorized, "Please login to continue")
			return
		}
		if session.Role != domain.RoleBuyer {
			utils.WriteError(w, http.StatusForbidden, "This page is for buyers only")
			return
		}
		next.ServeHTTP(w, r)
	})
}
