package middleware

import (
	"net/http"

	"cafe/internal/api/util"
)

type AuthMiddleware struct {
	tokens *util.TokenIssuer
}

func NewAuthMiddleware(tokens *util.TokenIssuer) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
	}
}

// Authenticate resolves the bearer token into an Identity on the request
// context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := util.BearerToken(r)
		if token == "" {
			util.WriteMessage(w, http.StatusUnauthorized, "Not authorized")
			return
		}
		identity, err := m.tokens.Parse(token)
		if err != nil {
			util.WriteMessage(w, http.StatusUnauthorized, "Not authorized")
			return
		}
		next.ServeHTTP(w, r.WithContext(util.WithIdentity(r.Context(), identity)))
	})
}

// RequireAdmin must run after Authenticate.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := util.IdentityFrom(r.Context())
		if !ok {
			util.WriteMessage(w, http.StatusUnauthorized, "Not authorized")
			return
		}
		if !identity.IsAdmin() {
			util.WriteMessage(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
