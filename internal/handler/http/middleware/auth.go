package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/sutra-hrms/hrms-backend-go/internal/domain/auth"
	"github.com/sutra-hrms/hrms-backend-go/internal/handler/http/response"
)

// AuthRequired rejects requests that do not carry a valid access token.
// Verification itself happens in jwtauth.Verifier earlier in the chain;
// this middleware checks the outcome and the token type claim, so refresh
// tokens cannot be replayed against protected routes.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			if tokenType, ok := claims["type"].(string); !ok || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
