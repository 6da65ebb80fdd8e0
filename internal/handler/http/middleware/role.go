package middleware

import (
	"fmt"
	"net/http"

	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
	"github.com/shiftline/shiftline-backend-go/internal/handler/http/response"
)

// RequireOperator gates a route to operators.
func RequireOperator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFromContext(r.Context())
		if !ok {
			response.Unauthorized(w, "Missing or invalid token")
			return
		}
		if !actor.IsOperator() {
			response.Forbidden(w, "Operator access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequirePermission checks the actor's capability before the handler runs.
// Services re-check; this just fails fast with a clearer message.
func RequirePermission(permission user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := ActorFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Missing or invalid token")
				return
			}
			if !user.HasPermission(actor.Role, permission) {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s'", permission))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
