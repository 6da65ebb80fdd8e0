package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
	"github.com/shiftline/shiftline-backend-go/internal/handler/http/response"
)

type actorKey struct{}

// ResolveIdentity maps the verified token to an internal user, creating the
// row on first contact, and puts the resulting Actor on the context. The
// actor's role comes from the resolved user row, not the raw claim.
func ResolveIdentity(users user.Service, roleClaim string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.Unauthorized(w, "Missing or invalid token")
				return
			}

			identity := user.Identity{ExternalID: token.Subject()}
			if name, ok := claims["name"].(string); ok {
				identity.Name = name
			}
			if email, ok := claims["email"].(string); ok {
				identity.Email = email
			}
			if role, ok := claims[roleClaim].(string); ok {
				identity.Role = user.Role(role)
			}

			u, err := users.ResolveIdentity(r.Context(), identity)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			actor := user.Actor{UserID: u.ID, Role: u.Role}
			ctx := context.WithValue(r.Context(), actorKey{}, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ActorFromContext returns the authenticated actor set by ResolveIdentity.
func ActorFromContext(ctx context.Context) (user.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(user.Actor)
	return actor, ok
}
