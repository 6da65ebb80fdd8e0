package http

import (
	"net/http"

	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
	"github.com/shiftline/shiftline-backend-go/internal/handler/http/middleware"
	"github.com/shiftline/shiftline-backend-go/internal/handler/http/response"
)

// actorFrom pulls the authenticated actor off the request, writing a 401
// when the identity middleware did not run.
func actorFrom(w http.ResponseWriter, r *http.Request) (user.Actor, bool) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing or invalid token")
		return user.Actor{}, false
	}
	return actor, true
}
