package middleware

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwk"

	"github.com/shiftline/shiftline-backend-go/internal/config"
	"github.com/shiftline/shiftline-backend-go/internal/handler/http/response"
)

// NewVerifier builds the token verifier for the identity provider. A JWKS
// document selects RS256; the shared-secret fallback is for development.
func NewVerifier(cfg config.AuthConfig) (*jwtauth.JWTAuth, error) {
	if cfg.JWKSJSON != "" {
		set, err := jwk.Parse([]byte(cfg.JWKSJSON))
		if err != nil {
			return nil, fmt.Errorf("parse jwks: %w", err)
		}
		key, ok := set.Key(0)
		if !ok {
			return nil, errors.New("jwks contains no keys")
		}
		var pub rsa.PublicKey
		if err := key.Raw(&pub); err != nil {
			return nil, fmt.Errorf("extract public key: %w", err)
		}
		return jwtauth.New("RS256", nil, &pub), nil
	}
	return jwtauth.New("HS256", []byte(cfg.HS256Key), nil), nil
}

// AuthRequired rejects requests whose token failed verification.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, _, err := jwtauth.FromContext(r.Context())

		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}

		if token == nil {
			response.Unauthorized(w, "Missing or invalid token")
			return
		}

		next.ServeHTTP(w, r)
	})
}
