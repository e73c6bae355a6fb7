package http

import (
	"context"
	"net/http"
	"strings"

	"kbase"
)

// Ensure StaticAuthenticator implements kbase.Authenticator.
var _ kbase.Authenticator = (*StaticAuthenticator)(nil)

// StaticAuthenticator resolves bearer tokens against a fixed table.
// It stands in for the external identity collaborator in deployments
// without one.
type StaticAuthenticator struct {
	identities map[string]kbase.Identity
}

// NewStaticAuthenticator creates an authenticator over a token table.
func NewStaticAuthenticator(tokens map[string]kbase.Identity) *StaticAuthenticator {
	identities := make(map[string]kbase.Identity, len(tokens))
	for token, identity := range tokens {
		identities[token] = identity
	}
	return &StaticAuthenticator{identities: identities}
}

// Authenticate resolves a token to an identity.
// Returns EUNAUTHENTICATED for unknown tokens.
func (a *StaticAuthenticator) Authenticate(ctx context.Context, token string) (*kbase.Identity, error) {
	identity, ok := a.identities[token]
	if !ok {
		return nil, kbase.Errorf(kbase.EUNAUTHENTICATED, "invalid token")
	}
	return &identity, nil
}

// requireEditor authenticates the request's bearer token and requires an
// identity that may mutate articles. With no Authenticator configured,
// requests pass through unauthenticated.
func (s *Server) requireEditor(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.Auth == nil {
			next(w, r)
			return
		}

		token := bearerToken(r)
		if token == "" {
			s.writeError(w, r, kbase.Errorf(kbase.EUNAUTHENTICATED, "authentication required"))
			return
		}

		identity, err := s.Auth.Authenticate(r.Context(), token)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		if !identity.CanEdit() {
			s.writeError(w, r, kbase.Errorf(kbase.EFORBIDDEN, "role %q may not modify articles", identity.Role))
			return
		}

		next(w, r)
	})
}

// bearerToken extracts the token from an Authorization header.
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return token
	}
	return ""
}
