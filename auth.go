package kbase

import "context"

// Roles returned by the identity collaborator. Editors and admins may
// mutate articles; viewers are read-only.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// Identity is the result of a capability check against the external
// identity/role collaborator.
type Identity struct {
	ID         string `json:"id"`
	Role       string `json:"role"`
	Department string `json:"department,omitempty"`
}

// CanEdit reports whether the identity may create, modify, or import
// articles.
func (i *Identity) CanEdit() bool {
	return i.Role == RoleAdmin || i.Role == RoleEditor
}

// Authenticator verifies a caller-supplied token.
// Returns EUNAUTHENTICATED for unknown or expired tokens.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*Identity, error)
}
