package mock

import (
	"context"

	"kbase"
)

var _ kbase.Authenticator = (*Authenticator)(nil)

// Authenticator is a mock implementation of kbase.Authenticator.
type Authenticator struct {
	AuthenticateFn func(ctx context.Context, token string) (*kbase.Identity, error)
}

func (a *Authenticator) Authenticate(ctx context.Context, token string) (*kbase.Identity, error) {
	return a.AuthenticateFn(ctx, token)
}
