package auth

import (
	"context"

	"medflow-insights/internal/model"
)

// UseCase defines the business logic interface for the auth domain.
type UseCase interface {
	// Login verifies credentials and issues a scope token.
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)

	// Me returns the account behind an authenticated scope.
	Me(ctx context.Context, sc model.Scope) (model.User, error)
}
