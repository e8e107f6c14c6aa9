package usecase

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"medflow-insights/internal/auth"
	"medflow-insights/internal/auth/repository"
	"medflow-insights/internal/model"
)

// Login verifies credentials and issues a scope token. A missing user and a
// wrong password are indistinguishable to the caller.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.LoginOutput, error) {
	user, err := uc.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return auth.LoginOutput{}, auth.ErrInvalidCredentials
		}
		uc.l.Errorf(ctx, "auth.usecase.Login: %v", err)
		return auth.LoginOutput{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}

	token, err := uc.jwtManager.Generate(user.ID, string(user.Role))
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.Login: generating token: %v", err)
		return auth.LoginOutput{}, err
	}

	user.PasswordHash = ""
	uc.l.Infof(ctx, "user %s logged in", user.ID)
	return auth.LoginOutput{Token: token, User: user}, nil
}

// Me returns the account behind an authenticated scope.
func (uc *implUseCase) Me(ctx context.Context, sc model.Scope) (model.User, error) {
	user, err := uc.repo.GetByID(ctx, sc.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.User{}, auth.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "auth.usecase.Me: %v", err)
		return model.User{}, err
	}

	user.PasswordHash = ""
	return user, nil
}
