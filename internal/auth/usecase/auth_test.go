package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"medflow-insights/internal/auth"
	"medflow-insights/internal/auth/repository"
	"medflow-insights/internal/model"
	pkgLog "medflow-insights/pkg/log"
	"medflow-insights/pkg/scope"
)

type stubUserRepo struct {
	users map[string]model.User // keyed by email
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	u, ok := s.users[email]
	if !ok {
		return model.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, repository.ErrUserNotFound
}

func newTestUseCase(t *testing.T) (*implUseCase, scope.Manager) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	repo := &stubUserRepo{users: map[string]model.User{
		"pm@medflow.test": {
			ID:           "u1",
			Email:        "pm@medflow.test",
			Name:         "Dana",
			Role:         model.RoleProjectManager,
			PasswordHash: string(hash),
		},
	}}

	mgr := scope.NewManager("test-secret", time.Hour)
	return New(pkgLog.NewNop(), repo, mgr), mgr
}

func TestLogin_Success(t *testing.T) {
	uc, mgr := newTestUseCase(t)

	out, err := uc.Login(context.Background(), auth.LoginInput{
		Email:    "pm@medflow.test",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if out.User.PasswordHash != "" {
		t.Errorf("password hash leaked in output")
	}

	claims, err := mgr.Verify(out.Token)
	if err != nil {
		t.Fatalf("Verify issued token: %v", err)
	}
	if claims.UserID != "u1" || claims.Role != "project_manager" {
		t.Errorf("claims = %+v, want u1/project_manager", claims)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	uc, _ := newTestUseCase(t)

	cases := []auth.LoginInput{
		{Email: "pm@medflow.test", Password: "wrong"},
		{Email: "ghost@medflow.test", Password: "correct-horse"},
	}
	for _, input := range cases {
		if _, err := uc.Login(context.Background(), input); !errors.Is(err, auth.ErrInvalidCredentials) {
			t.Errorf("Login(%s): err = %v, want ErrInvalidCredentials", input.Email, err)
		}
	}
}

func TestMe(t *testing.T) {
	uc, _ := newTestUseCase(t)

	user, err := uc.Me(context.Background(), model.Scope{UserID: "u1", Role: model.RoleProjectManager})
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if user.Email != "pm@medflow.test" {
		t.Errorf("Email = %q", user.Email)
	}
	if user.PasswordHash != "" {
		t.Errorf("password hash leaked in output")
	}

	if _, err := uc.Me(context.Background(), model.Scope{UserID: "ghost"}); !errors.Is(err, auth.ErrUserNotFound) {
		t.Errorf("Me(ghost): err = %v, want ErrUserNotFound", err)
	}
}
