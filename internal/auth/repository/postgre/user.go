package postgre

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"medflow-insights/internal/auth/repository"
	"medflow-insights/internal/model"
)

const (
	queryGetUserByEmail = `
		SELECT id, email, name, role, password_hash
		FROM users
		WHERE email = $1`

	queryGetUserByID = `
		SELECT id, email, name, role, password_hash
		FROM users
		WHERE id = $1`
)

func (r *implRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	return r.getUser(ctx, queryGetUserByEmail, email)
}

func (r *implRepository) GetByID(ctx context.Context, id string) (model.User, error) {
	return r.getUser(ctx, queryGetUserByID, id)
}

func (r *implRepository) getUser(ctx context.Context, query, arg string) (model.User, error) {
	var u model.User
	err := r.pool.QueryRow(ctx, query, arg).Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, repository.ErrUserNotFound
		}
		r.l.Errorf(ctx, "auth.repository.getUser: %v", err)
		return model.User{}, fmt.Errorf("querying user: %w", err)
	}
	return u, nil
}
