package auth

import "medflow-insights/internal/model"

// LoginInput holds the credentials for a login attempt.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput carries the issued token and the account it belongs to.
type LoginOutput struct {
	Token string
	User  model.User
}
