package model

// User is an account that can log in and view analytics.
type User struct {
	ID           string
	Email        string
	Name         string
	Role         Role
	PasswordHash string
}
