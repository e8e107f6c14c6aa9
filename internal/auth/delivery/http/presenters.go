package http

import (
	"medflow-insights/internal/auth"
	"medflow-insights/internal/model"
)

// --- Request DTOs ---

type loginReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=1"`
}

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

// --- Response DTOs ---

type userResp struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  string(u.Role),
	}
}

type loginResp struct {
	Token string   `json:"token"`
	User  userResp `json:"user"`
}

func (h *handler) newLoginResp(out auth.LoginOutput) loginResp {
	return loginResp{
		Token: out.Token,
		User:  newUserResp(out.User),
	}
}

type meResp struct {
	User userResp `json:"user"`
}

func (h *handler) newMeResp(u model.User) meResp {
	return meResp{User: newUserResp(u)}
}
