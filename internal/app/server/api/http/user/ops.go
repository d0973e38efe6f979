package user

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) registerOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-register",
		Method:      http.MethodPost,
		Path:        "/user/register",
		Summary:     "Register a new account",
		Tags:        []string{"users"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-login",
		Method:      http.MethodPost,
		Path:        "/user/login",
		Summary:     "Log in and receive a bearer token",
		Tags:        []string{"users"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) resetPasswordOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-reset-password",
		Method:      http.MethodPost,
		Path:        "/user/reset-password",
		Summary:     "Reset the password using security answers",
		Tags:        []string{"users"},
		Middlewares: h.middleware,
	}
}
