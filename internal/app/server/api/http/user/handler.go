package user

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"nestlog/internal/domain/session"
	"nestlog/internal/domain/user"
)

type Handler struct {
	service    user.Servicer
	session    session.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service user.Servicer, session session.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		session:    session,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.resetPasswordOp(), h.resetPassword)
}

func answersToArray(a SecurityAnswers) [user.AnswerCount]string {
	return [user.AnswerCount]string{a.Q1, a.Q2, a.Q3}
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*registerOutput, error) {
	userID, err := h.service.Register(ctx, input.Body.Username, input.Body.Password,
		answersToArray(input.Body.Answers))
	if err != nil {
		return &registerOutput{
			Body: RegisterResponse{Status: "Error", Error: err.Error()},
		}, nil
	}

	return &registerOutput{
		Body: RegisterResponse{ID: userID, Status: "Ok"},
	}, nil
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	u, err := h.service.Authenticate(ctx, input.Body.Username, input.Body.Password)
	if err != nil {
		return &loginOutput{
			Body: LoginResponse{Status: "Error", Error: "Invalid credentials"},
		}, nil
	}

	token, err := h.session.Create(ctx, u.ID)
	if err != nil {
		h.log.Error("failed to create session", "user_id", u.ID, "error", err)
		return &loginOutput{
			Body: LoginResponse{Status: "Error", Error: "Could not create session"},
		}, nil
	}

	return &loginOutput{
		Body: LoginResponse{Token: token, Status: "Ok"},
	}, nil
}

func (h *Handler) resetPassword(ctx context.Context, input *resetInput) (*resetOutput, error) {
	err := h.service.ResetPassword(ctx, input.Body.Username,
		answersToArray(input.Body.Answers), input.Body.NewPassword)
	if err != nil {
		// The reset flow reports a generic failure: which answer failed, or
		// whether the account exists at all, is not disclosed.
		h.log.Debug("password reset failed", "username", input.Body.Username, "error", err)
		return &resetOutput{
			Body: ResetResponse{Status: "Error", Error: "Reset rejected"},
		}, nil
	}

	return &resetOutput{
		Body: ResetResponse{Status: "Ok"},
	}, nil
}
