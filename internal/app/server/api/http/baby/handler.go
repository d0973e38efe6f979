package baby

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"nestlog/internal/app/server/api/http/middleware/auth"
	"nestlog/internal/domain/baby"
)

type Handler struct {
	service    baby.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service baby.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.defaultOp(), h.getDefault)
	huma.Register(api, h.getOp(), h.get)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	babies, err := h.service.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &listOutput{Body: listResponse{Babies: babies}}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	b, err := h.service.Create(ctx, userID, input.Body.Name, input.Body.BirthDate)
	if err != nil {
		if errors.Is(err, baby.ErrInvalidInput) {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		return nil, err
	}

	return &createOutput{Body: b}, nil
}

func (h *Handler) getDefault(ctx context.Context, _ *struct{}) (*getOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	b, err := h.service.GetOrCreateDefault(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &getOutput{Body: b}, nil
}

func (h *Handler) get(ctx context.Context, input *getInput) (*getOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	b, err := h.service.Get(ctx, userID, input.BabyID)
	if err != nil {
		if errors.Is(err, baby.ErrNotFound) {
			return nil, huma.Error404NotFound("Baby not found")
		}
		return nil, err
	}

	return &getOutput{Body: b}, nil
}
