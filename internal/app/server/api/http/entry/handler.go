package entry

import (
	"context"
	"errors"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"nestlog/internal/app/server/api/http/middleware/auth"
	"nestlog/internal/domain/baby"
	"nestlog/internal/domain/entry"
)

type Handler struct {
	service    entry.Servicer
	babies     baby.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
	newID      func() int64
}

func NewHandler(service entry.Servicer, babies baby.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		babies:     babies,
		log:        log,
		middleware: mws,
		newID:      func() int64 { return time.Now().UnixMilli() },
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOpFor(entry.KindFeeding), h.listFeedings)
	huma.Register(api, h.createOpFor(entry.KindFeeding), h.createFeeding)
	huma.Register(api, h.updateOpFor(entry.KindFeeding), h.updateFeeding)
	huma.Register(api, h.deleteOpFor(entry.KindFeeding), h.deleteFeeding)

	huma.Register(api, h.listOpFor(entry.KindDiaper), h.listDiapers)
	huma.Register(api, h.createOpFor(entry.KindDiaper), h.createDiaper)
	huma.Register(api, h.updateOpFor(entry.KindDiaper), h.updateDiaper)
	huma.Register(api, h.deleteOpFor(entry.KindDiaper), h.deleteDiaper)

	huma.Register(api, h.listOpFor(entry.KindSleep), h.listSleeps)
	huma.Register(api, h.createOpFor(entry.KindSleep), h.createSleep)
	huma.Register(api, h.updateOpFor(entry.KindSleep), h.updateSleep)
	huma.Register(api, h.deleteOpFor(entry.KindSleep), h.deleteSleep)

	huma.Register(api, h.listOpFor(entry.KindGrowth), h.listGrowth)
	huma.Register(api, h.createOpFor(entry.KindGrowth), h.createGrowth)
	huma.Register(api, h.updateOpFor(entry.KindGrowth), h.updateGrowth)
	huma.Register(api, h.deleteOpFor(entry.KindGrowth), h.deleteGrowth)
}

// authorize resolves the session user and checks that the baby belongs to
// them. All entry routes go through it.
func (h *Handler) authorize(ctx context.Context, babyID int) error {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return huma.Error401Unauthorized("Unauthorized")
	}

	if _, err := h.babies.Get(ctx, userID, babyID); err != nil {
		if errors.Is(err, baby.ErrNotFound) {
			return huma.Error404NotFound("Baby not found")
		}
		return err
	}
	return nil
}

func mapSaveErr(err error) error {
	switch {
	case errors.Is(err, entry.ErrValidation):
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.Is(err, entry.ErrNotFound):
		return huma.Error404NotFound("Entry not found")
	default:
		return err
	}
}

// ==================== Feedings ====================

func (h *Handler) listFeedings(ctx context.Context, input *babyInput) (*listFeedingsOutput, error) {
	if err := h.authorize(ctx, input.BabyID); err != nil {
		return nil, err
	}

	feedings, err := h.service.ListFeedings(ctx, input.BabyID)
	if err != nil {
		return nil, err
	}

	out := &listFeedingsOutput{}
	out.Body.Feedings = feedings
	return out, nil
}

func (h *Handler) feedingFromRequest(req feedingRequest, id int64) entry.Feeding {
	if id == 0 {
		id = req.ID
	}
	if id == 0 {
		id = h.newID()
	}
	return entry.Feeding{
		ID:        id,
		Type:      req.Type,
		Volume:    req.Volume,
		Time:      req.Time,
		Timestamp: req.Timestamp,
		Note:      req.Note,
	}
}

func (h *Handler) createFeeding(ctx context.Context, input *saveFeedingInput) (*feedingOutput, error) {
	if err := h.authorize(ctx, input.BabyID); err != nil {
		return nil, err
	}

	f, err := h.service.SaveFeeding(ctx, input.BabyID, h.feedingFromRequest(input.Body, 0), true)
	if err != nil {
		return nil, mapSaveErr(err)
	}

	return &feedingOutput{Body: f}, nil
}

func (h *Handler) updateFeeding(ctx context.Context, input *updateFeedingInput) (*feedingOutput, error) {
	if err := h.authorize(ctx, input.BabyID); err != nil {
		return nil, err
	}

	f, err := h.service.SaveFeeding(ctx, input.BabyID, h.feedingFromRequest(input.Body, input.ID), false)
	if err != nil {
		return nil, mapSaveErr(err)
	}

	return &feedingOutput{Body: f}, nil
}

func (h *Handler) deleteFeeding(ctx context.Context, input *deleteInput) (*statusOutput, error) {
	if err := h.authorize(ctx, input.BabyID); err != nil {
		return nil, err
	}

	if err := h.service.DeleteFeeding(ctx, input.BabyID, input.ID); err != nil {
		return nil, err
	}

	return &statusOutput{Body: statusResponse{ID: input.ID, Status: "Ok"}}, nil
}

// ==================== Diapers ====================

func (h *Handler) listDiapers(ctx context.Context, input *babyInput) (*listDiapersOutput, error) {
	if err := h.authorize(ctx, input.BabyID); err != nil {
		return nil, err
	}

	diapers, err := h.service.ListDiapers(ctx, input.BabyID)
	if err != nil {
		return nil, err
	}

	out := &listDiapersOutput{}
	out.Body.Diapers = diapers
	return out, nil
}

func (h *Handler) diaperFromRequest(req diaperRequest, id int64) entry.Diaper {
	if id == 0 {
		id = req.ID
	}
	if id == 0 {
		id = h.newID()
	}
	return entry.Diaper{
		ID:        id,
		Type:      req.Type,
		Sub:       req.Sub,
		Time:      req.Time,
		Timestamp: req.Timestamp,
		Color:     req.Color,
	}
}

func (h *Handler) createDiaper(ctx context.Context, input *saveDiaperInput) (*diaperOutput, error) {
	if err := h.authorize(ctx, input.BabyID); err != nil {
		return nil, err
	}

	d, err := h.service.SaveDiaper(ctx, input.BabyID, h.diaperFromRequest(input.Body, 0), true)
	if err != nil {
		return nil, mapSaveErr(err)
	}

	return &diaperOutput{Body: d}, nil
}

func (h *Handler) updateDiaper(ctx context.Context, input *updateDiaperInput) (*diaperOutput, error) {
	if err := h.authorize(ctx, input.BabyID); err != nil {
		return nil, err
	}

	d, err := h.service.SaveDiaper(ctx, input.BabyID, h.diaperFromRequest(input.Body, input.ID), false)
	if err != nil {
		return nil, mapSaveErr(err)
	}

	return &diaperOutput{Body: d}, nil
}

func (h *Handler) deleteDiaper(ctx context.Context, input *deleteInput) (*statusOutput, error) {
	if err := h.authorize(ctx, input.BabyID); err != nil {
		return nil, err
	}

	if err := h.service.DeleteDiaper(ctx, input.BabyID, input.ID); err != nil {
		return nil, err
	}

	return &statusOutput{Body: statusResponse{ID: input.ID, Status: "Ok"}}, nil
}

// ==================== Sleeps ====================

func (h *Handler) listSleeps(ctx context.Context, input *babyInput) (*listSleepsOutput, error) {
	if err := h.authorize(ctx, input.BabyID); err != nil {
		return nil, err
	}

	sleeps, err := h.service.ListSleeps(ctx, input.BabyID)
	if err != nil {
		return nil, err
	}

	out := &listSleepsOutput{}
	out.Body.Sleeps = sleeps
	return out, nil
}

func (h *Handler) sleepFromRequest(req sleepRequest, id int64) entry.Sleep {
	if id == 0 {
		id = req.ID
	}
	if id == 0 {
		id = h.newID()
	}
	return entry.Sleep{
		ID:        id,
		Start:     req.Start,
		End:       req.End,
		Timestamp: req.Timestamp,
	}
}

func (h *Handler) createSleep(ctx context.Context, input *saveSleepInput) (*sleepOutput, error) {
	if err := h.authorize(ctx, input.BabyID); err != nil {
		return nil, err
	}

	s, err := h.service.SaveSleep(ctx, input.BabyID, h.sleepFromRequest(input.Body, 0), true)
	if err != nil {
		return nil, mapSaveErr(err)
	}

	return &sleepOutput{Body: s}, nil
}

func (h *Handler) updateSleep(ctx context.Context, input *updateSleepInput) (*sleepOutput, error) {
	if err := h.authorize(ctx, input.BabyID); err != nil {
		return nil, err
	}

	s, err := h.service.SaveSleep(ctx, input.BabyID, h.sleepFromRequest(input.Body, input.ID), false)
	if err != nil {
		return nil, mapSaveErr(err)
	}

	return &sleepOutput{Body: s}, nil
}

func (h *Handler) deleteSleep(ctx context.Context, input *deleteInput) (*statusOutput, error) {
	if err := h.authorize(ctx, input.BabyID); err != nil {
		return nil, err
	}

	if err := h.service.DeleteSleep(ctx, input.BabyID, input.ID); err != nil {
		return nil, err
	}

	return &statusOutput{Body: statusResponse{ID: input.ID, Status: "Ok"}}, nil
}

// ==================== Growth ====================

func (h *Handler) listGrowth(ctx context.Context, input *babyInput) (*listGrowthOutput, error) {
	if err := h.authorize(ctx, input.BabyID); err != nil {
		return nil, err
	}

	growth, err := h.service.ListGrowth(ctx, input.BabyID)
	if err != nil {
		return nil, err
	}

	out := &listGrowthOutput{}
	out.Body.Growth = growth
	return out, nil
}

func (h *Handler) growthFromRequest(req growthRequest, id int64) entry.Growth {
	if id == 0 {
		id = req.ID
	}
	if id == 0 {
		id = h.newID()
	}
	return entry.Growth{
		ID:     id,
		Weight: req.Weight,
		Height: req.Height,
		Date:   req.Date,
	}
}

func (h *Handler) createGrowth(ctx context.Context, input *saveGrowthInput) (*growthOutput, error) {
	if err := h.authorize(ctx, input.BabyID); err != nil {
		return nil, err
	}

	g, err := h.service.SaveGrowth(ctx, input.BabyID, h.growthFromRequest(input.Body, 0), true)
	if err != nil {
		return nil, mapSaveErr(err)
	}

	return &growthOutput{Body: g}, nil
}

func (h *Handler) updateGrowth(ctx context.Context, input *updateGrowthInput) (*growthOutput, error) {
	if err := h.authorize(ctx, input.BabyID); err != nil {
		return nil, err
	}

	g, err := h.service.SaveGrowth(ctx, input.BabyID, h.growthFromRequest(input.Body, input.ID), false)
	if err != nil {
		return nil, mapSaveErr(err)
	}

	return &growthOutput{Body: g}, nil
}

func (h *Handler) deleteGrowth(ctx context.Context, input *deleteInput) (*statusOutput, error) {
	if err := h.authorize(ctx, input.BabyID); err != nil {
		return nil, err
	}

	if err := h.service.DeleteGrowth(ctx, input.BabyID, input.ID); err != nil {
		return nil, err
	}

	return &statusOutput{Body: statusResponse{ID: input.ID, Status: "Ok"}}, nil
}
