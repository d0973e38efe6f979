package client

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"nestlog/internal/app/client/config"
	userAPI "nestlog/internal/app/server/api/http/user"
	"nestlog/internal/domain/baby"
	"nestlog/internal/domain/entry"
	"nestlog/internal/viewmodel"
)

// App ties the HTTP client and the local cache together for the CLI
// commands. A stored token is picked up automatically on startup.
type App struct {
	cfg   *config.Config
	log   *slog.Logger
	http  *httpClient
	cache *SQLiteStorage

	babyID int
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	cache, err := NewSQLiteStorage(cfg.CachePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open local cache: %w", err)
	}

	app := &App{
		cfg:   cfg,
		log:   log,
		http:  NewHTTPClient(cfg, log),
		cache: cache,
	}

	if token, err := app.loadToken(); err == nil && token != "" {
		app.http.SetToken(token)
	}

	return app, nil
}

func (a *App) Close() error {
	return a.cache.Close()
}

// CheckConnection pings the server health endpoint.
func (a *App) CheckConnection(ctx context.Context) error {
	return a.http.HealthCheck(ctx)
}

func (a *App) Register(ctx context.Context, username, password string, answers [3]string) error {
	return a.http.Register(ctx, userAPI.RegisterRequest{
		Username: username,
		Password: password,
		Answers: userAPI.SecurityAnswers{
			Q1: answers[0],
			Q2: answers[1],
			Q3: answers[2],
		},
	})
}

// Login authenticates and persists the session token for later commands.
func (a *App) Login(ctx context.Context, username, password string) error {
	token, err := a.http.Login(ctx, username, password)
	if err != nil {
		return err
	}

	if err := a.saveToken(token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	return nil
}

func (a *App) ResetPassword(ctx context.Context, username string, answers [3]string, newPassword string) error {
	return a.http.ResetPassword(ctx, userAPI.ResetRequest{
		Username: username,
		Answers: userAPI.SecurityAnswers{
			Q1: answers[0],
			Q2: answers[1],
			Q3: answers[2],
		},
		NewPassword: newPassword,
	})
}

// IsAuthenticated reports whether a session token is present. The token may
// still have expired server side.
func (a *App) IsAuthenticated() bool {
	return a.http.token != ""
}

// Baby resolves the working baby profile: the account's default baby, which
// the server creates on first use.
func (a *App) Baby(ctx context.Context) (baby.Baby, error) {
	b, err := a.http.DefaultBaby(ctx)
	if err != nil {
		return baby.Baby{}, err
	}

	a.babyID = b.ID
	return b, nil
}

func (a *App) ensureBaby(ctx context.Context) (int, error) {
	if a.babyID != 0 {
		return a.babyID, nil
	}

	b, err := a.Baby(ctx)
	if err != nil {
		return 0, err
	}
	return b.ID, nil
}

// Refresh fetches all entries from the server and replaces the local cache
// snapshot.
func (a *App) Refresh(ctx context.Context) (entry.Store, error) {
	babyID, err := a.ensureBaby(ctx)
	if err != nil {
		return entry.Store{}, err
	}

	var store entry.Store

	if store.Feedings, err = a.http.ListFeedings(ctx, babyID); err != nil {
		return entry.Store{}, err
	}
	if store.Diapers, err = a.http.ListDiapers(ctx, babyID); err != nil {
		return entry.Store{}, err
	}
	if store.Sleeps, err = a.http.ListSleeps(ctx, babyID); err != nil {
		return entry.Store{}, err
	}
	if store.Growth, err = a.http.ListGrowth(ctx, babyID); err != nil {
		return entry.Store{}, err
	}

	if err := a.cache.ReplaceStore(babyID, store); err != nil {
		a.log.Warn("failed to update local cache", "error", err)
	}

	return store, nil
}

// Store returns the server state when reachable, otherwise the last cached
// snapshot.
func (a *App) Store(ctx context.Context) (entry.Store, error) {
	store, err := a.Refresh(ctx)
	if err == nil {
		return store, nil
	}

	a.log.Debug("falling back to local cache", "error", err)

	babyID := a.babyID
	if babyID == 0 {
		if babyID, _ = a.cache.LastBabyID(); babyID == 0 {
			return entry.Store{}, err
		}
	}

	cached, cacheErr := a.cache.LoadStore(babyID)
	if cacheErr != nil {
		return entry.Store{}, err
	}
	return cached, nil
}

// AddFeeding and its siblings assign a fresh client id before sending when
// the caller left it zero. The id doubles as the creation timestamp in
// milliseconds.

func (a *App) AddFeeding(ctx context.Context, f entry.Feeding) (entry.Feeding, error) {
	babyID, err := a.ensureBaby(ctx)
	if err != nil {
		return entry.Feeding{}, err
	}

	now := time.Now().UnixMilli()
	if f.ID == 0 {
		f.ID = now
	}
	if f.Timestamp == 0 {
		f.Timestamp = now
	}
	return a.http.CreateFeeding(ctx, babyID, f)
}

func (a *App) AddDiaper(ctx context.Context, d entry.Diaper) (entry.Diaper, error) {
	babyID, err := a.ensureBaby(ctx)
	if err != nil {
		return entry.Diaper{}, err
	}

	now := time.Now().UnixMilli()
	if d.ID == 0 {
		d.ID = now
	}
	if d.Timestamp == 0 {
		d.Timestamp = now
	}
	return a.http.CreateDiaper(ctx, babyID, d)
}

func (a *App) AddSleep(ctx context.Context, s entry.Sleep) (entry.Sleep, error) {
	babyID, err := a.ensureBaby(ctx)
	if err != nil {
		return entry.Sleep{}, err
	}

	now := time.Now().UnixMilli()
	if s.ID == 0 {
		s.ID = now
	}
	if s.Timestamp == 0 {
		s.Timestamp = now
	}
	return a.http.CreateSleep(ctx, babyID, s)
}

func (a *App) AddGrowth(ctx context.Context, g entry.Growth) (entry.Growth, error) {
	babyID, err := a.ensureBaby(ctx)
	if err != nil {
		return entry.Growth{}, err
	}

	if g.ID == 0 {
		g.ID = time.Now().UnixMilli()
	}
	return a.http.CreateGrowth(ctx, babyID, g)
}

func (a *App) DeleteEntry(ctx context.Context, kind entry.Kind, id int64) error {
	babyID, err := a.ensureBaby(ctx)
	if err != nil {
		return err
	}
	return a.http.DeleteEntry(ctx, babyID, kind, id)
}

// Summary builds the daily digest, preferring fresh server data.
func (a *App) Summary(ctx context.Context) (Summary, error) {
	store, err := a.Store(ctx)
	if err != nil {
		return Summary{}, err
	}
	return BuildSummary(store, time.Now().UnixMilli()), nil
}

// ExportCSV renders every entry as CSV.
func (a *App) ExportCSV(ctx context.Context) (string, error) {
	store, err := a.Store(ctx)
	if err != nil {
		return "", err
	}
	return viewmodel.ExportCSV(store), nil
}

func (a *App) loadToken() (string, error) {
	data, err := os.ReadFile(a.cfg.TokenPath)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (a *App) saveToken(token string) error {
	return os.WriteFile(a.cfg.TokenPath, []byte(token), 0600)
}
