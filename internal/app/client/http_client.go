package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/exp/slog"

	"nestlog/internal/app/client/config"
	userAPI "nestlog/internal/app/server/api/http/user"
	"nestlog/internal/domain/baby"
	"nestlog/internal/domain/entry"
)

type httpClient struct {
	client    *http.Client
	config    *config.Config
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) *httpClient {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}

	return &httpClient{
		client:    client,
		config:    cfg,
		log:       log,
		baseURL:   scheme + cfg.ServerAddress,
		userAgent: "Nestlog-Client/1.0",
	}
}

// SetToken sets the bearer token sent with authenticated requests.
func (h *httpClient) SetToken(token string) {
	h.token = token
}

// HealthCheck verifies that the server is reachable.
func (h *httpClient) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("server unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned status: %d", resp.StatusCode)
	}

	return nil
}

func (h *httpClient) Register(ctx context.Context, req userAPI.RegisterRequest) error {
	resp, err := h.doRequest(ctx, http.MethodPost, "/user/register", req)
	if err != nil {
		return err
	}

	var regResp userAPI.RegisterResponse
	if err := h.parseResponse(resp, &regResp); err != nil {
		return err
	}

	if regResp.Status == "Error" {
		return fmt.Errorf("registration rejected: %s", regResp.Error)
	}
	return nil
}

func (h *httpClient) Login(ctx context.Context, username, password string) (string, error) {
	req := userAPI.LoginRequest{
		Username: username,
		Password: password,
	}

	resp, err := h.doRequest(ctx, http.MethodPost, "/user/login", req)
	if err != nil {
		return "", err
	}

	var loginResp userAPI.LoginResponse
	if err := h.parseResponse(resp, &loginResp); err != nil {
		return "", err
	}

	if loginResp.Status == "Error" {
		return "", fmt.Errorf("login rejected: %s", loginResp.Error)
	}

	h.SetToken(loginResp.Token)
	return loginResp.Token, nil
}

func (h *httpClient) ResetPassword(ctx context.Context, req userAPI.ResetRequest) error {
	resp, err := h.doRequest(ctx, http.MethodPost, "/user/reset-password", req)
	if err != nil {
		return err
	}

	var resetResp userAPI.ResetResponse
	if err := h.parseResponse(resp, &resetResp); err != nil {
		return err
	}

	if resetResp.Status == "Error" {
		return fmt.Errorf("password reset rejected: %s", resetResp.Error)
	}
	return nil
}

// DefaultBaby resolves the account's default baby profile; the server
// creates one on first use.
func (h *httpClient) DefaultBaby(ctx context.Context) (baby.Baby, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/babies/default", nil)
	if err != nil {
		return baby.Baby{}, err
	}

	var b baby.Baby
	if err := h.parseResponse(resp, &b); err != nil {
		return baby.Baby{}, err
	}

	return b, nil
}

func (h *httpClient) entryPath(babyID int, kind entry.Kind) string {
	return fmt.Sprintf("/api/babies/%d/%s", babyID, kind)
}

func (h *httpClient) ListFeedings(ctx context.Context, babyID int) ([]entry.Feeding, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, h.entryPath(babyID, entry.KindFeeding), nil)
	if err != nil {
		return nil, err
	}

	var listResp struct {
		Feedings []entry.Feeding `json:"feedings"`
	}
	if err := h.parseResponse(resp, &listResp); err != nil {
		return nil, err
	}

	return listResp.Feedings, nil
}

func (h *httpClient) ListDiapers(ctx context.Context, babyID int) ([]entry.Diaper, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, h.entryPath(babyID, entry.KindDiaper), nil)
	if err != nil {
		return nil, err
	}

	var listResp struct {
		Diapers []entry.Diaper `json:"diapers"`
	}
	if err := h.parseResponse(resp, &listResp); err != nil {
		return nil, err
	}

	return listResp.Diapers, nil
}

func (h *httpClient) ListSleeps(ctx context.Context, babyID int) ([]entry.Sleep, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, h.entryPath(babyID, entry.KindSleep), nil)
	if err != nil {
		return nil, err
	}

	var listResp struct {
		Sleeps []entry.Sleep `json:"sleeps"`
	}
	if err := h.parseResponse(resp, &listResp); err != nil {
		return nil, err
	}

	return listResp.Sleeps, nil
}

func (h *httpClient) ListGrowth(ctx context.Context, babyID int) ([]entry.Growth, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, h.entryPath(babyID, entry.KindGrowth), nil)
	if err != nil {
		return nil, err
	}

	var listResp struct {
		Growth []entry.Growth `json:"growth"`
	}
	if err := h.parseResponse(resp, &listResp); err != nil {
		return nil, err
	}

	return listResp.Growth, nil
}

func (h *httpClient) CreateFeeding(ctx context.Context, babyID int, f entry.Feeding) (entry.Feeding, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, h.entryPath(babyID, entry.KindFeeding), f)
	if err != nil {
		return entry.Feeding{}, err
	}

	var created entry.Feeding
	if err := h.parseResponse(resp, &created); err != nil {
		return entry.Feeding{}, err
	}
	return created, nil
}

func (h *httpClient) CreateDiaper(ctx context.Context, babyID int, d entry.Diaper) (entry.Diaper, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, h.entryPath(babyID, entry.KindDiaper), d)
	if err != nil {
		return entry.Diaper{}, err
	}

	var created entry.Diaper
	if err := h.parseResponse(resp, &created); err != nil {
		return entry.Diaper{}, err
	}
	return created, nil
}

func (h *httpClient) CreateSleep(ctx context.Context, babyID int, s entry.Sleep) (entry.Sleep, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, h.entryPath(babyID, entry.KindSleep), s)
	if err != nil {
		return entry.Sleep{}, err
	}

	var created entry.Sleep
	if err := h.parseResponse(resp, &created); err != nil {
		return entry.Sleep{}, err
	}
	return created, nil
}

func (h *httpClient) CreateGrowth(ctx context.Context, babyID int, g entry.Growth) (entry.Growth, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, h.entryPath(babyID, entry.KindGrowth), g)
	if err != nil {
		return entry.Growth{}, err
	}

	var created entry.Growth
	if err := h.parseResponse(resp, &created); err != nil {
		return entry.Growth{}, err
	}
	return created, nil
}

func (h *httpClient) DeleteEntry(ctx context.Context, babyID int, kind entry.Kind, id int64) error {
	path := fmt.Sprintf("%s/%d", h.entryPath(babyID, kind), id)
	resp, err := h.doRequest(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}

	return h.parseResponse(resp, nil)
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	h.log.Debug("sending request",
		"method", method,
		"url", req.URL.String(),
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	return resp, nil
}

func (h *httpClient) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	h.log.Debug("received response",
		"status", resp.StatusCode,
	)

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error  string `json:"error"`
			Detail string `json:"detail"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil {
			if errResp.Error != "" {
				return fmt.Errorf("server error: %s", errResp.Error)
			}
			if errResp.Detail != "" {
				return fmt.Errorf("server error: %s", errResp.Detail)
			}
		}
		return fmt.Errorf("server error: status %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}
