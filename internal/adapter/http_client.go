package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-qr-notes/internal/utils"
	"github.com/MKhiriev/go-qr-notes/models"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// HTTPBackend is the resty-based implementation of the Identity,
// NoteRepository and UserRepository interfaces.
//
// The session token is guarded by a mutex: the terminal UI issues requests
// from command goroutines while sign-in/sign-out happen on others.
type HTTPBackend struct {
	client *resty.Client

	mu     sync.RWMutex
	token  string
	userID string
}

func NewHTTPBackend(cfg HTTPClientConfig) *HTTPBackend {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &HTTPBackend{client: cli}
}

// ─── Identity ───

func (h *HTTPBackend) SignUp(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("sign up request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var created models.User
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.User{}, fmt.Errorf("decode sign up response: %w", err)
	}

	return created, nil
}

func (h *HTTPBackend) SignIn(ctx context.Context, email, password string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email, "password": password}).
		Post("/api/auth/login")
	if err != nil {
		return fmt.Errorf("sign in request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("sign in parse bearer token: %w", err)
	}
	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return fmt.Errorf("sign in parse user id: %w", err)
	}

	h.mu.Lock()
	h.token = token
	h.userID = userID
	h.mu.Unlock()

	return nil
}

func (h *HTTPBackend) SignOut() {
	h.mu.Lock()
	h.token = ""
	h.userID = ""
	h.mu.Unlock()
}

func (h *HTTPBackend) CurrentUserID() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.userID
}

// ─── UserRepository ───

func (h *HTTPBackend) Me(ctx context.Context) (models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/api/users/me")
	if err != nil {
		return models.User{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode profile response: %w", err)
	}

	return user, nil
}

// ─── NoteRepository ───

func (h *HTTPBackend) Create(ctx context.Context, note models.Note) (models.Note, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(note).
		Post("/api/notes")
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	var created models.Note
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Note{}, fmt.Errorf("decode create note response: %w", err)
	}

	return created, nil
}

func (h *HTTPBackend) Get(ctx context.Context, id string) (models.Note, error) {
	resp, err := h.authedRequest(ctx).Get("/api/notes/" + id)
	if err != nil {
		return models.Note{}, fmt.Errorf("get note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	var note models.Note
	if err = json.Unmarshal(resp.Body(), &note); err != nil {
		return models.Note{}, fmt.Errorf("decode note response: %w", err)
	}

	return note, nil
}

func (h *HTTPBackend) List(ctx context.Context) ([]models.Note, error) {
	resp, err := h.authedRequest(ctx).Get("/api/notes")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var notes []models.Note
	if err = json.Unmarshal(resp.Body(), &notes); err != nil {
		return nil, fmt.Errorf("decode notes response: %w", err)
	}

	return notes, nil
}

func (h *HTTPBackend) UpdateFields(ctx context.Context, id string, update models.NoteUpdate) (models.Note, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Patch("/api/notes/" + id)
	if err != nil {
		return models.Note{}, fmt.Errorf("update note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	var updated models.Note
	if err = json.Unmarshal(resp.Body(), &updated); err != nil {
		return models.Note{}, fmt.Errorf("decode updated note response: %w", err)
	}

	return updated, nil
}

func (h *HTTPBackend) Delete(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/notes/" + id)
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *HTTPBackend) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)

	h.mu.RLock()
	token := h.token
	h.mu.RUnlock()

	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
