package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-qr-notes/internal/service"
	"github.com/MKhiriev/go-qr-notes/internal/utils"
	"github.com/MKhiriev/go-qr-notes/models"
)

// nextCapture records whether the wrapped handler was reached and which user
// id the middleware attached to the request context.
type nextCapture struct {
	called bool
	userID string
	ok     bool
}

func (n *nextCapture) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n.called = true
		n.userID, n.ok = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_Success(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "valid.jwt", tokenString)
			return models.Token{UserID: "user-1"}, nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	capture := &nextCapture{}
	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt")
	rec := httptest.NewRecorder()

	h.auth(capture.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, capture.called)
	assert.True(t, capture.ok)
	assert.Equal(t, "user-1", capture.userID)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	capture := &nextCapture{}
	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	rec := httptest.NewRecorder()

	h.auth(capture.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, capture.called)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	capture := &nextCapture{}
	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	req.Header.Set("Authorization", "Bearer")
	rec := httptest.NewRecorder()

	h.auth(capture.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, capture.called)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	h := newHandlerWithAuth(t, auth)

	capture := &nextCapture{}
	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	req.Header.Set("Authorization", "Bearer expired.jwt")
	rec := httptest.NewRecorder()

	h.auth(capture.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, capture.called)
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	token, err := getTokenFromAuthHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = getTokenFromAuthHeader("Bearer")
	require.ErrorIs(t, err, ErrInvalidAuthorizationHeader)

	_, err = getTokenFromAuthHeader("Bearer ")
	require.ErrorIs(t, err, ErrEmptyToken)
}
