package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"lorebook/internal/domain"
	"lorebook/internal/domain/models"
	"lorebook/internal/httputil"
)

// stubVerifier accepts a single token string and maps it to an account.
type stubVerifier struct {
	token   string
	account string
}

func (v *stubVerifier) VerifyToken(tokenString string) (*models.Claims, error) {
	if tokenString != v.token {
		return nil, domain.ErrUnauthorized
	}
	return &models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: v.account},
	}, nil
}

func (v *stubVerifier) Close() error { return nil }

func newAuthStack(capture *string) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*capture = httputil.Caller(r)
		w.WriteHeader(http.StatusOK)
	})
	return Auth(&stubVerifier{token: "good", account: "alice"}, logger)(next)
}

func TestAuthAcceptsValidToken(t *testing.T) {
	var caller string
	stack := newAuthStack(&caller)

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	stack.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", caller)
}

func TestAuthRejectsMissingToken(t *testing.T) {
	var caller string
	stack := newAuthStack(&caller)

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	rec := httptest.NewRecorder()
	stack.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	assert.Empty(t, caller)
}

func TestAuthRejectsBadToken(t *testing.T) {
	var caller string
	stack := newAuthStack(&caller)

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	req.Header.Set("Authorization", "Bearer forged")
	rec := httptest.NewRecorder()
	stack.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, caller)
}

func TestAuthSkipsHealth(t *testing.T) {
	var caller string
	stack := newAuthStack(&caller)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	stack.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, caller)
}
