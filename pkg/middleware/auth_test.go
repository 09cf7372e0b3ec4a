package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sequencer-stats-api/internal/domain"
	"github.com/vfg2006/sequencer-stats-api/internal/usecases/authenticating"
	"github.com/vfg2006/sequencer-stats-api/internal/usecases/authenticating/mocks"
	"go.uber.org/mock/gomock"
)

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		authHeader string
		setup      func(validator *mocks.MockTokenValidator)
		wantStatus int
		wantUserID string
	}{
		{
			name:       "healthcheck é público",
			method:     http.MethodGet,
			path:       "/healthcheck",
			setup:      func(validator *mocks.MockTokenValidator) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "leitura de compartilhamento é pública",
			method:     http.MethodGet,
			path:       "/v1/shares/abc123",
			setup:      func(validator *mocks.MockTokenValidator) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "criação de compartilhamento exige token",
			method:     http.MethodPost,
			path:       "/v1/shares",
			setup:      func(validator *mocks.MockTokenValidator) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "header sem Bearer",
			method:     http.MethodGet,
			path:       "/v1/campaigns",
			authHeader: "Token abc",
			setup:      func(validator *mocks.MockTokenValidator) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token válido coloca o usuário no contexto",
			method:     http.MethodGet,
			path:       "/v1/campaigns",
			authHeader: "Bearer good",
			setup: func(validator *mocks.MockTokenValidator) {
				claims := &domain.Claims{}
				claims.Subject = "user-1"
				validator.EXPECT().ValidateToken("good").Return(claims, nil)
			},
			wantStatus: http.StatusOK,
			wantUserID: "user-1",
		},
		{
			name:       "token expirado",
			method:     http.MethodGet,
			path:       "/v1/campaigns",
			authHeader: "Bearer old",
			setup: func(validator *mocks.MockTokenValidator) {
				validator.EXPECT().ValidateToken("old").Return(nil, authenticating.ErrExpiredToken)
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			validator := mocks.NewMockTokenValidator(ctrl)
			tt.setup(validator)

			var gotUserID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = UserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(validator)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantUserID, gotUserID)
		})
	}
}

func TestCors(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/campaigns", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rec := httptest.NewRecorder()
	Cors([]string{"https://app.example.com"})(next).ServeHTTP(rec, req)
	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.StatusTeapot, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/v1/campaigns", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	Cors([]string{"https://app.example.com"})(next).ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/v1/shares", nil)
	req.Header.Set("Origin", "https://any.example.com")
	rec = httptest.NewRecorder()
	Cors([]string{"*"})(next).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://any.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoggingMiddleware_correlationID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	req.Header.Set(CorrelationIDHeader, "corr-1")
	rec := httptest.NewRecorder()
	LoggingMiddleware()(next).ServeHTTP(rec, req)

	assert.Equal(t, "corr-1", rec.Header().Get(CorrelationIDHeader))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	LoggingMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.NotEmpty(t, rec.Header().Get(CorrelationIDHeader))
}

func TestLogPanicMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/campaigns", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
