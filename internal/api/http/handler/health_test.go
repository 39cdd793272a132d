package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/lynossweets/storefront-server/internal/testutil"
)

type stubPinger struct {
	err error
}

func (s *stubPinger) Ping(_ context.Context) error {
	return s.err
}

func TestHealth_Check(t *testing.T) {
	tests := []struct {
		name       string
		pinger     *stubPinger
		wantStatus int
		wantBody   string
	}{
		{name: "healthy", pinger: &stubPinger{}, wantStatus: http.StatusOK, wantBody: "ok"},
		{name: "database down", pinger: &stubPinger{err: errors.New("connection refused")}, wantStatus: http.StatusServiceUnavailable, wantBody: "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			h := NewHealth(tt.pinger, testutil.MakeNoopLogger())
			r := gin.New()
			r.GET("/api/healthz", h.Check)

			req := httptest.NewRequest(http.MethodGet, "/api/healthz", nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
