package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	cajaHttp "github.com/MrJamesThe3rd/caja/internal/http"
	"github.com/MrJamesThe3rd/caja/internal/http/bank"
	"github.com/MrJamesThe3rd/caja/internal/http/cashdrawer"
	"github.com/MrJamesThe3rd/caja/internal/http/invoice"
	"github.com/MrJamesThe3rd/caja/internal/http/movement"
)

type pinger struct{ err error }

func (p pinger) PingContext(context.Context) error { return p.err }

func newRouter(db cajaHttp.Pinger) http.Handler {
	return cajaHttp.New([]string{"http://localhost:3000"}, db, cajaHttp.Handlers{
		Movements:   movement.NewHandler(nil),
		CashDrawers: cashdrawer.NewHandler(nil),
		Invoices:    invoice.NewHandler(nil),
		Banks:       bank.NewHandler(nil),
	})
}

func TestHealthz(t *testing.T) {
	tests := []struct {
		name       string
		db         pinger
		wantStatus int
	}{
		{name: "Up", db: pinger{}, wantStatus: http.StatusOK},
		{name: "Down", db: pinger{err: errors.New("connection refused")}, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newRouter(tt.db).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotEmpty(t, rec.Header().Get("Content-Type"))
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/movements", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := httptest.NewRecorder()
	newRouter(pinger{}).ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRejectsNonJSONBodies(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/movements", http.NoBody)
	req.Header.Set("Content-Type", "text/plain")
	req.ContentLength = 4

	rec := httptest.NewRecorder()
	newRouter(pinger{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}
