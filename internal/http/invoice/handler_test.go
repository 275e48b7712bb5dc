package invoice_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	invoiceHandler "github.com/MrJamesThe3rd/caja/internal/http/invoice"
	"github.com/MrJamesThe3rd/caja/internal/invoice"
)

func TestHandler_Get(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		target     string
		setupMock  func(m *invoice.MockRepository)
		wantStatus int
	}{
		{
			name:   "Found",
			target: "/invoices/" + id.String(),
			setupMock: func(m *invoice.MockRepository) {
				m.EXPECT().GetInvoice(gomock.Any(), id).Return(&invoice.Invoice{
					ID:        id,
					Number:    "A-0001-00000042",
					Total:     decimal.NewFromInt(1000),
					TotalPaid: decimal.NewFromInt(400),
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "Missing",
			target: "/invoices/" + id.String(),
			setupMock: func(m *invoice.MockRepository) {
				m.EXPECT().GetInvoice(gomock.Any(), id).Return(nil, invoice.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "BadID",
			target:     "/invoices/42",
			setupMock:  func(*invoice.MockRepository) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := invoice.NewMockRepository(gomock.NewController(t))
			tt.setupMock(repo)

			r := chi.NewRouter()
			r.Route("/invoices", invoiceHandler.NewHandler(invoice.NewService(repo)).Routes)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus != http.StatusOK {
				return
			}

			var env struct {
				Data struct {
					Outstanding decimal.Decimal `json:"outstanding"`
					Paid        bool            `json:"paid"`
				} `json:"data"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
			assert.True(t, env.Data.Outstanding.Equal(decimal.NewFromInt(600)))
			assert.False(t, env.Data.Paid)
		})
	}
}
