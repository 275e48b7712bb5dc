package cashdrawer_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/caja/internal/cashdrawer"
	drawerHandler "github.com/MrJamesThe3rd/caja/internal/http/cashdrawer"
)

func newRouter(t *testing.T) (http.Handler, *cashdrawer.MockRepository) {
	t.Helper()

	repo := cashdrawer.NewMockRepository(gomock.NewController(t))
	h := drawerHandler.NewHandler(cashdrawer.NewService(repo))

	r := chi.NewRouter()
	r.Route("/cash-drawers", h.Routes)
	r.Route("/sessions", h.SessionRoutes)

	return r, repo
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func serve(t *testing.T, h http.Handler, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return rec, env
}

func TestHandler_OpenSession(t *testing.T) {
	drawerID, cashierID := uuid.New(), uuid.New()
	body := `{"cashier_id": "` + cashierID.String() + `", "opening_balance": "1500.00"}`

	t.Run("Opened", func(t *testing.T) {
		router, repo := newRouter(t)
		repo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/cash-drawers/"+drawerID.String()+"/sessions", strings.NewReader(body))
		rec, env := serve(t, router, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var data struct {
			CashDrawerID   uuid.UUID       `json:"cash_drawer_id"`
			OpeningBalance decimal.Decimal `json:"opening_balance"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, drawerID, data.CashDrawerID)
		assert.True(t, data.OpeningBalance.Equal(decimal.NewFromInt(1500)))
	})

	t.Run("AlreadyOpen", func(t *testing.T) {
		router, repo := newRouter(t)
		repo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(cashdrawer.ErrAlreadyOpen)

		req := httptest.NewRequest(http.MethodPost, "/cash-drawers/"+drawerID.String()+"/sessions", strings.NewReader(body))
		rec, env := serve(t, router, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "cash drawer already open", env.Message)
	})
}

func TestHandler_CurrentSession(t *testing.T) {
	cashierID := uuid.New()

	t.Run("MissingCashier", func(t *testing.T) {
		router, _ := newRouter(t)

		rec, _ := serve(t, router, httptest.NewRequest(http.MethodGet, "/sessions/current", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Open", func(t *testing.T) {
		router, repo := newRouter(t)
		repo.EXPECT().GetOpenSessionByCashier(gomock.Any(), cashierID).Return(&cashdrawer.OpeningSession{
			ID:        uuid.New(),
			CashierID: cashierID,
			OpenedAt:  time.Now(),
		}, nil)

		rec, _ := serve(t, router, httptest.NewRequest(http.MethodGet, "/sessions/current?cashier_id="+cashierID.String(), nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("NoneOpen", func(t *testing.T) {
		router, repo := newRouter(t)
		repo.EXPECT().GetOpenSessionByCashier(gomock.Any(), cashierID).Return(nil, cashdrawer.ErrNoOpenSession)

		rec, env := serve(t, router, httptest.NewRequest(http.MethodGet, "/sessions/current?cashier_id="+cashierID.String(), nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "no open session for cashier", env.Message)
	})
}
