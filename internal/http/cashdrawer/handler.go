package cashdrawer

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/caja/internal/cashdrawer"
	"github.com/MrJamesThe3rd/caja/internal/http/response"
)

type Handler struct {
	svc *cashdrawer.Service
}

func NewHandler(svc *cashdrawer.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes mounts the drawer endpoints under /cash-drawers.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/{id}", h.getDrawer)
	r.Post("/{id}/sessions", h.openSession)
}

// SessionRoutes mounts the session lookups under /sessions.
func (h *Handler) SessionRoutes(r chi.Router) {
	r.Get("/current", h.currentSession)
}

type drawerResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}

type sessionResponse struct {
	ID             uuid.UUID       `json:"id"`
	CashDrawerID   uuid.UUID       `json:"cash_drawer_id"`
	CashierID      uuid.UUID       `json:"cashier_id"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	OpenedAt       time.Time       `json:"opened_at"`
	ClosedAt       *time.Time      `json:"closed_at,omitempty"`
}

func toSessionResponse(s *cashdrawer.OpeningSession) sessionResponse {
	return sessionResponse{
		ID:             s.ID,
		CashDrawerID:   s.CashDrawerID,
		CashierID:      s.CashierID,
		OpeningBalance: s.OpeningBalance,
		OpenedAt:       s.OpenedAt,
		ClosedAt:       s.ClosedAt,
	}
}

func (h *Handler) getDrawer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "invalid id")
		return
	}

	d, err := h.svc.GetDrawer(r.Context(), id)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, "ok", drawerResponse{
		ID:        d.ID,
		Name:      d.Name,
		Balance:   d.Balance,
		CreatedAt: d.CreatedAt,
	})
}

type openSessionRequest struct {
	CashierID      uuid.UUID       `json:"cashier_id"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
}

func (h *Handler) openSession(w http.ResponseWriter, r *http.Request) {
	drawerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "invalid id")
		return
	}

	var req openSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	session, err := h.svc.OpenSession(r.Context(), drawerID, req.CashierID, req.OpeningBalance)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, http.StatusCreated, "session opened", toSessionResponse(session))
}

func (h *Handler) currentSession(w http.ResponseWriter, r *http.Request) {
	cashierID, err := uuid.Parse(r.URL.Query().Get("cashier_id"))
	if err != nil {
		response.BadRequest(w, "cashier_id query parameter is required")
		return
	}

	session, err := h.svc.CurrentSession(r.Context(), cashierID)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, "ok", toSessionResponse(session))
}
