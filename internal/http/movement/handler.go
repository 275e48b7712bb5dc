package movement

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/caja/internal/http/response"
	"github.com/MrJamesThe3rd/caja/internal/movement"
)

type Handler struct {
	svc *movement.Service
}

func NewHandler(svc *movement.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
}

type createMovementRequest struct {
	Amount           *decimal.Decimal `json:"amount"`
	IsIncome         *bool            `json:"is_income"`
	OpeningSessionID uuid.UUID        `json:"opening_session_id"`
	InvoiceID        *uuid.UUID       `json:"invoice_id,omitempty"`
	Details          []detailRequest  `json:"details"`
	Username         string           `json:"username,omitempty"`
	Password         string           `json:"password,omitempty"`
	Concept          string           `json:"concept,omitempty"`
}

type detailRequest struct {
	ID            *uuid.UUID             `json:"id,omitempty"`
	PaymentMethod movement.PaymentMethod `json:"payment_method"`
	Amount        decimal.Decimal        `json:"amount"`
	Concept       string                 `json:"concept,omitempty"`
}

func (req createMovementRequest) toCreateRequest() movement.CreateRequest {
	details := make([]movement.DetailRequest, len(req.Details))
	for i, d := range req.Details {
		details[i] = movement.DetailRequest{
			ID:            d.ID,
			PaymentMethod: d.PaymentMethod,
			Amount:        d.Amount,
			Concept:       d.Concept,
		}
	}

	return movement.CreateRequest{
		Amount:           req.Amount,
		IsIncome:         req.IsIncome,
		OpeningSessionID: req.OpeningSessionID,
		InvoiceID:        req.InvoiceID,
		Details:          details,
		Username:         req.Username,
		Password:         req.Password,
		Concept:          req.Concept,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	m, err := h.svc.Create(r.Context(), req.toCreateRequest())
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, http.StatusCreated, "movement created", toResponse(m))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	movements, err := h.svc.List(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, "ok", toResponseList(movements))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "invalid id")
		return
	}

	m, err := h.svc.Get(r.Context(), id)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, "ok", toResponse(m))
}
