package invoice

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/caja/internal/http/response"
	"github.com/MrJamesThe3rd/caja/internal/invoice"
)

type Handler struct {
	svc *invoice.Service
}

func NewHandler(svc *invoice.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{id}", h.get)
}

type invoiceResponse struct {
	ID          uuid.UUID       `json:"id"`
	Number      string          `json:"number"`
	Total       decimal.Decimal `json:"total"`
	TotalPaid   decimal.Decimal `json:"total_paid"`
	Outstanding decimal.Decimal `json:"outstanding"`
	Paid        bool            `json:"paid"`
	IsCash      bool            `json:"is_cash"`
	IssuedAt    time.Time       `json:"issued_at"`
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "invalid id")
		return
	}

	inv, err := h.svc.Get(r.Context(), id)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, "ok", invoiceResponse{
		ID:          inv.ID,
		Number:      inv.Number,
		Total:       inv.Total,
		TotalPaid:   inv.TotalPaid,
		Outstanding: inv.Outstanding(),
		Paid:        inv.IsPaid(),
		IsCash:      inv.IsCash,
		IssuedAt:    inv.IssuedAt,
	})
}
