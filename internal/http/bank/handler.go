package bank

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/caja/internal/bank"
	"github.com/MrJamesThe3rd/caja/internal/http/response"
)

type Handler struct {
	svc *bank.Service
}

func NewHandler(svc *bank.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) BankRoutes(r chi.Router) {
	r.Post("/", h.createBank)
	r.Get("/", h.listBanks)
	r.Delete("/{id}", h.deleteBank)
}

func (h *Handler) AccountRoutes(r chi.Router) {
	r.Post("/", h.createAccount)
	r.Get("/", h.listAccounts)
}

func (h *Handler) ChequeRoutes(r chi.Router) {
	r.Post("/", h.createCheque)
	r.Get("/", h.listCheques)
}

type bankResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type createBankRequest struct {
	Name string `json:"name"`
}

func (h *Handler) createBank(w http.ResponseWriter, r *http.Request) {
	var req createBankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	b, err := h.svc.CreateBank(r.Context(), req.Name)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, http.StatusCreated, "bank created", bankResponse{ID: b.ID, Name: b.Name})
}

func (h *Handler) listBanks(w http.ResponseWriter, r *http.Request) {
	banks, err := h.svc.ListBanks(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}

	resp := make([]bankResponse, len(banks))
	for i, b := range banks {
		resp[i] = bankResponse{ID: b.ID, Name: b.Name}
	}

	response.JSON(w, http.StatusOK, "ok", resp)
}

func (h *Handler) deleteBank(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "invalid id")
		return
	}

	if err := h.svc.DeleteBank(r.Context(), id); err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, "bank deleted", nil)
}

type accountResponse struct {
	ID      uuid.UUID       `json:"id"`
	BankID  uuid.UUID       `json:"bank_id"`
	Number  string          `json:"number"`
	Balance decimal.Decimal `json:"balance"`
}

type createAccountRequest struct {
	BankID         uuid.UUID       `json:"bank_id"`
	Number         string          `json:"number"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
}

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	a, err := h.svc.CreateAccount(r.Context(), bank.CreateAccountParams{
		BankID:         req.BankID,
		Number:         req.Number,
		OpeningBalance: req.OpeningBalance,
	})
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, http.StatusCreated, "bank account created", toAccountResponse(a))
}

func toAccountResponse(a *bank.Account) accountResponse {
	return accountResponse{ID: a.ID, BankID: a.BankID, Number: a.Number, Balance: a.Balance}
}

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.svc.ListAccounts(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}

	resp := make([]accountResponse, len(accounts))
	for i, a := range accounts {
		resp[i] = toAccountResponse(a)
	}

	response.JSON(w, http.StatusOK, "ok", resp)
}

type chequeResponse struct {
	ID         uuid.UUID       `json:"id"`
	Number     string          `json:"number"`
	IsReceived bool            `json:"is_received"`
	Amount     decimal.Decimal `json:"amount"`
	IssuedAt   time.Time       `json:"issued_at"`
	Involved   string          `json:"involved"`
	BankID     uuid.UUID       `json:"bank_id"`
	AccountID  uuid.UUID       `json:"account_id"`
}

func toChequeResponse(c *bank.Cheque) chequeResponse {
	return chequeResponse{
		ID:         c.ID,
		Number:     c.Number,
		IsReceived: c.IsReceived,
		Amount:     c.Amount,
		IssuedAt:   c.IssuedAt,
		Involved:   c.Involved,
		BankID:     c.BankID,
		AccountID:  c.AccountID,
	}
}

type createChequeRequest struct {
	Number     string          `json:"number"`
	IsReceived bool            `json:"is_received"`
	Amount     decimal.Decimal `json:"amount"`
	IssuedAt   time.Time       `json:"issued_at"`
	Involved   string          `json:"involved"`
	BankID     uuid.UUID       `json:"bank_id"`
	AccountID  uuid.UUID       `json:"account_id"`
}

func (h *Handler) createCheque(w http.ResponseWriter, r *http.Request) {
	var req createChequeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	c, err := h.svc.CreateCheque(r.Context(), bank.CreateChequeParams(req))
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, http.StatusCreated, "cheque created", toChequeResponse(c))
}

func (h *Handler) listCheques(w http.ResponseWriter, r *http.Request) {
	cheques, err := h.svc.ListCheques(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}

	resp := make([]chequeResponse, len(cheques))
	for i, c := range cheques {
		resp[i] = toChequeResponse(c)
	}

	response.JSON(w, http.StatusOK, "ok", resp)
}
