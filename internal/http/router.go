package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/caja/internal/http/bank"
	"github.com/MrJamesThe3rd/caja/internal/http/cashdrawer"
	"github.com/MrJamesThe3rd/caja/internal/http/invoice"
	"github.com/MrJamesThe3rd/caja/internal/http/movement"
	"github.com/MrJamesThe3rd/caja/internal/http/response"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handlers struct {
	Movements   *movement.Handler
	CashDrawers *cashdrawer.Handler
	Invoices    *invoice.Handler
	Banks       *bank.Handler
}

func New(allowedOrigins []string, db Pinger, h Handlers) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			response.JSON(w, http.StatusServiceUnavailable, "database unavailable", nil)
			return
		}

		response.JSON(w, http.StatusOK, "ok", nil)
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/movements", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Movements.Routes(r)
		})

		r.Route("/cash-drawers", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.CashDrawers.Routes(r)
		})
		r.Route("/sessions", h.CashDrawers.SessionRoutes)

		r.Route("/invoices", h.Invoices.Routes)

		r.Route("/banks", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Banks.BankRoutes(r)
		})
		r.Route("/bank-accounts", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Banks.AccountRoutes(r)
		})
		r.Route("/cheques", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Banks.ChequeRoutes(r)
		})
	})

	return router
}
