package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/caja/internal/bank"
	bankStore "github.com/MrJamesThe3rd/caja/internal/bank/store"
	"github.com/MrJamesThe3rd/caja/internal/cashdrawer"
	drawerStore "github.com/MrJamesThe3rd/caja/internal/cashdrawer/store"
	"github.com/MrJamesThe3rd/caja/internal/config"
	"github.com/MrJamesThe3rd/caja/internal/database"
	cajaHttp "github.com/MrJamesThe3rd/caja/internal/http"
	bankHandler "github.com/MrJamesThe3rd/caja/internal/http/bank"
	drawerHandler "github.com/MrJamesThe3rd/caja/internal/http/cashdrawer"
	invoiceHandler "github.com/MrJamesThe3rd/caja/internal/http/invoice"
	movementHandler "github.com/MrJamesThe3rd/caja/internal/http/movement"
	"github.com/MrJamesThe3rd/caja/internal/invoice"
	invoiceStore "github.com/MrJamesThe3rd/caja/internal/invoice/store"
	"github.com/MrJamesThe3rd/caja/internal/movement"
	movementStore "github.com/MrJamesThe3rd/caja/internal/movement/store"
	"github.com/MrJamesThe3rd/caja/internal/user"
	userStore "github.com/MrJamesThe3rd/caja/internal/user/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.DB.Migrate {
		if err := database.Migrate(db); err != nil {
			slog.Error("failed to migrate database", "error", err)
			os.Exit(1)
		}
	}

	var (
		userService     = user.NewService(userStore.New(db))
		invoiceService  = invoice.NewService(invoiceStore.New(db))
		drawerService   = cashdrawer.NewService(drawerStore.New(db))
		bankService     = bank.NewService(bankStore.New(db))
		movementService = movement.NewService(movementStore.New(db), userService, invoiceService, drawerService)
	)

	router := cajaHttp.New(cfg.CORS.AllowedOrigins, db, cajaHttp.Handlers{
		Movements:   movementHandler.NewHandler(movementService),
		CashDrawers: drawerHandler.NewHandler(drawerService),
		Invoices:    invoiceHandler.NewHandler(invoiceService),
		Banks:       bankHandler.NewHandler(bankService),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("starting server", "app", cfg.App.Name, "addr", srv.Addr)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shut down server", "error", err)
	}

	slog.Info("server stopped")
}
