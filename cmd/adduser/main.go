package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/caja/internal/config"
	"github.com/MrJamesThe3rd/caja/internal/database"
	"github.com/MrJamesThe3rd/caja/internal/user"
	userStore "github.com/MrJamesThe3rd/caja/internal/user/store"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Padding(1)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Padding(1)
)

func notBlank(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var (
		username string
		password string
		role     = user.RoleCashier
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("username").
				Title("Username").
				Value(&username).
				Validate(notBlank("username")),

			huh.NewInput().
				Key("password").
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&password).
				Validate(notBlank("password")),

			huh.NewSelect[user.Role]().
				Key("role").
				Title("Role").
				Options(
					huh.NewOption("Cashier", user.RoleCashier),
					huh.NewOption("Administrator", user.RoleAdmin),
				).
				Value(&role),
		),
	).WithWidth(45)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return
		}

		slog.Error("failed to read user details", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	u, err := user.NewService(userStore.New(db)).Create(context.Background(), strings.TrimSpace(username), password, role)
	if err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("Created %s %s (%s)", u.Role, u.Username, u.ID)))
}
