// Command seed creates the tables and a demo representative for local
// development.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/config"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/database"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/logging"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/services"
)

func main() {
	email := flag.String("email", "admin@example.com", "representative email")
	password := flag.String("password", "admin123", "representative password")
	flag.Parse()

	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	slog.Info("creating tables")
	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	phone := "+573001234567"
	svc := services.NewRepresentativeService(db, services.NewPasswordHasher(cfg.BcryptCost), cfg.PhoneRegion)
	rep, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FullName:  "Admin User",
		BirthDate: "1990-01-01",
		Country:   "Colombia",
		Email:     *email,
		Phone:     &phone,
		Password:  *password,
	})
	if errors.Is(err, services.ErrEmailTaken) {
		slog.Info("demo representative already exists", "email", *email)
		return
	}
	if err != nil {
		slog.Error("failed to create demo representative", "error", err)
		os.Exit(1)
	}

	slog.Info("demo representative created", "representative_id", rep.ID, "email", rep.Email)
}
