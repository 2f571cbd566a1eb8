package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/albapay/albapay/internal/auth"
	"github.com/albapay/albapay/internal/config"
	"github.com/albapay/albapay/internal/dashboard"
	dashboardStore "github.com/albapay/albapay/internal/dashboard/store"
	"github.com/albapay/albapay/internal/database"
	albapayHttp "github.com/albapay/albapay/internal/http"
	dashboardHandler "github.com/albapay/albapay/internal/http/dashboard"
	profileHandler "github.com/albapay/albapay/internal/http/profile"
	settlementHandler "github.com/albapay/albapay/internal/http/settlement"
	worklogHandler "github.com/albapay/albapay/internal/http/worklog"
	"github.com/albapay/albapay/internal/profile"
	profileStore "github.com/albapay/albapay/internal/profile/store"
	"github.com/albapay/albapay/internal/settlement"
	settlementStore "github.com/albapay/albapay/internal/settlement/store"
	"github.com/albapay/albapay/internal/worklog"
	worklogStore "github.com/albapay/albapay/internal/worklog/store"
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

	var (
		dashboardService  = dashboard.NewService(dashboardStore.New(db))
		settlementService = settlement.NewService(settlementStore.New(db))
		profileService    = profile.NewService(profileStore.New(db))
		worklogService    = worklog.NewService(worklogStore.New(db))
	)

	var (
		dashboardH  = dashboardHandler.NewHandler(dashboardService)
		settlementH = settlementHandler.NewHandler(settlementService)
		profileH    = profileHandler.NewHandler(profileService)
		worklogH    = worklogHandler.NewHandler(worklogService)
	)

	router := albapayHttp.New(dashboardH, settlementH, profileH, worklogH, auth.Middleware(cfg.Auth.JWTSecret))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "addr", server.Addr)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
