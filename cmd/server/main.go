package main

import (
	"log"

	"gorm.io/gorm"

	"registration_backend/internal/app/di"
	"registration_backend/internal/app/router"
	"registration_backend/internal/config"
	"registration_backend/internal/feature/account/adapters"
	accounthandler "registration_backend/internal/feature/account/transport/handler"
	"registration_backend/internal/feature/account/transport/middleware"
	"registration_backend/internal/feature/account/usecase"
	infradb "registration_backend/internal/platform/db"
)

func main() {
	// settings
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// db
	db := infradb.OpenDB()

	// Notifier (HTTP provider or console fallback)
	notifier := di.NewNotifier(cfg)

	// Service: repositories are built per transaction over the handle the
	// service passes in, so the lifecycle stays with the entry point.
	usersSvc := usecase.NewUsersService(
		db,
		func(tx *gorm.DB) usecase.UserRepository { return adapters.NewUserGorm(tx) },
		func(tx *gorm.DB) usecase.ActivationCodeRepository { return adapters.NewActivationCodeGorm(tx) },
		notifier,
		cfg.ActivationCodeTTL,
		cfg.EmailFrom,
	)

	// Handler
	accountH := accounthandler.NewAccountHandler(usersSvc)

	// Router
	r := router.NewRouter(accountH, middleware.BasicAuth(usersSvc))

	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal(err)
	}
}
