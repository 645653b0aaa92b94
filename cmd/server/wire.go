// File: cmd/server/wire.go
//go:build wireinject
// +build wireinject

package main

import (
	"aincome_backend/internal/app"
	"aincome_backend/internal/auth"
	"aincome_backend/internal/config"
	"aincome_backend/internal/notify"
	"aincome_backend/internal/platform/logger"
	"aincome_backend/internal/shared"
	"aincome_backend/internal/supabase"

	"github.com/google/wire"
)

// initializeServer is the main Wire injector.
func initializeServer(cfg *config.Config) (*app.Server, func(), error) {
	wire.Build(
		// Platform Layer
		logger.New,

		// Auth Backend
		supabase.NewClient,
		wire.Bind(new(shared.AuthBackend), new(*supabase.Client)),

		// Auth Facade
		auth.NewService,
		auth.NewJWTService,
		auth.NewHandler,

		// Notifications
		notify.NewLogPresenter,
		wire.Bind(new(notify.Presenter), new(*notify.LogPresenter)),
		notify.NewService,

		// Application Layer
		app.NewServer,
	)
	return nil, nil, nil
}
