package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Nixie-Tech-LLC/playhouse/internal/config"
	"github.com/Nixie-Tech-LLC/playhouse/internal/db"
	"github.com/Nixie-Tech-LLC/playhouse/internal/http/api"
	contentapi "github.com/Nixie-Tech-LLC/playhouse/internal/http/api/admin/endpoints"
	authapi "github.com/Nixie-Tech-LLC/playhouse/internal/http/api/auth/endpoints"
	"github.com/Nixie-Tech-LLC/playhouse/internal/http/middleware"
	"github.com/Nixie-Tech-LLC/playhouse/internal/notify"
	"github.com/Nixie-Tech-LLC/playhouse/internal/storage"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	store db.Store,
	storageSystem storage.Storage,
	revocations middleware.Revocations,
	notifier notify.Notifier,
) {
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		ExposeHeaders: []string{
			"Content-Length",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/auth",
	},
		authapi.AuthPublicModule(cfg.JWTSecret, cfg.JWTTTL, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:      "/admin",
		Auth:        true,
		SecretKey:   cfg.JWTSecret,
		Users:       store,
		Revocations: revocations,
	},
		authapi.AuthSessionModule(cfg.JWTSecret, cfg.JWTTTL, store, revocations),
		contentapi.ContentModule(store, storageSystem, notifier),
	)

	// Locally stored images
	if !cfg.UseSpaces {
		r.Static("/uploads", cfg.UploadDir)
	}
}
