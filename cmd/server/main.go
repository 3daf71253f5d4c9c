package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/playhouse/internal/config"
	"github.com/Nixie-Tech-LLC/playhouse/internal/db"
	"github.com/Nixie-Tech-LLC/playhouse/internal/http/middleware"
	"github.com/Nixie-Tech-LLC/playhouse/internal/notify"
	"github.com/Nixie-Tech-LLC/playhouse/internal/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	SetupLogging(cfg)

	if err := db.Init(cfg.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init")
	}
	defer db.DB.Close()

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate")
	}

	store := db.NewStore(db.DB)
	storageSystem := InitStorage(cfg)

	var revocations middleware.Revocations
	if cfg.RedisAddress != "" {
		client := redis.InitRedis(cfg.RedisAddress, cfg.RedisUsername, cfg.RedisPassword)
		defer client.Close()
		revocations = redis.NewTokenBlacklist(client)
		log.Info().Str("address", cfg.RedisAddress).Msg("token revocation enabled")
	} else {
		log.Warn().Msg("REDIS_ADDRESS not set, logout is disabled")
	}

	var notifier notify.Notifier = notify.Noop{}
	if cfg.MQTTBrokerURL != "" {
		publisher, err := notify.Connect(cfg.MQTTBrokerURL, cfg.MQTTClientID, cfg.MQTTTopicPrefix)
		if err != nil {
			log.Error().Err(err).Msg("MQTT unavailable, content notifications disabled")
		} else {
			defer publisher.Close()
			notifier = publisher
		}
	}

	if !cfg.Development() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())
	RegisterRoutes(r, cfg, store, storageSystem, revocations, notifier)

	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("address", cfg.ServerAddress).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
