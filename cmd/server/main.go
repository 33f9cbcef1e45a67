package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/Enigma-IIITS/dev-null/internal/cipher"
	"github.com/Enigma-IIITS/dev-null/internal/config"
	"github.com/Enigma-IIITS/dev-null/internal/handler"
	"github.com/Enigma-IIITS/dev-null/internal/logger"
	"github.com/Enigma-IIITS/dev-null/internal/server"
	"github.com/Enigma-IIITS/dev-null/internal/service"
	"github.com/Enigma-IIITS/dev-null/internal/store"
	"github.com/Enigma-IIITS/dev-null/internal/workers"
	"github.com/Enigma-IIITS/dev-null/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(build)

	log := logger.NewLogger("cipher-chase-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if leveled, err := log.WithLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Msg("invalid log level, keeping debug")
	} else {
		log = leveled
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	alphabets, err := cipher.NewAlphabetCache(cfg.Cipher.AlphabetCacheSize)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating alphabet cache")
	}

	services, err := service.NewServices(storages, cipher.NewDefaultPipeline(alphabets), cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	bg := workers.NewWorkers(services, cfg.Workers, log)
	if bg.Len() > 0 {
		go func() {
			if err := bg.Run(ctx); err != nil {
				log.Warn().Err(err).Msg("background workers finished with errors")
			}
		}()
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.Run(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}
