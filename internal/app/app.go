package app

import (
	"context"
	"fmt"
	"log"

	"github.com/fredrikhm/artmatch/internal/config"
	"github.com/fredrikhm/artmatch/internal/core"
	"github.com/fredrikhm/artmatch/internal/pdfread"
	"github.com/fredrikhm/artmatch/internal/services"
	"github.com/fredrikhm/artmatch/internal/storage"
)

type App struct {
	Store   core.ReportStore
	Service *services.MatchService
	Server  *Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	var (
		store core.ReportStore
		err   error
	)
	switch cfg.Storage {
	case "s3":
		store, err = storage.NewS3Store(ctx, cfg)
	default:
		store, err = storage.NewLocalStore(cfg.ReportDir)
	}
	if err != nil {
		return nil, fmt.Errorf("init report store: %w", err)
	}
	log.Printf("Report store ready (%s backend).", cfg.Storage)

	reader := pdfread.NewDocconvReader()
	svc := services.NewMatchService(reader, store)

	server := NewServer(cfg, svc, store)

	return &App{Store: store, Service: svc, Server: server}, nil
}
