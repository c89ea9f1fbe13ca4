package app

import (
	"context"
	stdLog "log"

	"github.com/Astemirdum/book-catalog/catalog/config"
	"github.com/Astemirdum/book-catalog/catalog/internal/repository"
	"github.com/Astemirdum/book-catalog/catalog/internal/scenario"
	"github.com/Astemirdum/book-catalog/catalog/internal/service"
	"github.com/Astemirdum/book-catalog/pkg/logger"
	"go.uber.org/zap"
)

func Run(cfg *config.Config) {
	log, err := logger.NewLogger(cfg.Log, cfg.Catalog.Name)
	if err != nil {
		stdLog.Fatal("logger ", err)
	}
	defer log.Sync() //nolint:errcheck

	repo, err := repository.NewRepository(log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}
	svc := service.NewService(repo, log, service.WithStrictUpdate(cfg.Catalog.StrictUpdate))
	log.Info("catalog ready",
		zap.String("catalogUid", svc.CatalogUid()),
		zap.Bool("strictUpdate", cfg.Catalog.StrictUpdate))

	steps := scenario.Run(context.Background(), svc, log)

	failed := 0
	for _, s := range steps {
		if s.Err != nil {
			failed++
		}
	}
	log.Info("scenario finished",
		zap.Int("steps", len(steps)),
		zap.Int("rejected", failed),
		zap.Int("books", svc.Count(context.Background())))
}
