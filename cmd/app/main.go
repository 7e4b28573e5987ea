package main

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/songlist-dev/songlist-back/internal/auth"
	"github.com/songlist-dev/songlist-back/internal/config"
	"github.com/songlist-dev/songlist-back/internal/db"
	"github.com/songlist-dev/songlist-back/internal/fixtures"
	"github.com/songlist-dev/songlist-back/internal/repository"
	"github.com/songlist-dev/songlist-back/internal/service"
	"github.com/songlist-dev/songlist-back/internal/transport"
)

func main() {
	app := fx.New(
		fx.Provide(
			config.NewConfig,
			newLogger,
			db.NewGormClient,
			auth.NewTaskVoter,
			transport.NewHTTPServer,
		),
		repository.Module,
		service.Module,
		fx.Invoke(func(cfg *config.Config, client *gorm.DB, logger *zap.SugaredLogger) error {
			if !cfg.LoadFixtures {
				return nil
			}
			return fixtures.Load(client, logger)
		}),
		fx.Invoke(func(server *transport.HTTPServer) {}),
	)

	app.Run()
}

func newLogger() (*zap.SugaredLogger, error) {
	l, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}

	return l.Sugar(), nil
}
