package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/machikasa/machikasa-api/internal/api"
	"github.com/machikasa/machikasa-api/internal/config"
	"github.com/machikasa/machikasa-api/internal/logger"
	"github.com/machikasa/machikasa-api/internal/repository"
	"github.com/machikasa/machikasa-api/internal/repository/dao"
	"github.com/machikasa/machikasa-api/internal/service"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	store, err := dao.Open(conf.Store.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize store -> %w", err)
	}

	db := repository.NewLocalDB(store)
	service.NewBootstrapService(db).Initialize(context.Background())

	s := api.NewServer(conf, db)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
