package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/fsdevblog/golinks/internal/config"
	"github.com/fsdevblog/golinks/internal/controllers"
	"github.com/fsdevblog/golinks/internal/db"
	"github.com/fsdevblog/golinks/internal/revalidate"
	"github.com/fsdevblog/golinks/internal/services"
	"github.com/sirupsen/logrus"
)

type App struct {
	config     config.Config
	dbServices *services.Services
	Hub        *revalidate.Hub
	Logger     *logrus.Logger
}

func New(conf config.Config) (*App, error) {
	hub := revalidate.NewHub()

	dbServices, servicesErr := initServices(conf, hub)
	if servicesErr != nil {
		return nil, fmt.Errorf("init services: %w", servicesErr)
	}

	return &App{
		config:     conf,
		dbServices: dbServices,
		Hub:        hub,
		Logger:     conf.Logger,
	}, nil
}

// Must вызывает панику если произошла ошибка.
func Must(a *App, err error) *App {
	if err != nil {
		panic(err)
	}
	return a
}

// Run запускает web сервер и ждет сигнала завершения.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := controllers.SetupRouter(controllers.RouterParams{
		LinkService: a.dbServices.LinkService,
		BaseURL:     a.config.BaseURL,
		JWTSecret:   []byte(a.config.JWTSecret),
		Logger:      a.Logger,
	})

	errChan := make(chan error, 1)
	go func() {
		if err := server.Run(a.config.ServerAddress); err != nil {
			errChan <- err
		}
	}()

	var serverErr error
	select {
	case <-ctx.Done():
		a.Logger.Info("Shutdown command received")
	case serverErr = <-errChan:
		a.Logger.WithError(serverErr).Error("router error")
	}
	return serverErr
}

// initServices создает подключение к базе данных и возвращает сервисный
// слой приложения.
func initServices(conf config.Config, hub *revalidate.Hub) (*services.Services, error) {
	dbConn, connErr := db.NewConnectionFactory(db.FactoryConfig{
		StorageType: storageType(&conf),
		SQLitePath:  conf.SQLitePath,
		PostgresDSN: conf.DatabaseDSN,
	})
	if connErr != nil {
		return nil, connErr //nolint:wrapcheck
	}

	dbServices, servErr := services.Factory(dbConn, serviceType(&conf), hub, conf.Logger)
	if servErr != nil {
		return nil, servErr //nolint:wrapcheck
	}
	return dbServices, nil
}

func storageType(conf *config.Config) db.StorageType {
	switch conf.DBType {
	case config.DBTypeSQLite:
		return db.StorageTypeSQLite
	case config.DBTypePostgres:
		return db.StorageTypePostgres
	default:
		return db.StorageTypeInMemory
	}
}

func serviceType(conf *config.Config) services.ServiceType {
	switch conf.DBType {
	case config.DBTypeSQLite:
		return services.ServiceTypeSQLite
	case config.DBTypePostgres:
		return services.ServiceTypePostgres
	default:
		return services.ServiceTypeInMemory
	}
}
