package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsdevblog/bookmarks/internal/config"
	"github.com/fsdevblog/bookmarks/internal/controllers"
	"github.com/fsdevblog/bookmarks/internal/db"
	"github.com/fsdevblog/bookmarks/internal/logs"
	"github.com/fsdevblog/bookmarks/internal/services"
	"go.uber.org/zap"
)

type App struct {
	config     config.Config
	conn       any
	dbServices *services.Services
	Logger     *zap.Logger
}

func New(appConf config.Config) (*App, error) {
	logger, err := logs.New(logs.WithLevel(appConf.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	conn, dbServices, err := initServices(appConf, logger)
	if err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return &App{
		config:     appConf,
		conn:       conn,
		dbServices: dbServices,
		Logger:     logger,
	}, nil
}

// Must вызывает панику если произошла ошибка.
func Must(a *App, err error) *App {
	if err != nil {
		panic(err)
	}
	return a
}

// Handler http обработчик приложения.
func (a *App) Handler() http.Handler {
	return controllers.SetupRouter(controllers.RouterParams{
		BookmarkService: a.dbServices.BookmarkService,
		PingService:     a.dbServices.PingService,
		AppConf:         a.config,
		Logger:          a.Logger,
	})
}

// Run запускает web сервер и блокируется до SIGINT/SIGTERM или ошибки сервера.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.serve(ctx)
}

func (a *App) serve(ctx context.Context) error {
	defer a.close()

	server := &http.Server{ //nolint:gosec
		Addr:    a.config.ServerAddress,
		Handler: a.Handler(),
	}

	errChan := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	a.Logger.Info("Server started", zap.String("address", a.config.ServerAddress))

	select {
	case <-ctx.Done():
		a.Logger.Info("Shutdown command received")
	case err := <-errChan:
		if err != nil {
			a.Logger.Error("server error", zap.Error(err))
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout())
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	a.Logger.Info("Server stopped")
	return nil
}

func (a *App) shutdownTimeout() time.Duration {
	if a.config.ShutdownTimeout <= 0 {
		return config.DefaultShutdownTimeout
	}
	return a.config.ShutdownTimeout
}

func (a *App) close() {
	if err := db.Close(a.conn); err != nil {
		a.Logger.Error("close storage", zap.Error(err))
	}
	_ = a.Logger.Sync()
}

// initServices создает подключение к хранилищу и возвращает сервисный слой приложения.
func initServices(appConf config.Config, logger *zap.Logger) (any, *services.Services, error) {
	storageType := whatIsDBStorageType(&appConf)

	conn, connErr := db.NewConnectionFactory(db.FactoryConfig{
		StorageType:  storageType,
		PostgresDSN:  &appConf.DatabaseDSN,
		SqliteDBPath: &appConf.SQLitePath,
	})
	if connErr != nil {
		return nil, nil, connErr //nolint:wrapcheck
	}

	dbServices, dbServErr := services.Factory(conn, whatIsServiceType(storageType), logger)
	if dbServErr != nil {
		_ = db.Close(conn)
		return nil, nil, dbServErr //nolint:wrapcheck
	}
	logger.Info("Storage initialized", zap.String("type", string(storageType)))
	return conn, dbServices, nil
}

func whatIsDBStorageType(appConf *config.Config) db.StorageType {
	switch {
	case appConf.DatabaseDSN != "":
		return db.StorageTypePostgres
	case appConf.SQLitePath != "":
		return db.StorageTypeSQLite
	default:
		return db.StorageTypeInMemory
	}
}

func whatIsServiceType(storageType db.StorageType) services.ServiceType {
	if storageType == db.StorageTypeInMemory {
		return services.ServiceTypeInMemory
	}
	return services.ServiceTypeSQL
}
