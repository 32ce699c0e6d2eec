package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"order-admin/internal/config"
	apphttp "order-admin/internal/http"
	"order-admin/internal/repository"
	"order-admin/internal/repository/postgres"
	"order-admin/internal/repository/sqlite"
	"order-admin/internal/service"
)

// App owns the database handle and everything built on top of it.
type App struct {
	Users  repository.UserRepository
	Orders repository.OrderRepository

	UserService  service.UserService
	OrderService service.OrderService

	cfg    config.Config
	logger *logrus.Logger
	router *gin.Engine
	close  func()
}

// New opens the configured database, applies migrations and wires services and routes.
// The caller must call Close when done.
func New(ctx context.Context, cfg config.Config, logger *logrus.Logger) (*App, error) {
	if logger == nil {
		logger = logrus.New()
	}
	a := &App{cfg: cfg, logger: logger}

	if err := a.openDatabase(ctx); err != nil {
		return nil, err
	}

	a.UserService = service.NewUserService(a.Users)
	a.OrderService = service.NewOrderService(a.Orders)
	a.router = a.newRouter()
	return a, nil
}

func (a *App) openDatabase(ctx context.Context) error {
	switch a.cfg.Database.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, a.cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("open sqlite database: %w", err)
		}
		a.Users = sqlite.NewUserRepository(db)
		a.Orders = sqlite.NewOrderRepository(db)
		a.close = func() { _ = db.Close() }
		a.logger.Infof("using sqlite database %s", a.cfg.Database.Path)
	case config.DriverPostgres:
		pool, err := postgres.Open(ctx, a.cfg.Database.URL)
		if err != nil {
			return fmt.Errorf("open postgres database: %w", err)
		}
		a.Users = postgres.NewUserRepository(pool)
		a.Orders = postgres.NewOrderRepository(pool)
		a.close = pool.Close
		a.logger.Info("using postgres database")
	default:
		return fmt.Errorf("unsupported database driver %q", a.cfg.Database.Driver)
	}
	return nil
}

func (a *App) newRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(apphttp.RequestLogger(a.logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:  a.cfg.AllowedOrigins(),
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}))

	handler := apphttp.NewHandler(a.UserService, a.OrderService, a.logger)
	handler.RegisterRoutes(router)
	return router
}

// Router returns the configured gin engine.
func (a *App) Router() *gin.Engine {
	return a.router
}

// Close releases the database handle.
func (a *App) Close() {
	if a.close != nil {
		a.close()
		a.close = nil
	}
}
