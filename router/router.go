package router

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"farmtrack/pkg/metrics"
	"farmtrack/pkg/middleware"
)

type Options struct {
	CORSOrigin   string
	RateLimit    float64 // req/s per client, 0 = off
	AuthRequired bool
	JWTSecret    string
	Logger       *zap.Logger
	Metrics      *metrics.Metrics
}

func New(
	e *echo.Echo,
	opts Options,
	farmerCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
	},
	cultCtrl interface {
		AddForFarmer(echo.Context) error
		ListForFarmer(echo.Context) error
		ListAll(echo.Context) error
	},
	authCtrl interface {
		Register(echo.Context) error
		Login(echo.Context) error
		List(echo.Context) error
		WhoAmI(echo.Context) error
	},
	reportExport func(echo.Context) error,
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(opts.Metrics.Middleware())
	e.Use(middleware.RequestLog(log))
	if opts.CORSOrigin != "" {
		e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
			AllowOrigins:     []string{opts.CORSOrigin},
			AllowCredentials: true,
		}))
	}
	if opts.RateLimit > 0 {
		e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(rate.Limit(opts.RateLimit))))
	}

	e.GET("/health", healthCtrl.Health)
	if opts.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(opts.Metrics.Handler()))
	}

	// accounts
	e.POST("/register", authCtrl.Register)
	e.POST("/login", authCtrl.Login)
	e.GET("/users", authCtrl.List)
	e.GET("/whoami", authCtrl.WhoAmI, middleware.Auth(true, opts.JWTSecret))

	api := e.Group("/api", middleware.Auth(opts.AuthRequired, opts.JWTSecret))

	api.POST("/farmers", farmerCtrl.Create)
	api.GET("/farmers", farmerCtrl.List)
	api.GET("/farmers/:id", farmerCtrl.Get)
	api.PUT("/farmers/:id", farmerCtrl.Update)
	api.DELETE("/farmers/:id", farmerCtrl.Delete)
	// dashboard paths
	api.POST("/farmers/add", farmerCtrl.Create)
	api.GET("/farmers/all", farmerCtrl.List)

	api.POST("/cultivations/:farmerId", cultCtrl.AddForFarmer)
	api.GET("/cultivations/:farmerId", cultCtrl.ListForFarmer)
	api.GET("/cultivations", cultCtrl.ListAll)
	api.POST("/cultivations/add/:farmerId", cultCtrl.AddForFarmer)
	api.GET("/cultivations/get/all", cultCtrl.ListAll)

	api.GET("/reports/farmers.xlsx", reportExport)
	return e
}
