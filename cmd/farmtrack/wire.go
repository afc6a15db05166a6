package main

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"farmtrack/config"
	"farmtrack/database"
	"farmtrack/router"

	// Farmer
	farmerCtrlImp "farmtrack/pkg/farmer/controllerImp"
	farmerRepo "farmtrack/pkg/farmer/repository"
	farmerRepoImp "farmtrack/pkg/farmer/repositoryImp"
	farmerSvc "farmtrack/pkg/farmer/service"
	farmerSvcImp "farmtrack/pkg/farmer/serviceImp"

	// Cultivation
	cultCtrlImp "farmtrack/pkg/cultivation/controllerImp"
	cultRepo "farmtrack/pkg/cultivation/repository"
	cultRepoImp "farmtrack/pkg/cultivation/repositoryImp"
	cultSvc "farmtrack/pkg/cultivation/service"
	cultSvcImp "farmtrack/pkg/cultivation/serviceImp"

	// Auth
	authCtrlImp "farmtrack/pkg/auth/controllerImp"
	authRepo "farmtrack/pkg/auth/repository"
	authRepoImp "farmtrack/pkg/auth/repositoryImp"
	authSvc "farmtrack/pkg/auth/service"
	authSvcImp "farmtrack/pkg/auth/serviceImp"

	healthCtrlImp "farmtrack/pkg/health/controllerImp"
	"farmtrack/pkg/identity"
	"farmtrack/pkg/metrics"
	"farmtrack/pkg/report"
)

type services struct {
	farmers      farmerSvc.FarmerService
	cultivations cultSvc.CultivationService
	auth         authSvc.AuthService
	report       *report.Builder
}

// newServices picks the repository family that matches the opened store.
func newServices(store *database.Store, cfg config.AppConfig, log *zap.Logger, m *metrics.Metrics) services {
	var (
		fr farmerRepo.FarmerRepository
		cr cultRepo.CultivationRepository
		ur authRepo.UserRepository
		tx cultRepo.TxRunner
	)
	if store.Mongo != nil {
		fr = farmerRepoImp.NewMongo(store.Mongo)
		cr = cultRepoImp.NewMongo(store.Mongo)
		ur = authRepoImp.NewMongo(store.Mongo)
		tx = database.Sequential{}
	} else {
		fr = farmerRepoImp.New(store.SQL)
		cr = cultRepoImp.New(store.SQL)
		ur = authRepoImp.New(store.SQL)
		tx = database.NewGormTx(store.SQL)
	}

	fs := farmerSvcImp.NewFarmerService(fr, identity.New(cfg.IDMaxAttempts),
		farmerSvcImp.WithLogger(log.Named("farmer")),
		farmerSvcImp.WithMetrics(m))
	cs := cultSvcImp.NewCultivationService(cr, fr, tx,
		cultSvcImp.WithLogger(log.Named("cultivation")),
		cultSvcImp.WithMetrics(m))
	return services{
		farmers:      fs,
		cultivations: cs,
		auth:         authSvcImp.NewAuthService(ur, cfg.JWTSecret, cfg.JWTTTL, log.Named("auth")),
		report:       report.New(fs, cs),
	}
}

func newServer(store *database.Store, cfg config.AppConfig, log *zap.Logger, m *metrics.Metrics) *echo.Echo {
	svc := newServices(store, cfg, log, m)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	return router.New(
		e,
		router.Options{
			CORSOrigin:   cfg.CORSOrigin,
			RateLimit:    cfg.RateLimit,
			AuthRequired: cfg.AuthRequired,
			JWTSecret:    cfg.JWTSecret,
			Logger:       log,
			Metrics:      m,
		},
		farmerCtrlImp.New(svc.farmers),
		cultCtrlImp.New(svc.cultivations),
		authCtrlImp.NewAuthController(svc.auth),
		svc.report.Export,
		healthCtrlImp.NewHealthCtrl(store.Driver, store.Ping),
	)
}
