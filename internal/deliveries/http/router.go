package http

import (
	"context"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/transitops/cardledger/internal/common/graceful"
	commonhttp "github.com/transitops/cardledger/internal/common/http"
	"github.com/transitops/cardledger/internal/common/http/middleware"
	"github.com/transitops/cardledger/internal/common/log"
	"github.com/transitops/cardledger/internal/config"
	"github.com/transitops/cardledger/internal/deliveries/http/health"
	"github.com/transitops/cardledger/internal/services"

	v1balance "github.com/transitops/cardledger/internal/deliveries/http/v1/balance"
	v1ledger "github.com/transitops/cardledger/internal/deliveries/http/v1/ledger"
	v1mergehistory "github.com/transitops/cardledger/internal/deliveries/http/v1/mergehistory"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

type svc struct {
	e               *echo.Echo
	addr            string
	gracefulTimeout time.Duration
}

var _ graceful.ProcessStartStopper = (*svc)(nil)

func (s *svc) Start() graceful.ProcessStarter {
	return func() error {
		return s.e.Start(s.addr)
	}
}

func (s *svc) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		err := s.e.Shutdown(ctx)

		if err != nil {
			log.Errorf(ctx, "[SHUTDOWN] HTTP server error: %v", err)
		} else {
			log.Info(ctx, "[SHUTDOWN] HTTP server stopped successfully")
		}

		return err
	}
}

func NewHTTPServer(
	ctx context.Context,
	conf config.Config,
	nr *newrelic.Application,
	ledgerService services.LedgerService,
	balanceService services.BalanceService,
	editService services.LedgerEditService,
) *svc {
	app := echo.New()

	svc := &svc{
		e:               app,
		addr:            fmt.Sprintf(":%d", conf.App.HTTPPort),
		gracefulTimeout: conf.App.GracefulTimeout,
	}

	m := middleware.NewMiddleware(conf)
	// options middleware
	app.Pre(echomiddleware.RemoveTrailingSlash())
	app.Use(echomiddleware.Recover())
	app.Use(echomiddleware.RequestID())
	app.Use(m.Logger())

	if nr != nil {
		app.Use(nrecho.Middleware(nr))
	}

	// pprof
	// Endpoint debug/pprof/
	env := config.StringToEnvironment(conf.App.Env)
	if env != config.PROD_ENV {
		pprof.Register(app)
	}

	// prometheus metrics
	app.Use(echoprometheus.NewMiddleware(conf.App.Name))
	app.GET("/metrics", echoprometheus.NewHandler())

	// apiGroup
	apiGroup := app.Group("/api")

	// health check
	health.New(apiGroup)

	// v1Group
	v1Group := apiGroup.Group("/v1")

	// v1Group register api
	v1ledger.New(v1Group, ledgerService, editService)
	v1balance.New(v1Group, balanceService)
	v1mergehistory.New(v1Group, editService)

	// prepare an endpoint for 'Not Found'.
	app.Any("*", func(c echo.Context) error {
		errorMessage := fmt.Errorf("route '%s' does not exist in this API", c.Request().URL)
		return commonhttp.RestErrorResponse(c, nethttp.StatusNotFound, errorMessage)
	})

	return svc
}
