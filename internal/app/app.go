package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/drezzup/catalog-service/config"
	"github.com/drezzup/catalog-service/internal/controller"
	"github.com/drezzup/catalog-service/internal/infrastructure/objectstorage"
	"github.com/drezzup/catalog-service/internal/infrastructure/tracing"
	appmiddleware "github.com/drezzup/catalog-service/internal/middleware"
	"github.com/drezzup/catalog-service/internal/repository"
	"github.com/drezzup/catalog-service/internal/service"
	"github.com/drezzup/catalog-service/pkg/response"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

type App struct {
	DB            *sqlx.DB
	Config        *config.Config
	Uploader      objectstorage.Uploader
	KafkaProducer *kafka.Conn
	Server        *echo.Echo
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()
	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize tracing")
	}

	defer func() {
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown tracing")
		}
	}()

	tracer := traceProvider.Tracer("catalog-service")

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			req := c.Request()
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	})

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))

	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	g := e.Group("/api/v1")
	g.Use(appmiddleware.Logger)

	admin := []echo.MiddlewareFunc{
		appmiddleware.Authenticate(app.Config.JWTConfig.AccessTokenSecret),
		appmiddleware.AuthorizeRoles("admin"),
	}

	userRepo := repository.CreateUserRepository(app.DB)
	catalogRepo := repository.CreateCatalogRepository(app.DB)
	productRepo := repository.CreateProductRepository(app.DB)

	authSvc := service.CreateAuthService(userRepo, *app.Config)
	catalogSvc := service.CreateCatalogService(catalogRepo)
	productSvc := service.CreateProductService(productRepo, app.Uploader, *app.Config, app.KafkaProducer)

	controller.CreateAuthController(g, authSvc, admin...)
	controller.CreateCatalogController(g, catalogSvc, admin...)
	controller.CreateProductController(g, productSvc, admin...)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "pong", nil)
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)))

	app.Server = e
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
