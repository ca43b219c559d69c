package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/ougirez/motorquote/internal/api/controller"
	"github.com/ougirez/motorquote/internal/pkg/config"
	"github.com/ougirez/motorquote/internal/service/quote"
)

type APIService struct {
	router       *echo.Echo
	quoteService *quote.Service
}

// Serve blocks until the server stops. A graceful Shutdown is not an error.
func (svc *APIService) Serve(addr string) error {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func (svc *APIService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	svc.router.ServeHTTP(w, r)
}

func NewAPIService(cfg config.ServerConfig, quoteService *quote.Service) *APIService {
	svc := &APIService{router: echo.New(), quoteService: quoteService}

	svc.router.HideBanner = true
	svc.router.HidePort = true
	svc.router.Logger.SetLevel(log.ERROR)

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = sonicSerializer{}
	svc.router.HTTPErrorHandler = httpErrorHandler

	svc.router.Use(middleware.Recover())
	svc.router.Use(requestID())
	svc.router.Use(requestLogger())
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders: []string{"Content-Type"},
	}))

	cntrl := controller.NewController(svc.quoteService)

	svc.router.GET("/healthz", cntrl.Health)

	api := svc.router.Group("/api/v1")
	api.GET("/catalog", cntrl.GetCatalog)
	api.POST("/quotes", cntrl.CreateQuote)

	api.POST("/sessions", cntrl.CreateSession)

	sessions := api.Group("/sessions/:id", svc.SessionMiddleware)
	sessions.GET("", cntrl.GetSession)
	sessions.DELETE("", cntrl.DeleteSession)
	sessions.PUT("/fields", cntrl.SetField)
	sessions.POST("/start", cntrl.Start)
	sessions.POST("/next", cntrl.Next)
	sessions.POST("/previous", cntrl.Previous)
	sessions.POST("/submit", cntrl.Submit)
	sessions.POST("/edit", cntrl.EditDetails)
	sessions.POST("/new", cntrl.NewQuote)
	sessions.POST("/reset", cntrl.Reset)

	return svc
}
