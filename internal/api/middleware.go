package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/ougirez/motorquote/internal/pkg/constants"
	"github.com/ougirez/motorquote/internal/pkg/logger"
)

// requestID tags every request with an id and carries it into the logger
// context of the request.
func requestID() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
		RequestIDHandler: func(c echo.Context, id string) {
			ctx := logger.With(c.Request().Context(), zap.String(constants.CtxKeyRequestID, id))
			c.SetRequest(c.Request().WithContext(ctx))
		},
	})
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			logger.Logger().Info("request", append(fields, logger.Fields(c.Request().Context())...)...)
			return nil
		},
	})
}

// SessionMiddleware puts the session id from the path into the logger context.
func (svc *APIService) SessionMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if id := ctx.Param("id"); id != "" {
			reqCtx := logger.With(ctx.Request().Context(), zap.String(constants.CtxKeySessionID, id))
			ctx.SetRequest(ctx.Request().WithContext(reqCtx))
		}
		return next(ctx)
	}
}
