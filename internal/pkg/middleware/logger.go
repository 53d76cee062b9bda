package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/smsmock/internal/pkg/logger"
)

// LoggerMiddleware creates a middleware for request logging
func LoggerMiddleware(appLogger *logger.AppLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			principal := "anonymous"
			if p, ok := CurrentPrincipal(c); ok {
				principal = "user:" + p.ID.String()
			} else if project, ok := CurrentProject(c); ok {
				principal = "project:" + project.ID.String()
			}

			appLogger.LogHTTPRequest(
				c.Request().Method,
				c.Request().URL.Path,
				c.RealIP(),
				principal,
				c.Response().Header().Get(echo.HeaderXRequestID),
				c.Response().Status,
				time.Since(start),
				err,
			)

			return nil
		}
	}
}
