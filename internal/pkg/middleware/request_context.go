package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	appcontext "github.com/piresc/smsmock/internal/pkg/context"
)

// RequestIDMiddleware propagates or assigns an X-Request-ID and stores it in
// the request context for log correlation
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			c.Response().Header().Set(echo.HeaderXRequestID, requestID)
			c.Set("request_id", requestID)
			c.SetRequest(c.Request().WithContext(appcontext.WithRequestID(c.Request().Context(), requestID)))

			return next(c)
		}
	}
}
