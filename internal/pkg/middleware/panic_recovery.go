package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/piresc/smsmock/internal/pkg/logger"
	"github.com/piresc/smsmock/internal/utils"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack and
// answers with a generic 500
func PanicRecoveryMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r)
					err = nil
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}) {
	requestID := c.Response().Header().Get(echo.HeaderXRequestID)

	logger.ErrorCtx(c.Request().Context(), "Panic recovered during request processing",
		logger.String("panic_value", fmt.Sprintf("%v", r)),
		logger.String("panic_type", fmt.Sprintf("%T", r)),
		logger.String("stack_trace", string(debug.Stack())),
		logger.String("method", c.Request().Method),
		logger.String("path", c.Request().URL.Path),
		logger.String("request_id", requestID),
	)

	if !c.Response().Committed {
		if err := utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error"); err != nil {
			_ = c.String(http.StatusInternalServerError, "Internal server error")
		}
	}
}
