package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/Directorio-api/pkg/logger"
)

const (
	headerRequestID = "X-Request-ID"
	localLogger     = "logger"
)

// RequestLogger asigna un request id (o respeta el entrante) y emite una línea por petición.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		rid := c.Get(headerRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(headerRequestID, rid)
		reqLog := log.With("request_id", rid)
		c.Locals(localLogger, reqLog)

		err := c.Next()
		if err != nil {
			// El ErrorHandler de fiber todavía no escribió el status.
			var ferr *fiber.Error
			if errors.As(err, &ferr) {
				c.Status(ferr.Code)
			} else {
				c.Status(fiber.StatusInternalServerError)
			}
		}
		status := c.Response().StatusCode()
		ev := reqLog.Info()
		if status >= fiber.StatusInternalServerError {
			ev = reqLog.Error().Err(err)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("http")
		return err
	}
}

func requestLogger(c *fiber.Ctx) *logger.Logger {
	if l, ok := c.Locals(localLogger).(*logger.Logger); ok {
		return l
	}
	return logger.Nop()
}
