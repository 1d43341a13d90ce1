package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bloodbank-api/pkg/logger"
)

// HTTPRecorder cuenta peticiones atendidas (opcional).
type HTTPRecorder interface {
	HTTPRequest(method, code string)
}

// RequestLogger registra método, ruta, status y latencia de cada petición.
func RequestLogger(log *logger.Logger, rec HTTPRecorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			// deja que el ErrorHandler fije el status antes de registrar
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		status := c.Response().StatusCode()

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
			if ierr, ok := c.Locals(LocalInternalError).(error); ok {
				ev = ev.Err(ierr)
			}
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("http")

		if rec != nil {
			rec.HTTPRequest(c.Method(), strconv.Itoa(status))
		}
		return nil
	}
}
