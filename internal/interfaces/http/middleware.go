package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/levantapedidos/levantapedidos-api/internal/application/dto"
	"github.com/levantapedidos/levantapedidos-api/internal/domain"
	"github.com/levantapedidos/levantapedidos-api/pkg/logger"
)

// RequestLogger registra método, ruta, estado y latencia de cada petición con
// un id único propagado en la cabecera X-Request-ID.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID := uuid.NewString()
		c.Locals("request_id", requestID)
		c.Set("X-Request-ID", requestID)

		err := c.Next()

		log.Info().
			Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("petición atendida")
		return err
	}
}

// upstreamError traduce errores de los casos de uso a la respuesta HTTP. La
// falta de token es un error de configuración, no del caller; el resto se
// reporta como 500 con el mensaje subyacente, nunca con el stack.
func upstreamError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrTokenNotConfigured) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code:    "CONFIG",
			Message: "token de API no configurado, contacta al administrador",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: err.Error(),
	})
}
