package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// RequestID anexa um identificador único a cada requisição, reaproveitando
// o cabeçalho X-Request-Id quando o cliente já envia um.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals("requestId", id)
		c.Set("X-Request-Id", id)
		return c.Next()
	}
}

// Logger registra método, rota, status e duração de cada requisição atendida.
func Logger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		inicio := time.Now()
		err := c.Next()

		log.Info().
			Str("requestId", fmt.Sprint(c.Locals("requestId"))).
			Str("metodo", c.Method()).
			Str("rota", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duracao", time.Since(inicio)).
			Msg("requisição atendida")
		return err
	}
}
