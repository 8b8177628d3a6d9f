package log

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	CorrelationIDHeader = "X-Correlation-ID"

	correlationFromHeader = "header"
	correlationGenerated  = "generated"
)

// RequestLogger tags every request with a correlation ID, stores the tagged
// logger in the request's user context and writes one entry per exchange.
func RequestLogger(logger Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		id, source := c.Get(CorrelationIDHeader), correlationFromHeader
		if id == "" {
			id, source = uuid.NewString(), correlationGenerated
		}
		c.SetUserContext(logger.WithCorrelationID(c.UserContext(), id))
		c.Set(CorrelationIDHeader, id)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		level := logrus.InfoLevel
		if status >= fiber.StatusInternalServerError {
			level = logrus.WarnLevel
		}

		logger.RequestResponse(c.UserContext(), &Field{
			URL:            c.OriginalURL(),
			HostName:       c.Hostname(),
			ClientIP:       c.IP(),
			HTTPStatusCode: status,
			Duration:       time.Since(start).Milliseconds(),
			HTTPMethod:     c.Method(),
			Message:        "HTTP request served",
			Extra:          map[string]any{"CorrelationIdSource": source},
		}, level)

		return err
	}
}
