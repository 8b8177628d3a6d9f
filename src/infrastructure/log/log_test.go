package log

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestLogger_WritesJSONWithCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithOutput(&buf)

	ctx := logger.WithCorrelationID(context.Background(), "corr-1")
	logger.Info(ctx, "hello")
	logger.Exception(ctx, "boom", errors.New("ledger down"))

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)

	assert.Equal(t, "hello", entries[0]["Message"])
	assert.Equal(t, "info", entries[0]["Level"])
	assert.Equal(t, "corr-1", entries[0]["CorrelationId"])

	assert.Equal(t, "error", entries[1]["Level"])
	assert.Equal(t, "ledger down", entries[1]["Exception"])
}

func TestLogger_WithExtra(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithOutput(&buf)

	logger.WarnWithExtra(context.Background(), "notify failed", map[string]any{"OrderId": "o-1"})

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "warning", entries[0]["Level"])
	assert.Equal(t, "o-1", entries[0]["OrderId"])
}

func TestRequestLogger_EchoesCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithOutput(&buf)

	app := fiber.New()
	app.Use(RequestLogger(logger))
	app.Get("/ping", func(c *fiber.Ctx) error {
		logger.Info(c.UserContext(), "inside handler")
		return c.SendString("pong")
	})

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(CorrelationIDHeader, "abc-123")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "abc-123", resp.Header.Get(CorrelationIDHeader))

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "abc-123", entries[0]["CorrelationId"])
	assert.Equal(t, "HTTP request served", entries[1]["Message"])
	assert.Equal(t, float64(fiber.StatusOK), entries[1]["HttpStatusCode"])
	assert.Equal(t, "GET", entries[1]["HttpMethod"])
	assert.Equal(t, "header", entries[1]["CorrelationIdSource"])
}

func TestRequestLogger_GeneratesCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(RequestLogger(NewLoggerWithOutput(&buf)))
	app.Get("/fail", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "nope")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/fail", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)
	generated := resp.Header.Get(CorrelationIDHeader)
	assert.NotEmpty(t, generated)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, generated, entries[0]["CorrelationId"])
	assert.Equal(t, "generated", entries[0]["CorrelationIdSource"])
}
