package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clientIPForHeaders(t *testing.T, headers map[string]string) (string, string) {
	t.Helper()

	app := fiber.New()
	var ipv4, ipv6 string
	app.Get("/", func(c *fiber.Ctx) error {
		ipv4, ipv6 = GetClientIP(c)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	return ipv4, ipv6
}

func TestGetClientIPPrefersCloudflareHeader(t *testing.T) {
	ipv4, ipv6 := clientIPForHeaders(t, map[string]string{
		"CF-Connecting-IP": "203.0.113.7",
		"X-Forwarded-For":  "2001:db8::1",
	})

	assert.Equal(t, "203.0.113.7", ipv4)
	assert.Equal(t, "2001:db8::1", ipv6)
}

func TestGetClientIPReadsForwardedForChain(t *testing.T) {
	ipv4, ipv6 := clientIPForHeaders(t, map[string]string{
		"X-Forwarded-For": "203.0.113.9, 2001:db8::2",
	})

	assert.Equal(t, "203.0.113.9", ipv4)
	assert.Equal(t, "2001:db8::2", ipv6)
}

func TestGetClientIPFallsBackToRemoteAddr(t *testing.T) {
	ipv4, ipv6 := clientIPForHeaders(t, nil)

	// app.Test serves over an in-memory conn with a zero remote address
	assert.Equal(t, "0.0.0.0", ipv4)
	assert.Empty(t, ipv6)
}

func TestExtractUsername(t *testing.T) {
	app := fiber.New()
	var got string
	app.Get("/", func(c *fiber.Ctx) error {
		c.Locals(USER_NAME, "mara")
		got = ExtractUsername(c)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "mara", got)
}

func TestExtractUsernameEmptyWithoutSession(t *testing.T) {
	app := fiber.New()
	var got string
	app.Get("/", func(c *fiber.Ctx) error {
		got = ExtractUsername(c)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, got)
}
