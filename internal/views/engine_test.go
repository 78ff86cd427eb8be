package views_test

import (
	"bytes"
	"testing"

	"dreamtravels/internal/flash"
	"dreamtravels/internal/models"
	"dreamtravels/internal/services"
	"dreamtravels/internal/views"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ fiber.Views = views.New()

func render(t *testing.T, e fiber.Views, name string, data fiber.Map) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, e.Render(&buf, name, data, views.Layout))
	return buf.String()
}

func TestEngine_RendersPagesInLayout(t *testing.T) {
	e := views.New()
	require.NoError(t, e.Load())

	out := render(t, e, "home", fiber.Map{
		"Destinations": []models.Destination{{ID: 1, Name: "Bali, Indonesia", Price: 899.9}},
		"Flashes":      []flash.Message{{Category: flash.Success, Text: "Logged in successfully!"}},
		"User":         &services.Identity{UserID: 1, Username: "alice"},
		"CartCount":    2,
	})
	assert.Contains(t, out, "<title>Dream Travels</title>")
	assert.Contains(t, out, `<a href="/destination/1">Bali, Indonesia</a>`)
	assert.Contains(t, out, "$899.90")
	assert.Contains(t, out, "Logged in successfully!")
	assert.Contains(t, out, "Cart (2)")
	assert.NotContains(t, out, `href="/admin"`)

	out = render(t, e, "destination_detail", fiber.Map{
		"Title":       "Tokyo, Japan",
		"Destination": &models.Destination{ID: 3, Name: "Tokyo, Japan", Price: 1499.99},
	})
	assert.Contains(t, out, "<title>Tokyo, Japan | Dream Travels</title>")
	assert.Contains(t, out, `action="/add-to-cart/3"`)
	assert.Contains(t, out, `href="/login"`)
}

func TestEngine_EscapesContent(t *testing.T) {
	e := views.New()
	require.NoError(t, e.Load())

	out := render(t, e, "login", fiber.Map{
		"Form": struct{ Username string }{Username: `<script>alert(1)</script>`},
		"Next": "/cart",
	})
	assert.NotContains(t, out, "<script>alert(1)</script>")
	assert.Contains(t, out, `value="/cart"`)
}

func TestEngine_RendersPageWithoutLayout(t *testing.T) {
	e := views.New()
	require.NoError(t, e.Load())

	var buf bytes.Buffer
	require.NoError(t, e.Render(&buf, "contact", fiber.Map{"Title": "Contact"}))
	assert.Contains(t, buf.String(), "Contact us")
	assert.NotContains(t, buf.String(), "<title>")
}

func TestEngine_UnknownTemplate(t *testing.T) {
	e := views.New()
	require.NoError(t, e.Load())

	var buf bytes.Buffer
	assert.Error(t, e.Render(&buf, "missing", nil))
}

func TestFuncs(t *testing.T) {
	money := views.Funcs["money"].(func(float64) string)
	mul := views.Funcs["mul"].(func(float64, int) float64)

	assert.Equal(t, "3099.97", money(3099.97))
	assert.Equal(t, "10.00", money(10))
	assert.Equal(t, 1799.98, mul(899.99, 2))
}
