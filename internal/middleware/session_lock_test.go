package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"dreamtravels/internal/middleware"
	"dreamtravels/internal/services"
	"dreamtravels/internal/sessionstore"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLock_SerializesRequestsOfOneSession(t *testing.T) {
	locks := services.NewSessionLocks()
	var active, peak int32

	app := fiber.New()
	app.Use(middleware.SessionLock(locks))
	app.Get("/page", func(c *fiber.Ctx) error {
		n := atomic.AddInt32(&active, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		atomic.AddInt32(&active, -1)
		return c.SendString("ok")
	})

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodGet, "/page", nil)
			req.AddCookie(&http.Cookie{Name: sessionstore.CookieName, Value: "same-session"})
			resp, err := app.Test(req, -1)
			if assert.NoError(t, err) {
				resp.Body.Close()
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, atomic.LoadInt32(&peak))
	assert.Equal(t, 0, locks.Len())
}

func TestSessionLock_PassesRequestsWithoutSession(t *testing.T) {
	locks := services.NewSessionLocks()
	app := fiber.New()
	app.Use(middleware.SessionLock(locks))
	app.Get("/page", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/page", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, locks.Len())
}
