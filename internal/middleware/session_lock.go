package middleware

import (
	"dreamtravels/internal/services"
	"dreamtravels/internal/sessionstore"

	"github.com/gofiber/fiber/v2"
)

// SessionLock holds the lock of the request's session until the handler chain
// returns. Every handler loads the session, changes it and saves all of it back,
// so requests of one session must not overlap. Requests without a session
// cookie get a fresh session and need no lock.
func SessionLock(locks *services.SessionLocks) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if key := c.Cookies(sessionstore.CookieName); key != "" {
			unlock := locks.Lock(key)
			defer unlock()
		}
		return c.Next()
	}
}
