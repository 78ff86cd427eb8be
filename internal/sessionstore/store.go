package sessionstore

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// CookieName is the cookie carrying the session id.
const CookieName = "session_id"

// NewStore creates the session store. A nil storage keeps sessions in memory.
func NewStore(storage fiber.Storage, expiration time.Duration, secure bool) *session.Store {
	if expiration <= 0 {
		expiration = 24 * time.Hour
	}
	return session.New(session.Config{
		Storage:        storage,
		Expiration:     expiration,
		KeyLookup:      "cookie:" + CookieName,
		CookieHTTPOnly: true,
		CookieSecure:   secure,
		CookieSameSite: "Lax",
	})
}
