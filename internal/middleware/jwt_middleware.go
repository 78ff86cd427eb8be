package middleware

import (
	"log"
	"net/url"
	"time"

	"dreamtravels/internal/flash"
	"dreamtravels/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// AuthCookie is the cookie holding the signed token of the logged-in user.
const AuthCookie = "auth_token"

const localUser = "user"

// UserFrom returns the identity stored by the auth middleware, or nil.
func UserFrom(c *fiber.Ctx) *services.Identity {
	identity, _ := c.Locals(localUser).(*services.Identity)
	return identity
}

// SetAuthCookie stores token in the auth cookie.
func SetAuthCookie(c *fiber.Ctx, token string, ttl time.Duration, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     AuthCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// ClearAuthCookie expires the auth cookie.
func ClearAuthCookie(c *fiber.Ctx) {
	c.ClearCookie(AuthCookie)
}

// identify validates the auth cookie once per request and caches the result.
func identify(c *fiber.Ctx, authService *services.AuthService) *services.Identity {
	if identity := UserFrom(c); identity != nil {
		return identity
	}
	token := c.Cookies(AuthCookie)
	if token == "" {
		return nil
	}
	identity, err := authService.ValidateToken(token)
	if err != nil {
		log.Printf("JWT validation failed: %v", err)
		ClearAuthCookie(c)
		return nil
	}
	c.Locals(localUser, identity)
	return identity
}

// CurrentUser exposes the logged-in user, if any, to the following handlers.
func CurrentUser(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identify(c, authService)
		return c.Next()
	}
}

// AuthRequired sends anonymous visitors to the login page, remembering where they were going.
func AuthRequired(authService *services.AuthService, sessions *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if identify(c, authService) == nil {
			return denied(c, sessions, "Please log in to access this page", loginURL(c))
		}
		return c.Next()
	}
}

// AdminRequired lets only administrators through.
func AdminRequired(authService *services.AuthService, sessions *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := identify(c, authService)
		if identity == nil {
			return denied(c, sessions, "Please log in to access this page", loginURL(c))
		}
		if !identity.IsAdmin {
			return denied(c, sessions, "You do not have permission to access this page", "/")
		}
		return c.Next()
	}
}

func loginURL(c *fiber.Ctx) string {
	return "/login?next=" + url.QueryEscape(c.OriginalURL())
}

func denied(c *fiber.Ctx, sessions *session.Store, message, to string) error {
	sess, err := sessions.Get(c)
	if err != nil {
		log.Printf("Error loading session: %v", err)
		return c.Redirect(to)
	}
	flash.Add(sess, flash.Error, message)
	if err := sess.Save(); err != nil {
		log.Printf("Error saving session: %v", err)
	}
	return c.Redirect(to)
}
