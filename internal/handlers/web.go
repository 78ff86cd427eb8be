package handlers

import (
	"fmt"
	"log"
	"strings"

	"dreamtravels/internal/cart"
	"dreamtravels/internal/flash"
	"dreamtravels/internal/middleware"
	"dreamtravels/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Web holds what every page handler needs: sessions, the per-session locks and
// the form validator.
type Web struct {
	Sessions *session.Store
	Locks    *services.SessionLocks
	validate *validator.Validate
}

// NewWeb creates the shared page helpers.
func NewWeb(sessions *session.Store, locks *services.SessionLocks) *Web {
	return &Web{
		Sessions: sessions,
		Locks:    locks,
		validate: validator.New(),
	}
}

// session loads the session of the request.
func (w *Web) session(c *fiber.Ctx) (*session.Session, error) {
	sess, err := w.Sessions.Get(c)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return sess, nil
}

// render pops the pending flash messages, saves the session and renders page
// name inside the layout.
func (w *Web) render(c *fiber.Ctx, sess *session.Session, status int, name string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Flashes"] = flash.Pop(sess)
	data["User"] = middleware.UserFrom(c)
	data["CartCount"] = cart.Load(sess).Len()
	if err := sess.Save(); err != nil {
		log.Printf("Error saving session: %v", err)
	}
	return c.Status(status).Render(name, data)
}

// redirect saves the session and redirects.
func (w *Web) redirect(c *fiber.Ctx, sess *session.Session, to string) error {
	if err := sess.Save(); err != nil {
		log.Printf("Error saving session: %v", err)
	}
	return c.Redirect(to)
}

// flashRedirect queues a message and redirects.
func (w *Web) flashRedirect(c *fiber.Ctx, sess *session.Session, category, text, to string) error {
	flash.Add(sess, category, text)
	return w.redirect(c, sess, to)
}

// parseForm binds the request body into form and validates it. The returned
// validation errors are keyed by field name and carry the failed tag.
func (w *Web) parseForm(c *fiber.Ctx, form interface{}) (map[string]string, error) {
	if err := c.BodyParser(form); err != nil {
		return nil, fmt.Errorf("invalid form submission: %w", err)
	}
	if err := w.validate.Struct(form); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, err
		}
		failed := make(map[string]string, len(validationErrors))
		for _, e := range validationErrors {
			failed[e.Field()] = e.Tag()
		}
		return failed, nil
	}
	return nil, nil
}

// paramID reads a positive numeric route parameter.
func paramID(c *fiber.Ctx, name string) (uint, bool) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// safeNext keeps post-login redirects on this site.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, `\`) {
		return "/"
	}
	return next
}
