package handlers

import (
	"errors"
	"log"

	"dreamtravels/internal/flash"
	"dreamtravels/internal/middleware"
	"dreamtravels/internal/models"
	"dreamtravels/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// AuthHandler handles signup, login and logout.
type AuthHandler struct {
	*Web
	authService  *services.AuthService
	secureCookie bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(web *Web, authService *services.AuthService, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		Web:          web,
		authService:  authService,
		secureCookie: secureCookie,
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/signup", h.HandleSignupForm)
	router.Post("/signup", h.HandleSignup)
	router.Get("/login", h.HandleLoginForm)
	router.Post("/login", h.HandleLogin)
	router.Get("/logout", h.HandleLogout)
}

// HandleSignupForm renders the signup page.
func (h *AuthHandler) HandleSignupForm(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	return h.render(c, sess, fiber.StatusOK, "signup", fiber.Map{"Title": "Sign up", "Form": signupForm{}})
}

// HandleSignup registers a new user and logs them in.
func (h *AuthHandler) HandleSignup(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}

	var form signupForm
	failed, err := h.parseForm(c, &form)
	if err != nil || len(failed) > 0 {
		return h.signupError(c, sess, form, "All fields are required")
	}

	user, err := h.authService.RegisterUser(form.Username, form.Email, form.Password, form.ConfirmPassword)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrMissingFields):
		return h.signupError(c, sess, form, "All fields are required")
	case errors.Is(err, services.ErrPasswordMismatch):
		return h.signupError(c, sess, form, "Passwords do not match")
	case errors.Is(err, services.ErrUserExists):
		return h.signupError(c, sess, form, "Username or email already exists")
	default:
		log.Printf("Error registering user %s: %v", form.Username, err)
		return h.signupError(c, sess, form, "Error creating account. Please try again.")
	}

	if err := h.logIn(c, user); err != nil {
		log.Printf("Error issuing token for new user %s: %v", user.Username, err)
		return h.flashRedirect(c, sess, flash.Success, "Account created successfully! Please log in.", "/login")
	}
	return h.flashRedirect(c, sess, flash.Success, "Account created successfully!", "/")
}

func (h *AuthHandler) signupError(c *fiber.Ctx, sess *session.Session, form signupForm, message string) error {
	flash.Add(sess, flash.Error, message)
	form.Password, form.ConfirmPassword = "", ""
	return h.render(c, sess, fiber.StatusBadRequest, "signup", fiber.Map{"Title": "Sign up", "Form": form})
}

// HandleLoginForm renders the login page.
func (h *AuthHandler) HandleLoginForm(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	return h.render(c, sess, fiber.StatusOK, "login", fiber.Map{"Title": "Log in", "Form": loginForm{}, "Next": c.Query("next")})
}

// HandleLogin checks the credentials, sets the auth cookie and returns the user
// to the page they asked for.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}

	var form loginForm
	failed, err := h.parseForm(c, &form)
	if form.Next == "" {
		form.Next = c.Query("next")
	}
	if err != nil || len(failed) > 0 {
		return h.loginError(c, sess, form, fiber.StatusBadRequest, "All fields are required")
	}

	user, token, err := h.authService.LoginUser(form.Username, form.Password)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrMissingFields):
		return h.loginError(c, sess, form, fiber.StatusBadRequest, "All fields are required")
	case errors.Is(err, services.ErrInvalidCredentials):
		return h.loginError(c, sess, form, fiber.StatusUnauthorized, "Invalid username or password")
	default:
		log.Printf("Error during login for user %s: %v", form.Username, err)
		return h.loginError(c, sess, form, fiber.StatusInternalServerError, "Error logging in. Please try again.")
	}

	middleware.SetAuthCookie(c, token, h.authService.TokenDuration(), h.secureCookie)
	log.Printf("User %s logged in", user.Username)
	return h.flashRedirect(c, sess, flash.Success, "Logged in successfully!", safeNext(form.Next))
}

func (h *AuthHandler) loginError(c *fiber.Ctx, sess *session.Session, form loginForm, status int, message string) error {
	flash.Add(sess, flash.Error, message)
	form.Password = ""
	return h.render(c, sess, status, "login", fiber.Map{"Title": "Log in", "Form": form, "Next": form.Next})
}

// HandleLogout drops the auth cookie and everything stored in the session.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	middleware.ClearAuthCookie(c)
	if err := sess.Reset(); err != nil {
		log.Printf("Error resetting session: %v", err)
	}
	return h.flashRedirect(c, sess, flash.Success, "You have been logged out", "/")
}

func (h *AuthHandler) logIn(c *fiber.Ctx, user *models.User) error {
	token, err := h.authService.IssueToken(user)
	if err != nil {
		return err
	}
	middleware.SetAuthCookie(c, token, h.authService.TokenDuration(), h.secureCookie)
	return nil
}
