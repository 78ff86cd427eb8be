package handlers

import (
	"dreamtravels/internal/middleware"
	"dreamtravels/internal/services"

	"github.com/gofiber/fiber/v2"
)

// Services bundles the services the page handlers depend on.
type Services struct {
	Auth         *services.AuthService
	Destinations *services.DestinationService
	Carts        *services.CartService
	Checkout     *services.CheckoutService
	Admin        *services.AdminService
}

// Register mounts every page route on router.
func Register(router fiber.Router, web *Web, svc Services, secureCookie bool) {
	authRequired := middleware.AuthRequired(svc.Auth, web.Sessions)
	adminRequired := middleware.AdminRequired(svc.Auth, web.Sessions)

	// Every page loads the session and saves all of it back, so one session's
	// requests run one at a time.
	router.Use(middleware.SessionLock(web.Locks))
	router.Use(middleware.CurrentUser(svc.Auth))

	NewDestinationHandler(web, svc.Destinations).RegisterRoutes(router)
	NewAuthHandler(web, svc.Auth, secureCookie).RegisterRoutes(router)
	NewCartHandler(web, svc.Destinations, svc.Carts).RegisterRoutes(router, authRequired)
	NewOrderHandler(web, svc.Checkout, svc.Destinations).RegisterRoutes(router, authRequired)
	NewAdminHandler(web, svc.Admin).RegisterRoutes(router, adminRequired)
}
