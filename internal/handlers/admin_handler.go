package handlers

import (
	"errors"
	"fmt"
	"log"

	"dreamtravels/internal/flash"
	"dreamtravels/internal/repositories"
	"dreamtravels/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler serves the admin dashboard.
type AdminHandler struct {
	*Web
	service *services.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(web *Web, service *services.AdminService) *AdminHandler {
	return &AdminHandler{Web: web, service: service}
}

// RegisterRoutes registers the admin routes behind adminRequired.
func (h *AdminHandler) RegisterRoutes(router fiber.Router, adminRequired fiber.Handler) {
	adminRoutes := router.Group("/admin", adminRequired)
	adminRoutes.Get("/", h.HandleDashboard)
	adminRoutes.Post("/destination/delete/:id", h.HandleDeleteDestination)
	adminRoutes.Post("/booking/delete/:id", h.HandleDeleteBooking)
}

// HandleDashboard lists destinations, bookings and orders.
func (h *AdminHandler) HandleDashboard(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	dashboard, err := h.service.Dashboard()
	if err != nil {
		log.Printf("Error loading admin dashboard: %v", err)
		flash.Add(sess, flash.Error, "Could not load the dashboard")
		dashboard = &services.Dashboard{}
	}
	return h.render(c, sess, fiber.StatusOK, "admin", fiber.Map{"Title": "Admin", "Dashboard": dashboard})
}

// HandleDeleteDestination deletes a destination unless bookings reference it.
func (h *AdminHandler) HandleDeleteDestination(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	id, ok := paramID(c, "id")
	if !ok {
		return h.flashRedirect(c, sess, flash.Error, "Destination not found", "/admin")
	}

	err = h.service.DeleteDestination(id)
	var bookingsErr *repositories.BookingsExistError
	switch {
	case err == nil:
		log.Printf("Destination %d deleted", id)
		return h.flashRedirect(c, sess, flash.Success, "Destination deleted successfully", "/admin")
	case errors.As(err, &bookingsErr):
		return h.flashRedirect(c, sess, flash.Error, fmt.Sprintf("Cannot delete destination. It has %d bookings.", bookingsErr.Count), "/admin")
	case errors.Is(err, repositories.ErrNotFound):
		return h.flashRedirect(c, sess, flash.Error, "Destination not found", "/admin")
	default:
		log.Printf("Error deleting destination %d: %v", id, err)
		return h.flashRedirect(c, sess, flash.Error, "Error deleting destination", "/admin")
	}
}

// HandleDeleteBooking deletes a booking.
func (h *AdminHandler) HandleDeleteBooking(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	id, ok := paramID(c, "id")
	if !ok {
		return h.flashRedirect(c, sess, flash.Error, "Booking not found", "/admin")
	}

	err = h.service.DeleteBooking(id)
	switch {
	case err == nil:
		return h.flashRedirect(c, sess, flash.Success, "Booking deleted successfully", "/admin")
	case errors.Is(err, repositories.ErrNotFound):
		return h.flashRedirect(c, sess, flash.Error, "Booking not found", "/admin")
	default:
		log.Printf("Error deleting booking %d: %v", id, err)
		return h.flashRedirect(c, sess, flash.Error, "Error deleting booking", "/admin")
	}
}
