package handlers

import (
	"errors"
	"log"

	"dreamtravels/internal/flash"
	"dreamtravels/internal/repositories"
	"dreamtravels/internal/services"

	"github.com/gofiber/fiber/v2"
)

// DestinationHandler serves the public destination pages.
type DestinationHandler struct {
	*Web
	service *services.DestinationService
}

// NewDestinationHandler creates a new DestinationHandler.
func NewDestinationHandler(web *Web, service *services.DestinationService) *DestinationHandler {
	return &DestinationHandler{Web: web, service: service}
}

// RegisterRoutes registers the destination routes with the Fiber app.
func (h *DestinationHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleHome)
	router.Get("/destination/:id", h.HandleDetail)
	router.Get("/contact", h.HandleContact)
}

// HandleHome lists all destinations.
func (h *DestinationHandler) HandleHome(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	destinations, err := h.service.ListDestinations()
	if err != nil {
		log.Printf("Error listing destinations: %v", err)
		flash.Add(sess, flash.Error, "Could not load destinations")
	}
	return h.render(c, sess, fiber.StatusOK, "home", fiber.Map{"Destinations": destinations})
}

// HandleDetail shows one destination with its add-to-cart form.
func (h *DestinationHandler) HandleDetail(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	id, ok := paramID(c, "id")
	if !ok {
		return h.flashRedirect(c, sess, flash.Error, "Destination not found", "/")
	}
	destination, err := h.service.GetDestination(id)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			log.Printf("Error getting destination %d: %v", id, err)
		}
		return h.flashRedirect(c, sess, flash.Error, "Destination not found", "/")
	}
	return h.render(c, sess, fiber.StatusOK, "destination_detail", fiber.Map{"Title": destination.Name, "Destination": destination})
}

// HandleContact renders the static contact page.
func (h *DestinationHandler) HandleContact(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	return h.render(c, sess, fiber.StatusOK, "contact", fiber.Map{"Title": "Contact"})
}
