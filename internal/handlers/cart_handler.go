package handlers

import (
	"errors"
	"fmt"
	"log"

	"dreamtravels/internal/cart"
	"dreamtravels/internal/flash"
	"dreamtravels/internal/repositories"
	"dreamtravels/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// CartHandler handles the session cart pages.
type CartHandler struct {
	*Web
	destinations *services.DestinationService
	carts        *services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(web *Web, destinations *services.DestinationService, carts *services.CartService) *CartHandler {
	return &CartHandler{Web: web, destinations: destinations, carts: carts}
}

// RegisterRoutes registers the cart routes. Every route requires a logged-in user.
func (h *CartHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	router.Post("/add-to-cart/:id", authRequired, h.HandleAddToCart)
	router.Get("/cart", authRequired, h.HandleCart)
	router.Post("/cart/remove/:line", authRequired, h.HandleRemove)
	router.Get("/book/:id", authRequired, h.HandleBookForm)
	router.Post("/book/:id", authRequired, h.HandleBook)
}

// HandleAddToCart adds the posted quantity for a travel date to the cart.
func (h *CartHandler) HandleAddToCart(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	id, ok := paramID(c, "id")
	if !ok {
		return h.flashRedirect(c, sess, flash.Error, "Destination not found", "/")
	}
	detail := fmt.Sprintf("/destination/%d", id)

	var form addToCartForm
	failed, err := h.parseForm(c, &form)
	if err != nil {
		log.Printf("Error parsing add-to-cart form: %v", err)
		return h.flashRedirect(c, sess, flash.Error, "Invalid form submission", detail)
	}
	if _, missing := failed["TravelDate"]; missing {
		return h.flashRedirect(c, sess, flash.Error, "Please select a travel date", detail)
	}
	if len(failed) > 0 {
		return h.flashRedirect(c, sess, flash.Error, "Quantity must be at least 1", detail)
	}
	if form.Quantity == 0 {
		form.Quantity = 1
	}

	return h.add(c, sess, id, form.TravelDate, form.Quantity, detail)
}

// add puts the destination into the cart and redirects to the cart page.
// Failures go back to the page at back.
func (h *CartHandler) add(c *fiber.Ctx, sess *session.Session, id uint, travelDate string, quantity int, back string) error {
	userCart := cart.Load(sess)
	destination, _, err := h.carts.AddToCart(userCart, id, travelDate, quantity)
	switch {
	case err == nil:
	case errors.Is(err, repositories.ErrNotFound):
		return h.flashRedirect(c, sess, flash.Error, "Destination not found", "/")
	case errors.Is(err, services.ErrTravelDateRequired):
		return h.flashRedirect(c, sess, flash.Error, "Please select a travel date", back)
	case errors.Is(err, cart.ErrInvalidQuantity):
		return h.flashRedirect(c, sess, flash.Error, "Quantity must be at least 1", back)
	default:
		log.Printf("Error adding destination %d to cart: %v", id, err)
		return h.flashRedirect(c, sess, flash.Error, "Error adding to cart", back)
	}

	if err := cart.Save(sess, userCart); err != nil {
		log.Printf("Error saving cart: %v", err)
		return h.flashRedirect(c, sess, flash.Error, "Error adding to cart", back)
	}
	return h.flashRedirect(c, sess, flash.Success, fmt.Sprintf("Added %s to your cart", destination.Name), "/cart")
}

// HandleCart shows the cart lines joined with their destinations.
func (h *CartHandler) HandleCart(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	view, err := h.destinations.CartView(cart.Load(sess))
	if err != nil {
		log.Printf("Error loading cart: %v", err)
		return h.flashRedirect(c, sess, flash.Error, "Could not load your cart", "/")
	}
	return h.render(c, sess, fiber.StatusOK, "cart", fiber.Map{"Title": "Your cart", "Cart": view})
}

// HandleRemove removes one line from the cart by its line id.
func (h *CartHandler) HandleRemove(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	userCart := cart.Load(sess)
	if err := h.carts.RemoveFromCart(userCart, c.Params("line")); err != nil {
		return h.flashRedirect(c, sess, flash.Error, "Item not found in your cart", "/cart")
	}
	if err := cart.Save(sess, userCart); err != nil {
		log.Printf("Error saving cart: %v", err)
		return h.flashRedirect(c, sess, flash.Error, "Could not update your cart", "/cart")
	}
	return h.flashRedirect(c, sess, flash.Success, "Item removed from cart", "/cart")
}

// HandleBookForm renders the booking page of a destination.
func (h *CartHandler) HandleBookForm(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	id, ok := paramID(c, "id")
	if !ok {
		return h.flashRedirect(c, sess, flash.Error, "Destination not found", "/")
	}
	destination, err := h.destinations.GetDestination(id)
	if err != nil {
		return h.flashRedirect(c, sess, flash.Error, "Destination not found", "/")
	}
	return h.render(c, sess, fiber.StatusOK, "booking", fiber.Map{"Title": "Book " + destination.Name, "Destination": destination})
}

// HandleBook adds one traveler for the chosen date to the cart.
func (h *CartHandler) HandleBook(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	id, ok := paramID(c, "id")
	if !ok {
		return h.flashRedirect(c, sess, flash.Error, "Destination not found", "/")
	}
	back := fmt.Sprintf("/book/%d", id)

	var form bookForm
	failed, err := h.parseForm(c, &form)
	if err != nil || len(failed) > 0 {
		return h.flashRedirect(c, sess, flash.Error, "Please select a travel date", back)
	}
	return h.add(c, sess, id, form.TravelDate, 1, back)
}
