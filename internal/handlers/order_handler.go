package handlers

import (
	"errors"
	"log"

	"dreamtravels/internal/cart"
	"dreamtravels/internal/flash"
	"dreamtravels/internal/middleware"
	"dreamtravels/internal/repositories"
	"dreamtravels/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles checkout and the order pages of the logged-in user.
type OrderHandler struct {
	*Web
	checkout     *services.CheckoutService
	destinations *services.DestinationService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(web *Web, checkout *services.CheckoutService, destinations *services.DestinationService) *OrderHandler {
	return &OrderHandler{Web: web, checkout: checkout, destinations: destinations}
}

// RegisterRoutes registers the checkout and order routes.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	router.Get("/checkout", authRequired, h.HandleCheckoutForm)
	router.Post("/checkout", authRequired, h.HandleCheckout)

	orderRoutes := router.Group("/orders", authRequired)
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:number", h.HandleGetOrder)
}

// HandleCheckoutForm shows the amount due and the payment choices.
func (h *OrderHandler) HandleCheckoutForm(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	userCart := cart.Load(sess)
	if userCart.IsEmpty() {
		return h.flashRedirect(c, sess, flash.Error, "Your cart is empty", "/")
	}
	return h.render(c, sess, fiber.StatusOK, "checkout", fiber.Map{"Title": "Checkout", "CartTotal": userCart.Total()})
}

// HandleCheckout places an order for the cart content. The session lock held
// by the router makes a double submit place a single order.
func (h *OrderHandler) HandleCheckout(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	userCart := cart.Load(sess)
	if userCart.IsEmpty() {
		return h.flashRedirect(c, sess, flash.Error, "Your cart is empty", "/")
	}

	var form checkoutForm
	if failed, err := h.parseForm(c, &form); err != nil || len(failed) > 0 {
		return h.flashRedirect(c, sess, flash.Error, "Please select a payment method", "/checkout")
	}

	user := middleware.UserFrom(c)
	order, err := h.checkout.Checkout(user.UserID, userCart, form.PaymentMethod)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrEmptyCart):
		return h.flashRedirect(c, sess, flash.Error, "Your cart is empty", "/")
	case errors.Is(err, services.ErrPaymentMethodRequired):
		return h.flashRedirect(c, sess, flash.Error, "Please select a payment method", "/checkout")
	default:
		log.Printf("Error processing order for user %d: %v", user.UserID, err)
		flash.Add(sess, flash.Error, "Error processing your order. Please try again.")
		return h.render(c, sess, fiber.StatusInternalServerError, "checkout", fiber.Map{"Title": "Checkout", "CartTotal": userCart.Total()})
	}

	if err := cart.Save(sess, userCart); err != nil {
		log.Printf("Error clearing cart after order %s: %v", order.OrderNumber, err)
	}
	return h.flashRedirect(c, sess, flash.Success, "Your order has been placed successfully!", "/orders/"+order.OrderNumber)
}

// HandleGetOrders lists the orders of the logged-in user.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	orders, err := h.checkout.ListOrders(middleware.UserFrom(c).UserID)
	if err != nil {
		log.Printf("Error listing orders: %v", err)
		return h.flashRedirect(c, sess, flash.Error, "Could not retrieve orders", "/")
	}
	return h.render(c, sess, fiber.StatusOK, "orders", fiber.Map{"Title": "My orders", "Orders": orders})
}

// HandleGetOrder shows the confirmation page of one of the user's orders.
func (h *OrderHandler) HandleGetOrder(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	number := c.Params("number")
	order, err := h.checkout.GetOrderForUser(middleware.UserFrom(c).UserID, number)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			log.Printf("Error getting order %s: %v", number, err)
		}
		return h.flashRedirect(c, sess, flash.Error, "Order not found", "/")
	}

	ids := make([]uint, 0, len(order.Items))
	for _, item := range order.Items {
		ids = append(ids, item.DestinationID)
	}
	names, err := h.destinations.DestinationNames(ids)
	if err != nil {
		log.Printf("Error loading destinations of order %s: %v", number, err)
		names = map[uint]string{}
	}
	return h.render(c, sess, fiber.StatusOK, "order_confirmation", fiber.Map{"Title": "Order " + order.OrderNumber, "Order": order, "Destinations": names})
}
