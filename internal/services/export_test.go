package services

// SetOrderNumberGenerator replaces the order number source of s.
func (s *CheckoutService) SetOrderNumberGenerator(fn func() string) {
	s.newOrderNumber = fn
}
