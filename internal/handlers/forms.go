package handlers

// addToCartForm is posted by the destination page.
type addToCartForm struct {
	TravelDate string `form:"travel_date" validate:"required"`
	Quantity   int    `form:"quantity" validate:"omitempty,min=1"`
}

// bookForm is posted by the booking page; it always books one traveler.
type bookForm struct {
	TravelDate string `form:"travel_date" validate:"required"`
}

type checkoutForm struct {
	PaymentMethod string `form:"payment_method" validate:"required"`
}

type signupForm struct {
	Username        string `form:"username" validate:"required"`
	Email           string `form:"email" validate:"required"`
	Password        string `form:"password" validate:"required"`
	ConfirmPassword string `form:"confirm_password" validate:"required"`
}

type loginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
	Next     string `form:"next"`
}
