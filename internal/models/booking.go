package models

import "time"

// Booking is a direct reservation of a destination. New trips go through the cart;
// bookings remain for the admin view and block destination deletion.
type Booking struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"not null"`
	Email         string    `json:"email" gorm:"not null"`
	DestinationID uint      `json:"destination_id" gorm:"index;not null"`
	TravelDate    string    `json:"travel_date" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
}

// BookingRow is a booking joined with its destination name.
type BookingRow struct {
	Booking
	DestinationName string `json:"destination_name"`
}
