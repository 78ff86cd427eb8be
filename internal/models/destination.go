package models

// Destination represents a travel destination offered on the site.
type Destination struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"not null" validate:"required,min=2,max=200"`
	Description string  `json:"description" gorm:"not null" validate:"required,max=2000"`
	Price       float64 `json:"price" gorm:"type:decimal(10,2);not null" validate:"required,gt=0"`
	ImageURL    string  `json:"image_url" validate:"omitempty,url"`
}
