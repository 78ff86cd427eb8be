package services

import (
	"fmt"
	"log"

	"dreamtravels/internal/models"
	"dreamtravels/internal/repositories"
)

// SampleDestinations are inserted into an empty store.
var SampleDestinations = []models.Destination{
	{
		Name:        "Paris, France",
		Description: "Experience the city of love with its iconic Eiffel Tower, world-class museums, and charming cafes.",
		Price:       1299.99,
		ImageURL:    "https://images.unsplash.com/photo-1502602898657-3e91760cbb34?q=80&w=1000&auto=format&fit=crop",
	},
	{
		Name:        "Bali, Indonesia",
		Description: "Discover tropical paradise with pristine beaches, ancient temples, and vibrant culture.",
		Price:       899.99,
		ImageURL:    "https://images.unsplash.com/photo-1584810359583-96fc3448beaa?q=80&w=1000&auto=format&fit=crop",
	},
	{
		Name:        "Tokyo, Japan",
		Description: "Explore the perfect blend of traditional culture and modern technology in Japan's capital.",
		Price:       1499.99,
		ImageURL:    "https://images.unsplash.com/photo-1503899036084-c55cdd92da26?q=80&w=1000&auto=format&fit=crop",
	},
	{
		Name:        "Santorini, Greece",
		Description: "Enjoy breathtaking sunsets, white-washed buildings, and crystal-clear waters in this Mediterranean paradise.",
		Price:       1899.99,
		ImageURL:    "https://images.unsplash.com/photo-1613395877344-13d4a8e0d49e?q=80&w=1000&auto=format&fit=crop",
	},
	{
		Name:        "New York City, USA",
		Description: "Visit the city that never sleeps with its iconic skyline, Broadway shows, and diverse neighborhoods.",
		Price:       1599.99,
		ImageURL:    "https://images.unsplash.com/photo-1496442226666-8d4d0e62e6e9?q=80&w=1000&auto=format&fit=crop",
	},
	{
		Name:        "Machu Picchu, Peru",
		Description: "Discover the ancient Incan citadel set high in the Andes Mountains, a UNESCO World Heritage site.",
		Price:       2199.99,
		ImageURL:    "https://images.unsplash.com/photo-1587595431973-160d0d94add1?q=80&w=1000&auto=format&fit=crop",
	},
}

// SeedDestinations inserts the sample destinations when the store has none.
// It returns how many were inserted.
func SeedDestinations(repo repositories.DestinationRepository) (int, error) {
	count, err := repo.Count()
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}
	for i := range SampleDestinations {
		d := SampleDestinations[i]
		if err := repo.Create(&d); err != nil {
			return i, fmt.Errorf("failed to seed destination %s: %w", d.Name, err)
		}
		log.Printf("Seeded destination: %s (ID: %d)", d.Name, d.ID)
	}
	return len(SampleDestinations), nil
}
