package repositories

import "dreamtravels/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	ExistsByUsernameOrEmail(username, email string) (bool, error)
	CountAdmins() (int64, error)
}
