package repositories

import "katalog/internal/models"

// CategoryRepository defines the interface for category data access.
// Active-only lookups back the soft-delete semantics: an inactive category is
// invisible to GetActiveByID and GetAllActive but still blocks its name.
type CategoryRepository interface {
	Create(category *models.Category) error
	GetByName(name string) (*models.Category, error)
	GetActiveByID(id string) (*models.Category, error)
	GetAllActive() ([]models.Category, error)
	Update(category *models.Category) error
}
