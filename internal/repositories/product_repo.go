package repositories

import "katalog/internal/models"

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	Create(product *models.Product) error
	GetActiveByID(id string) (*models.Product, error)
	GetAllActive() ([]models.Product, error)
	Update(product *models.Product) error
}
