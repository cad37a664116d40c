package services

import (
	"errors"
	"fmt"

	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/pkg/rabbitmq"

	"github.com/sirupsen/logrus"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo     repositories.ProductRepository
	mqClient *rabbitmq.Client
}

// NewProductService creates a new ProductService. mqClient may be nil, in
// which case no events are published.
func NewProductService(repo repositories.ProductRepository, mqClient *rabbitmq.Client) *ProductService {
	return &ProductService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// CreateProduct creates a new product. Products carry no uniqueness
// constraint, so creation never conflicts.
func (s *ProductService) CreateProduct(req models.CreateProductRequest) (*models.ProductResponse, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Stock:       *req.Stock,
		IsActive:    isActive,
		ImageURL:    req.ImageURL,
	}
	if err := s.repo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	// Publish an event so downstream consumers (inventory, search indexing)
	// learn about the new product. Failure to publish does not fail the
	// creation; the product is already persisted.
	if s.mqClient != nil {
		event := map[string]interface{}{
			"productID": product.ID,
			"name":      product.Name,
			"price":     product.Price,
			"stock":     product.Stock,
		}
		if err := s.mqClient.PublishEntityCreated("product.created", event); err != nil {
			logrus.Warnf("Failed to publish product created event for product %s: %v", product.ID, err)
		}
	}

	resp := product.ToResponse()
	return &resp, nil
}

// GetAllProducts retrieves all active products.
func (s *ProductService) GetAllProducts() ([]models.ProductResponse, error) {
	products, err := s.repo.GetAllActive()
	if err != nil {
		return nil, err
	}

	responses := make([]models.ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, products[i].ToResponse())
	}
	return responses, nil
}

// GetProductByID retrieves a single active product by its ID. An inactive
// product is reported as not found.
func (s *ProductService) GetProductByID(id string) (*models.ProductResponse, error) {
	product, err := s.repo.GetActiveByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	resp := product.ToResponse()
	return &resp, nil
}

// DeactivateProduct soft-deletes a product by clearing its isActive flag.
func (s *ProductService) DeactivateProduct(id string) error {
	product, err := s.repo.GetActiveByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	product.IsActive = false
	if err := s.repo.Update(product); err != nil {
		return fmt.Errorf("failed to deactivate product %s: %w", id, err)
	}
	return nil
}
