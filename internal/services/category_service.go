package services

import (
	"errors"
	"fmt"

	"katalog/internal/models"
	"katalog/internal/repositories"
)

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{
		repo: repo,
	}
}

// CreateCategory creates a new category. Names are unique across active and
// inactive categories alike.
func (s *CategoryService) CreateCategory(req models.CreateCategoryRequest) (*models.CategoryResponse, error) {
	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}
	if existing != nil {
		return nil, ErrCategoryExists
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		IsActive:    isActive,
		Icon:        req.Icon,
	}
	if err := s.repo.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	resp := category.ToResponse()
	return &resp, nil
}

// GetAllCategories retrieves all active categories ordered by name ascending.
func (s *CategoryService) GetAllCategories() ([]models.CategoryResponse, error) {
	categories, err := s.repo.GetAllActive()
	if err != nil {
		return nil, err
	}

	responses := make([]models.CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, categories[i].ToResponse())
	}
	return responses, nil
}

// GetCategoryByID retrieves a single active category by its ID. An inactive
// category is reported as not found.
func (s *CategoryService) GetCategoryByID(id string) (*models.CategoryResponse, error) {
	category, err := s.repo.GetActiveByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	resp := category.ToResponse()
	return &resp, nil
}

// DeactivateCategory soft-deletes a category by clearing its isActive flag.
// The row stays in place and keeps blocking its name for new categories.
func (s *CategoryService) DeactivateCategory(id string) error {
	category, err := s.repo.GetActiveByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}

	category.IsActive = false
	if err := s.repo.Update(category); err != nil {
		return fmt.Errorf("failed to deactivate category %s: %w", id, err)
	}
	return nil
}
