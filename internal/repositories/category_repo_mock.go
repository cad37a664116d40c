package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"katalog/internal/models"

	"github.com/google/uuid"
)

// MockCategoryRepository is an in-memory implementation of CategoryRepository.
type MockCategoryRepository struct {
	categories map[string]models.Category
	mu         sync.RWMutex
}

// NewMockCategoryRepository creates a new instance of MockCategoryRepository.
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		categories: make(map[string]models.Category),
	}
}

// Create adds a new category.
func (r *MockCategoryRepository) Create(category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.categories {
		if c.Name == category.Name {
			return fmt.Errorf("category with name %s already exists", category.Name)
		}
	}

	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	now := time.Now()
	category.Created = now
	category.Modified = now
	r.categories[category.ID] = *category
	return nil
}

// GetByName returns a category by its name, regardless of active state.
func (r *MockCategoryRepository) GetByName(name string) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.categories {
		if c.Name == name {
			category := c
			return &category, nil
		}
	}
	return nil, fmt.Errorf("category with name %s: %w", name, ErrNotFound)
}

// GetActiveByID returns an active category by its ID.
func (r *MockCategoryRepository) GetActiveByID(id string) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	category, ok := r.categories[id]
	if !ok || !category.IsActive {
		return nil, fmt.Errorf("category with ID %s: %w", id, ErrNotFound)
	}
	return &category, nil
}

// GetAllActive returns all active categories ordered by name ascending.
func (r *MockCategoryRepository) GetAllActive() ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categoryList := make([]models.Category, 0, len(r.categories))
	for _, c := range r.categories {
		if c.IsActive {
			categoryList = append(categoryList, c)
		}
	}
	sort.Slice(categoryList, func(i, j int) bool {
		return categoryList[i].Name < categoryList[j].Name
	})
	return categoryList, nil
}

// Update modifies an existing category.
func (r *MockCategoryRepository) Update(category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.categories[category.ID]
	if !ok {
		return fmt.Errorf("category with ID %s for update: %w", category.ID, ErrNotFound)
	}
	category.Modified = time.Now()
	r.categories[category.ID] = *category
	return nil
}
