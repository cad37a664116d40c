package services_test

import (
	"testing"

	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCategoryRepository is a mock implementation of repositories.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) GetByName(name string) (*models.Category, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetActiveByID(id string) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetAllActive() ([]models.Category, error) {
	args := m.Called()
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Update(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func TestCategoryService_CreateCategory(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(mockRepo)

	req := models.CreateCategoryRequest{Name: "Electronics"}

	var savedCategory *models.Category
	mockRepo.On("GetByName", req.Name).Return(nil, repositories.ErrNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.Category")).Run(func(args mock.Arguments) {
		savedCategory = args.Get(0).(*models.Category)
	}).Return(nil).Once()

	resp, err := service.CreateCategory(req)

	assert.NoError(t, err)
	assert.Equal(t, "Electronics", resp.Name)
	assert.True(t, resp.IsActive, "isActive must default to true when omitted")
	assert.Nil(t, resp.Description)
	assert.True(t, savedCategory.IsActive)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_CreateCategory_ExplicitInactive(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(mockRepo)

	inactive := false
	req := models.CreateCategoryRequest{Name: "Archive", IsActive: &inactive}

	mockRepo.On("GetByName", req.Name).Return(nil, repositories.ErrNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.Category")).Return(nil).Once()

	resp, err := service.CreateCategory(req)

	assert.NoError(t, err)
	assert.False(t, resp.IsActive)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_CreateCategory_DuplicateName(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(mockRepo)

	req := models.CreateCategoryRequest{Name: "Electronics"}

	existing := &models.Category{ID: "cat-1", Name: req.Name, IsActive: true}
	mockRepo.On("GetByName", req.Name).Return(existing, nil).Once()

	resp, err := service.CreateCategory(req)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, services.ErrCategoryExists)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_GetAllCategories(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(mockRepo)

	categories := []models.Category{
		{ID: "1", Name: "Books", IsActive: true},
		{ID: "2", Name: "Electronics", IsActive: true},
	}
	mockRepo.On("GetAllActive").Return(categories, nil).Once()

	responses, err := service.GetAllCategories()

	assert.NoError(t, err)
	assert.Len(t, responses, 2)
	assert.Equal(t, "Books", responses[0].Name)
	assert.Equal(t, "Electronics", responses[1].Name)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_GetCategoryByID_NotFound(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(mockRepo)

	mockRepo.On("GetActiveByID", "99").Return(nil, repositories.ErrNotFound).Once()

	resp, err := service.GetCategoryByID("99")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, services.ErrCategoryNotFound)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_DeactivateCategory(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(mockRepo)

	category := &models.Category{ID: "cat-1", Name: "Electronics", IsActive: true}

	var updated *models.Category
	mockRepo.On("GetActiveByID", "cat-1").Return(category, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.Category")).Run(func(args mock.Arguments) {
		updated = args.Get(0).(*models.Category)
	}).Return(nil).Once()

	err := service.DeactivateCategory("cat-1")

	assert.NoError(t, err)
	assert.False(t, updated.IsActive)
	mockRepo.AssertExpectations(t)

	// Deactivating an unknown (or already inactive) category is a not-found
	mockRepo.On("GetActiveByID", "ghost").Return(nil, repositories.ErrNotFound).Once()
	err = service.DeactivateCategory("ghost")
	assert.ErrorIs(t, err, services.ErrCategoryNotFound)
	mockRepo.AssertExpectations(t)
}
