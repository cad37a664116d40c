package services_test

import (
	"testing"

	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) GetActiveByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetAllActive() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	// nil RabbitMQ client: creation must work without a broker
	service := services.NewProductService(mockRepo, nil)

	req := models.CreateProductRequest{
		Name:  "Widget",
		Price: floatPtr(9.99),
		Stock: intPtr(5),
	}

	var savedProduct *models.Product
	mockRepo.On("Create", mock.AnythingOfType("*models.Product")).Run(func(args mock.Arguments) {
		savedProduct = args.Get(0).(*models.Product)
	}).Return(nil).Once()

	resp, err := service.CreateProduct(req)

	assert.NoError(t, err)
	assert.Equal(t, "Widget", resp.Name)
	assert.Equal(t, 9.99, resp.Price)
	assert.Equal(t, 5, resp.Stock)
	assert.True(t, resp.IsActive, "isActive must default to true when omitted")
	assert.Nil(t, savedProduct.CategoryID)
	assert.Nil(t, savedProduct.CreatedByID)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_ZeroPriceAndStock(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	req := models.CreateProductRequest{
		Name:  "Freebie",
		Price: floatPtr(0),
		Stock: intPtr(0),
	}

	mockRepo.On("Create", mock.AnythingOfType("*models.Product")).Return(nil).Once()

	resp, err := service.CreateProduct(req)

	assert.NoError(t, err)
	assert.Equal(t, 0.0, resp.Price)
	assert.Equal(t, 0, resp.Stock)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	products := []models.Product{
		{ID: "1", Name: "Widget", Price: 9.99, Stock: 5, IsActive: true},
		{ID: "2", Name: "Gadget", Price: 19.99, Stock: 3, IsActive: true},
	}
	mockRepo.On("GetAllActive").Return(products, nil).Once()

	responses, err := service.GetAllProducts()

	assert.NoError(t, err)
	assert.Len(t, responses, 2)
	assert.Equal(t, "Widget", responses[0].Name)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	product := &models.Product{ID: "1", Name: "Widget", Price: 9.99, Stock: 5, IsActive: true}

	// Test successful retrieval
	mockRepo.On("GetActiveByID", "1").Return(product, nil).Once()
	resp, err := service.GetProductByID("1")
	assert.NoError(t, err)
	assert.Equal(t, "Widget", resp.Name)
	mockRepo.AssertExpectations(t)

	// Test product not found (missing or inactive)
	mockRepo.On("GetActiveByID", "99").Return(nil, repositories.ErrNotFound).Once()
	resp, err = service.GetProductByID("99")
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, services.ErrProductNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeactivateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	product := &models.Product{ID: "prod-1", Name: "Widget", IsActive: true}

	var updated *models.Product
	mockRepo.On("GetActiveByID", "prod-1").Return(product, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.Product")).Run(func(args mock.Arguments) {
		updated = args.Get(0).(*models.Product)
	}).Return(nil).Once()

	err := service.DeactivateProduct("prod-1")

	assert.NoError(t, err)
	assert.False(t, updated.IsActive)
	mockRepo.AssertExpectations(t)

	mockRepo.On("GetActiveByID", "ghost").Return(nil, repositories.ErrNotFound).Once()
	err = service.DeactivateProduct("ghost")
	assert.ErrorIs(t, err, services.ErrProductNotFound)
	mockRepo.AssertExpectations(t)
}
