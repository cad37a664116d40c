package handlers

import (
	"errors"

	"katalog/internal/models"
	"katalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service  *services.CategoryService
	validate *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the category routes with the Fiber app. The
// deactivation route requires authentication; the rest are public.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Post("/", h.HandleCreateCategory)
	categoryRoutes.Get("/", h.HandleGetCategories)
	categoryRoutes.Get("/:id", h.HandleGetCategoryByID)
	categoryRoutes.Delete("/:id", authRequired, h.HandleDeactivateCategory)
}

// HandleCreateCategory creates a new category.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var req models.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		logrus.Debugf("Error parsing create category request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErrorMap(err),
		})
	}

	category, err := h.service.CreateCategory(req)
	if err != nil {
		if errors.Is(err, services.ErrCategoryExists) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		logrus.Errorf("Error creating category: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create category",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}

// HandleGetCategories retrieves all active categories, name ascending.
func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAllCategories()
	if err != nil {
		logrus.Errorf("Error getting all categories: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve categories",
			"error":   err.Error(),
		})
	}
	return c.JSON(categories)
}

// HandleGetCategoryByID retrieves a single active category by its ID.
func (h *CategoryHandler) HandleGetCategoryByID(c *fiber.Ctx) error {
	categoryID := c.Params("id")
	category, err := h.service.GetCategoryByID(categoryID)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		logrus.Errorf("Error getting category by ID %s: %v", categoryID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve category",
			"error":   err.Error(),
		})
	}
	return c.JSON(category)
}

// HandleDeactivateCategory soft-deletes a category.
func (h *CategoryHandler) HandleDeactivateCategory(c *fiber.Ctx) error {
	categoryID := c.Params("id")
	if err := h.service.DeactivateCategory(categoryID); err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		logrus.Errorf("Error deactivating category %s: %v", categoryID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not deactivate category",
			"error":   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
