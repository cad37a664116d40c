package models

import "time"

// Category groups products. A category can hold zero or more products;
// deactivating one hides it from listings without touching its products.
type Category struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" gorm:"uniqueIndex;type:varchar(100);not null"`
	Description *string   `json:"description" gorm:"type:text"`
	Color       *string   `json:"color" gorm:"type:varchar(50)"`
	IsActive    bool      `json:"isActive" gorm:"not null"`
	Icon        *string   `json:"icon"`
	Products    []Product `json:"-" gorm:"foreignKey:CategoryID"`
	Created     time.Time `json:"created" gorm:"column:created_at;autoCreateTime"`
	Modified    time.Time `json:"modified" gorm:"column:modified_at;autoUpdateTime"`
}

// CreateCategoryRequest is the payload accepted when creating a category.
// IsActive is a pointer so an explicit false survives the "default true" rule.
type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty"`
	Color       *string `json:"color" validate:"omitempty,min=3,max=50"`
	IsActive    *bool   `json:"isActive"`
	Icon        *string `json:"icon" validate:"omitempty"`
}

// CategoryResponse is the shape returned to clients.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Color       *string   `json:"color"`
	IsActive    bool      `json:"isActive"`
	Icon        *string   `json:"icon"`
	Created     time.Time `json:"created"`
	Modified    time.Time `json:"modified"`
}

// ToResponse projects the category onto its response contract.
func (c *Category) ToResponse() CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Color:       c.Color,
		IsActive:    c.IsActive,
		Icon:        c.Icon,
		Created:     c.Created,
		Modified:    c.Modified,
	}
}
