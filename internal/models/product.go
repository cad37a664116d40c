package models

import "time"

// Product represents a product in the catalog. Both the owning category and
// the creating user are optional references; neither is expanded in responses.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" gorm:"type:varchar(100);not null"`
	Description *string   `json:"description" gorm:"type:text"`
	Price       float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	Stock       int       `json:"stock" gorm:"not null"`
	IsActive    bool      `json:"isActive" gorm:"not null"`
	ImageURL    *string   `json:"imageUrl"`
	CreatedByID *string   `json:"-" gorm:"column:created_by;type:varchar(36)"`
	CreatedBy   *User     `json:"-" gorm:"foreignKey:CreatedByID"`
	CategoryID  *string   `json:"-" gorm:"column:category_id;type:varchar(36)"`
	Category    *Category `json:"-" gorm:"foreignKey:CategoryID"`
	Created     time.Time `json:"created" gorm:"column:created_at;autoCreateTime"`
	Modified    time.Time `json:"modified" gorm:"column:modified_at;autoUpdateTime"`
}

// CreateProductRequest is the payload accepted when creating a product.
// Price and Stock are pointers so a legitimate zero passes the required rule.
type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description *string  `json:"description" validate:"omitempty"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Stock       *int     `json:"stock" validate:"required,gte=0"`
	IsActive    *bool    `json:"isActive"`
	ImageURL    *string  `json:"imageUrl" validate:"omitempty"`
}

// ProductResponse is the shape returned to clients.
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	IsActive    bool      `json:"isActive"`
	ImageURL    *string   `json:"imageUrl"`
	Created     time.Time `json:"created"`
	Modified    time.Time `json:"modified"`
}

// ToResponse projects the product onto its response contract.
func (p *Product) ToResponse() ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		IsActive:    p.IsActive,
		ImageURL:    p.ImageURL,
		Created:     p.Created,
		Modified:    p.Modified,
	}
}
