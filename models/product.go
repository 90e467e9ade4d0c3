package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ImageList stores product image URLs as a JSONB array.
type ImageList []string

func (l *ImageList) Scan(value interface{}) error {
	if value == nil {
		*l = make(ImageList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan ImageList")
	}
	return json.Unmarshal(bytes, l)
}

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l)
}

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name          string    `json:"name" gorm:"not null;index"`
	Description   string    `json:"description" gorm:"not null"`
	Brand         string    `json:"brand,omitempty" gorm:"index"`
	Price         float64   `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	DiscountPrice *float64  `json:"discount_price,omitempty" gorm:"type:numeric(12,2)"`
	CategoryID    uuid.UUID `json:"category_id" gorm:"type:uuid;not null;index:idx_products_category"`
	CategoryName  *string   `json:"category,omitempty" gorm:"-"` // Computed field
	Category      *Category `json:"-" gorm:"foreignKey:CategoryID;references:ID"`
	Images        ImageList `json:"images" gorm:"type:jsonb;not null;default:'[]'"`
	Rating        float64   `json:"rating" gorm:"type:numeric(3,2);default:0;check:rating >= 0 AND rating <= 5"`
	NumReviews    int       `json:"num_reviews" gorm:"default:0"`
	Stock         int       `json:"stock" gorm:"default:0;check:stock >= 0"`
	IsActive      bool      `json:"is_active" gorm:"default:true;index"`
	Views         int       `json:"views,omitempty" gorm:"default:0;index:idx_products_views,sort:desc"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// AfterFind hook - populate CategoryName from relationship
func (p *Product) AfterFind(tx *gorm.DB) error {
	if p.Category != nil {
		p.CategoryName = &p.Category.Name
	}
	return nil
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// EffectivePrice returns the discounted price when one is set.
func (p *Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

// InStock reports whether at least one unit is available.
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type ProductRequest struct {
	Name          string    `json:"name" binding:"required" example:"Canvas Tote"`
	Description   string    `json:"description" binding:"required" example:"Everyday canvas tote bag"`
	Brand         string    `json:"brand" example:"Velora"`
	Price         float64   `json:"price" binding:"required,min=0" example:"49.99"`
	DiscountPrice *float64  `json:"discount_price" binding:"omitempty,min=0"`
	CategoryID    uuid.UUID `json:"category_id" binding:"required"`
	Images        []string  `json:"images" binding:"required"`
	Stock         int       `json:"stock" binding:"min=0" example:"120"`
	IsActive      *bool     `json:"is_active"`
}

type UpdateProductRequest struct {
	Name          *string    `json:"name"`
	Description   *string    `json:"description"`
	Brand         *string    `json:"brand"`
	Price         *float64   `json:"price" binding:"omitempty,min=0"`
	DiscountPrice *float64   `json:"discount_price" binding:"omitempty,min=0"`
	CategoryID    *uuid.UUID `json:"category_id"`
	Images        *[]string  `json:"images"`
	Stock         *int       `json:"stock" binding:"omitempty,min=0"`
	IsActive      *bool      `json:"is_active"`
}
