package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// Marketing Content Models
// ═══════════════════════════════════════════════════════════

// SectionType identifies a curated product section. The set is closed: URL
// keys map onto it through ParseSectionType and unknown keys are rejected at
// the route boundary instead of falling through to a table scan.
type SectionType string

const (
	SectionBestSellers SectionType = "best_sellers"
	SectionNewArrivals SectionType = "new_arrivals"
	SectionTrending    SectionType = "trending"
)

var sectionKeys = map[string]SectionType{
	"best-sellers": SectionBestSellers,
	"new-arrivals": SectionNewArrivals,
	"trending":     SectionTrending,
}

// ParseSectionType maps a URL key ("best-sellers") to its SectionType.
func ParseSectionType(key string) (SectionType, bool) {
	section, ok := sectionKeys[key]
	return section, ok
}

// SectionEntry pins a product into a curated section at a sort position.
type SectionEntry struct {
	ID        uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	Section   SectionType `json:"section" gorm:"type:varchar(30);not null;index;check:section IN ('best_sellers', 'new_arrivals', 'trending')"`
	ProductID uuid.UUID   `json:"product_id" gorm:"type:uuid;not null"`
	Product   *Product    `json:"product,omitempty" gorm:"foreignKey:ProductID;references:ID"`
	SortOrder int         `json:"sort_order" gorm:"default:0;index"`
	IsActive  bool        `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (e *SectionEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (SectionEntry) TableName() string {
	return "section_entries"
}

// HeroBanner is a homepage hero slide with an optional call to action.
type HeroBanner struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Subtitle  string    `json:"subtitle"`
	ImageURL  string    `json:"image_url" gorm:"type:text;not null"` // Cloudinary URL
	CTALabel  string    `json:"cta_label"`
	CTAURL    string    `json:"cta_url" gorm:"type:text"`
	SortOrder int       `json:"sort_order" gorm:"default:0;index"`
	IsActive  bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (b *HeroBanner) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (HeroBanner) TableName() string {
	return "hero_banners"
}

// SpecialDeal promotes a product at a deal price until EndsAt.
type SpecialDeal struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID  `json:"product_id" gorm:"type:uuid;not null"`
	Product   *Product   `json:"product,omitempty" gorm:"foreignKey:ProductID;references:ID"`
	DealPrice float64    `json:"deal_price" gorm:"type:numeric(12,2);not null;check:deal_price >= 0"`
	ImageURL  string     `json:"image_url" gorm:"type:text"` // Cloudinary URL
	EndsAt    *time.Time `json:"ends_at"`
	SortOrder int        `json:"sort_order" gorm:"default:0;index"`
	IsActive  bool       `json:"is_active" gorm:"default:true;index"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (d *SpecialDeal) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (SpecialDeal) TableName() string {
	return "special_deals"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type SectionEntryRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	SortOrder int       `json:"sort_order"`
	IsActive  *bool     `json:"is_active"`
}

type UpdateSectionEntryRequest struct {
	SortOrder *int  `json:"sort_order"`
	IsActive  *bool `json:"is_active"`
}

// Hero banners and special deals are created via multipart forms so an image
// file can ride along; the form tags drive gin's ShouldBind.

type HeroBannerRequest struct {
	Title     string `form:"title" binding:"required"`
	Subtitle  string `form:"subtitle"`
	CTALabel  string `form:"cta_label"`
	CTAURL    string `form:"cta_url"`
	SortOrder int    `form:"sort_order"`
}

type UpdateHeroBannerRequest struct {
	Title     *string `form:"title"`
	Subtitle  *string `form:"subtitle"`
	CTALabel  *string `form:"cta_label"`
	CTAURL    *string `form:"cta_url"`
	SortOrder *int    `form:"sort_order"`
	IsActive  *bool   `form:"is_active"`
}

type SpecialDealRequest struct {
	ProductID uuid.UUID  `form:"product_id" binding:"required"`
	DealPrice float64    `form:"deal_price" binding:"required,min=0"`
	EndsAt    *time.Time `form:"ends_at" time_format:"2006-01-02T15:04:05Z07:00"`
	SortOrder int        `form:"sort_order"`
}

type UpdateSpecialDealRequest struct {
	DealPrice *float64   `form:"deal_price" binding:"omitempty,min=0"`
	EndsAt    *time.Time `form:"ends_at" time_format:"2006-01-02T15:04:05Z07:00"`
	SortOrder *int       `form:"sort_order"`
	IsActive  *bool      `form:"is_active"`
}
