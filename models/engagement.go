package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// Visitor Engagement Models (FAQs, newsletter, applications)
// ═══════════════════════════════════════════════════════════

// FAQ is a question/answer pair shown on the marketing pages.
type FAQ struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Question  string    `json:"question" gorm:"not null"`
	Answer    string    `json:"answer" gorm:"not null"`
	SortOrder int       `json:"sort_order" gorm:"default:0;index"`
	IsActive  bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (f *FAQ) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (FAQ) TableName() string {
	return "faqs"
}

// NewsletterSubscriber is a deduplicated email signup.
type NewsletterSubscriber struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	SubscribedAt time.Time `json:"subscribed_at" gorm:"autoCreateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (s *NewsletterSubscriber) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (NewsletterSubscriber) TableName() string {
	return "newsletter_subscribers"
}

// ApplicationType is the closed set of application forms the site accepts.
type ApplicationType string

const (
	ApplicationDeveloper ApplicationType = "developer"
	ApplicationInvestor  ApplicationType = "investor"
)

// ValidApplicationType reports whether t names a known form.
func ValidApplicationType(t ApplicationType) bool {
	return t == ApplicationDeveloper || t == ApplicationInvestor
}

// Application is a developer or investor application submitted through the
// marketing site. Details holds the form-specific extra fields as JSONB.
type Application struct {
	ID        uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey"`
	Type      ApplicationType   `json:"type" gorm:"type:varchar(20);not null;index;check:type IN ('developer', 'investor')"`
	Name      string            `json:"name" gorm:"not null"`
	Email     string            `json:"email" gorm:"not null;index"`
	Phone     string            `json:"phone"`
	Message   string            `json:"message" gorm:"type:text"`
	Details   datatypes.JSONMap `json:"details" gorm:"type:jsonb"`
	Status    string            `json:"status" gorm:"type:varchar(20);default:'pending';check:status IN ('pending', 'reviewed', 'accepted', 'rejected')"`
	CreatedAt time.Time         `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time         `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.Must(uuid.NewV7())
	}
	if a.Status == "" {
		a.Status = "pending"
	}
	return nil
}

func (Application) TableName() string {
	return "applications"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type FAQRequest struct {
	Question  string `json:"question" binding:"required"`
	Answer    string `json:"answer" binding:"required"`
	SortOrder int    `json:"sort_order"`
}

type UpdateFAQRequest struct {
	Question  *string `json:"question"`
	Answer    *string `json:"answer"`
	SortOrder *int    `json:"sort_order"`
	IsActive  *bool   `json:"is_active"`
}

type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ApplicationRequest struct {
	Type    ApplicationType `json:"type" binding:"required"`
	Name    string          `json:"name" binding:"required"`
	Email   string          `json:"email" binding:"required,email"`
	Phone   string          `json:"phone"`
	Message string          `json:"message"`
	Details map[string]any  `json:"details"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending reviewed accepted rejected"`
}
