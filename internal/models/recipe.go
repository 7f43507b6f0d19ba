package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recipe sources.
const (
	SourceAIPreset  = "ai_preset"
	SourceYouTube   = "youtube"
	SourceCommunity = "community"
)

// Recipe statuses. Only approved recipes are ever suggested.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Recipe is a persisted recipe row. Ingredients are free text (the
// suggestion scorer matches exclude terms as substrings against it) and
// Tags is a JSON-array-encoded string.
type Recipe struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
	Title         string         `gorm:"size:255;not null" json:"title"`
	ImageURL      *string        `gorm:"size:512" json:"image_url"`
	PrepTime      int            `gorm:"not null;default:0" json:"prep_time"`
	Servings      int            `gorm:"not null;default:1" json:"servings"`
	Calories      float64        `gorm:"type:float" json:"calories"`
	Ingredients   string         `gorm:"type:text;not null" json:"ingredients"`
	Tags          string         `gorm:"type:text;not null;default:'[]'" json:"tags"`
	Source        string         `gorm:"size:20;not null;index" json:"source"`
	TargetProfile string         `gorm:"size:30;index" json:"target_profile"`
	Status        string         `gorm:"size:20;not null;index" json:"status"`
	AverageRating float64        `gorm:"not null;default:0" json:"average_rating"`
	RatingsCount  int            `gorm:"not null;default:0" json:"ratings_count"`
	AuthorID      *uuid.UUID     `gorm:"type:uuid" json:"author_id"`
	Author        *User          `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// RecipeRating is one user's rating of one recipe. The aggregate
// (AverageRating, RatingsCount) on Recipe is recomputed from these rows.
type RecipeRating struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_recipe_user" json:"recipe_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_recipe_user" json:"user_id"`
	Stars     int       `gorm:"not null" json:"stars"`
}

func (r *RecipeRating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
