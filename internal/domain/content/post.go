package content

import (
	"time"

	"github.com/google/uuid"
)

const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
	PostStatusArchived  = "archived"
)

type Post struct {
	ID uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`

	Title    string `gorm:"column:title;type:text;not null" json:"title"`
	Slug     string `gorm:"column:slug;type:text;not null;uniqueIndex" json:"slug"`
	Category string `gorm:"column:category;type:text;not null;index" json:"category"`

	WordCount int    `gorm:"column:word_count;not null" json:"word_count"`
	Status    string `gorm:"column:status;type:text;not null;index" json:"status"`

	PublishedAt *time.Time `gorm:"column:published_at" json:"published_at,omitempty"`
	CreatedAt   time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (Post) TableName() string { return "post" }
