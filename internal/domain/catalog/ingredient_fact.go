package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	CategoryActive       = "active"
	CategoryEmollient    = "emollient"
	CategoryFragrance    = "fragrance"
	CategoryPreservative = "preservative"
	CategorySurfactant   = "surfactant"
	CategoryOther        = "other"
)

const (
	EvidenceStrong    = "strong"
	EvidenceModerate  = "moderate"
	EvidenceLimited   = "limited"
	EvidenceAnecdotal = "anecdotal"
)

// IngredientFact is immutable reference data maintained by an external curator.
// The scoring core only reads it.
type IngredientFact struct {
	ID uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`

	Name    string                      `gorm:"column:name;type:text;not null;uniqueIndex" json:"name"`
	Aliases datatypes.JSONSlice[string] `gorm:"type:jsonb;column:aliases" json:"aliases"`

	Category      string `gorm:"column:category;type:text;not null;index" json:"category"`
	SafetyRating  int    `gorm:"column:safety_rating;not null" json:"safety_rating"`
	EvidenceLevel string `gorm:"column:evidence_level;type:text;not null" json:"evidence_level"`

	Benefits datatypes.JSONSlice[string] `gorm:"type:jsonb;column:benefits" json:"benefits"`
	Concerns datatypes.JSONSlice[string] `gorm:"type:jsonb;column:concerns" json:"concerns"`

	BestFor  datatypes.JSONSlice[string] `gorm:"type:jsonb;column:best_for" json:"best_for"`
	AvoidFor datatypes.JSONSlice[string] `gorm:"type:jsonb;column:avoid_for" json:"avoid_for"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (IngredientFact) TableName() string { return "ingredient_fact" }
