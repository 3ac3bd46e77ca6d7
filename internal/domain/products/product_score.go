package products

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProductScore is keyed 1:1 by product and always replaced wholesale on
// recompute; it is never partially written.
type ProductScore struct {
	ID uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`

	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"product_id"`
	Product   *Product  `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProductID;references:ID" json:"product,omitempty"`

	OverallScore    float64 `gorm:"column:overall_score;not null" json:"overall_score"`
	BeneficialScore float64 `gorm:"column:beneficial_score;not null" json:"beneficial_score"`
	// HarmfulPenalty is <= 0; the overall score is still clamped to [0,100].
	HarmfulPenalty     float64 `gorm:"column:harmful_penalty;not null" json:"harmful_penalty"`
	ConcentrationScore float64 `gorm:"column:concentration_score;not null" json:"concentration_score"`
	EvidenceScore      float64 `gorm:"column:evidence_score;not null" json:"evidence_score"`

	SkinTypeCompat datatypes.JSONType[map[string]float64] `gorm:"type:jsonb;column:skin_type_compat" json:"skin_type_compat"`

	Pros    datatypes.JSONSlice[string] `gorm:"type:jsonb;column:pros" json:"pros"`
	Cons    datatypes.JSONSlice[string] `gorm:"type:jsonb;column:cons" json:"cons"`
	BestFor datatypes.JSONSlice[string] `gorm:"type:jsonb;column:best_for" json:"best_for"`
	AvoidIf datatypes.JSONSlice[string] `gorm:"type:jsonb;column:avoid_if" json:"avoid_if"`

	MatchedIngredients int `gorm:"column:matched_ingredients;not null" json:"matched_ingredients"`
	TotalIngredients   int `gorm:"column:total_ingredients;not null" json:"total_ingredients"`

	LastCalculatedAt time.Time `gorm:"column:last_calculated_at;not null" json:"last_calculated_at"`
	CreatedAt        time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt        time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (ProductScore) TableName() string { return "product_score" }
