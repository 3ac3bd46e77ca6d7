package experiments

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ExperimentStatusRunning   = "running"
	ExperimentStatusConcluded = "concluded"
)

// Variant is one candidate value (title, CTA, ...) in a running experiment.
type Variant struct {
	ID          string `json:"id"`
	Value       string `json:"value"`
	Impressions int    `json:"impressions"`
	Clicks      int    `json:"clicks"`
	Conversions int    `json:"conversions"`
}

// ConversionRate is conversions/impressions, 0 when the variant has no traffic.
func (v Variant) ConversionRate() float64 {
	if v.Impressions <= 0 {
		return 0
	}
	return float64(v.Conversions) / float64(v.Impressions)
}

// PostExperiment is one running or concluded A/B(/C...) test for a post.
// Gates are fixed at creation. Concluding is a one-time terminal transition;
// callers must check status before re-evaluating so double-conclude stays a
// no-op.
type PostExperiment struct {
	ID uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`

	PostID uuid.UUID `gorm:"type:uuid;not null;index" json:"post_id"`
	Field  string    `gorm:"column:field;type:text;not null" json:"field"`

	Variants datatypes.JSONSlice[Variant] `gorm:"type:jsonb;column:variants;not null" json:"variants"`

	Status   string `gorm:"column:status;type:text;not null;index" json:"status"`
	WinnerID string `gorm:"column:winner_id;type:text" json:"winner_id,omitempty"`

	MinImpressionsPerVariant int     `gorm:"column:min_impressions_per_variant;not null" json:"min_impressions_per_variant"`
	ConfidenceThreshold      float64 `gorm:"column:confidence_threshold;not null" json:"confidence_threshold"`

	ConcludedAt *time.Time `gorm:"column:concluded_at" json:"concluded_at,omitempty"`
	CreatedAt   time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (PostExperiment) TableName() string { return "post_experiment" }
