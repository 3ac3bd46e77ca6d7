package content

import (
	"time"

	"github.com/google/uuid"
)

const (
	PerformanceWindow7d  = "7d"
	PerformanceWindow30d = "30d"
	PerformanceWindow90d = "90d"
)

// PostPerformance is keyed by (post, window) and overwritten whenever fresh
// telemetry arrives for the same window.
type PostPerformance struct {
	ID uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`

	PostID uuid.UUID `gorm:"type:uuid;not null;index:idx_post_perf_window,unique" json:"post_id"`
	Post   *Post     `gorm:"constraint:OnDelete:CASCADE;foreignKey:PostID;references:ID" json:"post,omitempty"`
	Window string    `gorm:"column:window;type:text;not null;index:idx_post_perf_window,unique" json:"window"`

	EngagementScore   float64 `gorm:"column:engagement_score;not null" json:"engagement_score"`
	SEOScore          float64 `gorm:"column:seo_score;not null" json:"seo_score"`
	MonetizationScore float64 `gorm:"column:monetization_score;not null" json:"monetization_score"`
	SuccessScore      float64 `gorm:"column:success_score;not null;index" json:"success_score"`

	MainStrength string `gorm:"column:main_strength;type:text" json:"main_strength,omitempty"`
	MainWeakness string `gorm:"column:main_weakness;type:text" json:"main_weakness,omitempty"`

	CalculatedAt time.Time `gorm:"column:calculated_at;not null" json:"calculated_at"`
	CreatedAt    time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (PostPerformance) TableName() string { return "post_performance" }
