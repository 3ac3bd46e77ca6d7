package content

import (
	"time"

	"github.com/google/uuid"
)

// PostMetrics is one day of traffic/engagement/search telemetry for a post.
// Rows are append-only; the scoring core reads and never mutates them.
// Search fields are pointers: absence means the search console had no data for
// that day, which is different from zero.
type PostMetrics struct {
	ID uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`

	PostID uuid.UUID `gorm:"type:uuid;not null;index:idx_post_metrics_day,unique" json:"post_id"`
	Post   *Post     `gorm:"constraint:OnDelete:CASCADE;foreignKey:PostID;references:ID" json:"post,omitempty"`
	Day    time.Time `gorm:"column:day;not null;index:idx_post_metrics_day,unique" json:"day"`

	PageViews      int     `gorm:"column:page_views;not null" json:"page_views"`
	AvgTimeOnPage  float64 `gorm:"column:avg_time_on_page;not null" json:"avg_time_on_page"`
	BounceRate     float64 `gorm:"column:bounce_rate;not null" json:"bounce_rate"`
	ScrollDepthAvg float64 `gorm:"column:scroll_depth_avg;not null" json:"scroll_depth_avg"`

	SearchImpressions *int     `gorm:"column:search_impressions" json:"search_impressions,omitempty"`
	SearchClicks      *int     `gorm:"column:search_clicks" json:"search_clicks,omitempty"`
	AvgPosition       *float64 `gorm:"column:avg_position" json:"avg_position,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (PostMetrics) TableName() string { return "post_metrics" }
