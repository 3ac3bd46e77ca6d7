package content

import (
	"time"

	"github.com/google/uuid"
)

// PostRevenue is one day of affiliate monetization telemetry for a post.
// Append-only, like PostMetrics.
type PostRevenue struct {
	ID uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`

	PostID uuid.UUID `gorm:"type:uuid;not null;index:idx_post_revenue_day,unique" json:"post_id"`
	Post   *Post     `gorm:"constraint:OnDelete:CASCADE;foreignKey:PostID;references:ID" json:"post,omitempty"`
	Day    time.Time `gorm:"column:day;not null;index:idx_post_revenue_day,unique" json:"day"`

	AffiliateClicks int     `gorm:"column:affiliate_clicks;not null" json:"affiliate_clicks"`
	Conversions     int     `gorm:"column:conversions;not null" json:"conversions"`
	Revenue         float64 `gorm:"column:revenue;not null" json:"revenue"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (PostRevenue) TableName() string { return "post_revenue" }
