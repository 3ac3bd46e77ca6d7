package opportunity

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActionCreateNew      = "create_new"
	ActionUpdateExisting = "update_existing"
	ActionIgnore         = "ignore"
)

const (
	StatusPending   = "pending"
	StatusActioned  = "actioned"
	StatusDismissed = "dismissed"
)

// TopicOpportunity is keyed by keyword and upserted on each recompute pass.
// Keywords whose score falls below the global minimum are dropped upstream and
// never reach this table.
type TopicOpportunity struct {
	ID uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`

	Keyword string `gorm:"column:keyword;type:text;not null;uniqueIndex" json:"keyword"`

	Score int `gorm:"column:score;not null;index" json:"score"`

	RedditMentions        int     `gorm:"column:reddit_mentions;not null" json:"reddit_mentions"`
	RedditSentiment       float64 `gorm:"column:reddit_sentiment;not null" json:"reddit_sentiment"`
	TrendGrowth30d        float64 `gorm:"column:trend_growth_30d;not null" json:"trend_growth_30d"`
	SearchVolumeIndicator float64 `gorm:"column:search_volume_indicator;not null" json:"search_volume_indicator"`
	PAAQuestionCount      int     `gorm:"column:paa_question_count;not null" json:"paa_question_count"`
	CompetitorStrength    float64 `gorm:"column:competitor_strength;not null" json:"competitor_strength"`

	RecommendedAction string `gorm:"column:recommended_action;type:text;not null" json:"recommended_action"`
	Status            string `gorm:"column:status;type:text;not null;index" json:"status"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (TopicOpportunity) TableName() string { return "topic_opportunity" }
