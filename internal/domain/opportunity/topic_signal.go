package opportunity

import (
	"time"

	"github.com/google/uuid"
)

// TopicSignal is one raw collector reading for a keyword, staged until the
// next scoring pass consumes it. Collectors append; the scorer reads the
// newest unprocessed row per keyword and marks the batch processed.
type TopicSignal struct {
	ID uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`

	Keyword string `gorm:"column:keyword;type:text;not null;index" json:"keyword"`

	RedditMentions        int     `gorm:"column:reddit_mentions;not null" json:"reddit_mentions"`
	RedditSentiment       float64 `gorm:"column:reddit_sentiment;not null" json:"reddit_sentiment"`
	TrendGrowth30d        float64 `gorm:"column:trend_growth_30d;not null" json:"trend_growth_30d"`
	SearchVolumeIndicator float64 `gorm:"column:search_volume_indicator;not null" json:"search_volume_indicator"`
	PAAQuestionCount      int     `gorm:"column:paa_question_count;not null" json:"paa_question_count"`
	CompetitorStrength    float64 `gorm:"column:competitor_strength;not null" json:"competitor_strength"`

	Processed   bool      `gorm:"column:processed;not null;index" json:"processed"`
	CollectedAt time.Time `gorm:"column:collected_at;not null" json:"collected_at"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (TopicSignal) TableName() string { return "topic_signal" }
