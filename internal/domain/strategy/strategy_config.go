package strategy

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SuccessWeights combine the three performance sub-scores into a success score.
// They should sum to 1.0; a drifting sum is tolerated with a warning, never
// rejected.
type SuccessWeights struct {
	Engagement   float64 `json:"engagement"`
	SEO          float64 `json:"seo"`
	Monetization float64 `json:"monetization"`
}

func (w SuccessWeights) Sum() float64 {
	return w.Engagement + w.SEO + w.Monetization
}

// ContentRules are generation-time parameters the tuner is allowed to adjust.
type ContentRules struct {
	IntroMaxWords   int  `json:"intro_max_words"`
	MinWordCount    int  `json:"min_word_count"`
	RequireSources  bool `json:"require_sources"`
	MaxAffiliateCTA int  `json:"max_affiliate_cta"`
}

// StrategyConfig is an append-only sequence of immutable snapshots. The current
// config is always the row with the highest version; rows are never edited in
// place, so concurrent readers need no locking.
type StrategyConfig struct {
	ID uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`

	Version int `gorm:"column:version;not null;uniqueIndex" json:"version"`

	Weights datatypes.JSONType[SuccessWeights] `gorm:"type:jsonb;column:weights;not null" json:"weights"`

	// TopicWeights is an open string-keyed map; unknown keys are valid and a
	// missing key reads as the neutral weight 1.0.
	TopicWeights datatypes.JSONType[map[string]float64] `gorm:"type:jsonb;column:topic_weights" json:"topic_weights"`

	ContentRules datatypes.JSONType[ContentRules] `gorm:"type:jsonb;column:content_rules" json:"content_rules"`

	AutoPublish      bool    `gorm:"column:auto_publish;not null" json:"auto_publish"`
	MaxPostsPerDay   int     `gorm:"column:max_posts_per_day;not null" json:"max_posts_per_day"`
	RefreshThreshold float64 `gorm:"column:refresh_threshold;not null" json:"refresh_threshold"`

	CreatedBy string    `gorm:"column:created_by;type:text;not null" json:"created_by"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (StrategyConfig) TableName() string { return "strategy_config" }

// TopicWeight reads a topic preference, defaulting missing keys to neutral.
func (c *StrategyConfig) TopicWeight(topic string) float64 {
	m := c.TopicWeights.Data()
	if m == nil {
		return 1.0
	}
	w, ok := m[topic]
	if !ok {
		return 1.0
	}
	return w
}
