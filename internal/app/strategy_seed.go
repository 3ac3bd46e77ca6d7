package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"

	types "github.com/yungbote/glowstack-backend/internal/domain"
)

type strategySeedFile struct {
	Weights struct {
		Engagement   float64 `yaml:"engagement"`
		SEO          float64 `yaml:"seo"`
		Monetization float64 `yaml:"monetization"`
	} `yaml:"weights"`

	TopicWeights map[string]float64 `yaml:"topic_weights"`

	ContentRules struct {
		IntroMaxWords   int  `yaml:"intro_max_words"`
		MinWordCount    int  `yaml:"min_word_count"`
		RequireSources  bool `yaml:"require_sources"`
		MaxAffiliateCTA int  `yaml:"max_affiliate_cta"`
	} `yaml:"content_rules"`

	AutoPublish      bool    `yaml:"auto_publish"`
	MaxPostsPerDay   int     `yaml:"max_posts_per_day"`
	RefreshThreshold float64 `yaml:"refresh_threshold"`
}

// LoadStrategySeed reads the bundled default strategy config. The result is
// published as version 1 only when the table is empty.
func LoadStrategySeed(path string) (*types.StrategyConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read strategy seed: %w", err)
	}
	var f strategySeedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse strategy seed: %w", err)
	}

	cfg := &types.StrategyConfig{
		Weights: datatypes.NewJSONType(types.SuccessWeights{
			Engagement:   f.Weights.Engagement,
			SEO:          f.Weights.SEO,
			Monetization: f.Weights.Monetization,
		}),
		TopicWeights: datatypes.NewJSONType(f.TopicWeights),
		ContentRules: datatypes.NewJSONType(types.ContentRules{
			IntroMaxWords:   f.ContentRules.IntroMaxWords,
			MinWordCount:    f.ContentRules.MinWordCount,
			RequireSources:  f.ContentRules.RequireSources,
			MaxAffiliateCTA: f.ContentRules.MaxAffiliateCTA,
		}),
		AutoPublish:      f.AutoPublish,
		MaxPostsPerDay:   f.MaxPostsPerDay,
		RefreshThreshold: f.RefreshThreshold,
		CreatedBy:        "seed",
	}
	return cfg, nil
}
