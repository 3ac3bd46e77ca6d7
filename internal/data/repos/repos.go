package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/glowstack-backend/internal/data/repos/catalog"
	"github.com/yungbote/glowstack-backend/internal/data/repos/content"
	"github.com/yungbote/glowstack-backend/internal/data/repos/experiments"
	"github.com/yungbote/glowstack-backend/internal/data/repos/opportunity"
	"github.com/yungbote/glowstack-backend/internal/data/repos/products"
	"github.com/yungbote/glowstack-backend/internal/data/repos/strategy"
	"github.com/yungbote/glowstack-backend/internal/platform/logger"
)

type IngredientFactRepo = catalog.IngredientFactRepo

type ProductRepo = products.ProductRepo
type ProductScoreRepo = products.ProductScoreRepo

type PostRepo = content.PostRepo
type PostMetricsRepo = content.PostMetricsRepo
type PostRevenueRepo = content.PostRevenueRepo
type PostPerformanceRepo = content.PostPerformanceRepo

type StrategyConfigRepo = strategy.StrategyConfigRepo

type TopicOpportunityRepo = opportunity.TopicOpportunityRepo
type TopicSignalRepo = opportunity.TopicSignalRepo

type PostExperimentRepo = experiments.PostExperimentRepo

func NewIngredientFactRepo(db *gorm.DB, baseLog *logger.Logger) IngredientFactRepo {
	return catalog.NewIngredientFactRepo(db, baseLog)
}

func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
	return products.NewProductRepo(db, baseLog)
}
func NewProductScoreRepo(db *gorm.DB, baseLog *logger.Logger) ProductScoreRepo {
	return products.NewProductScoreRepo(db, baseLog)
}

func NewPostRepo(db *gorm.DB, baseLog *logger.Logger) PostRepo {
	return content.NewPostRepo(db, baseLog)
}
func NewPostMetricsRepo(db *gorm.DB, baseLog *logger.Logger) PostMetricsRepo {
	return content.NewPostMetricsRepo(db, baseLog)
}
func NewPostRevenueRepo(db *gorm.DB, baseLog *logger.Logger) PostRevenueRepo {
	return content.NewPostRevenueRepo(db, baseLog)
}
func NewPostPerformanceRepo(db *gorm.DB, baseLog *logger.Logger) PostPerformanceRepo {
	return content.NewPostPerformanceRepo(db, baseLog)
}

func NewStrategyConfigRepo(db *gorm.DB, baseLog *logger.Logger) StrategyConfigRepo {
	return strategy.NewStrategyConfigRepo(db, baseLog)
}

func NewTopicOpportunityRepo(db *gorm.DB, baseLog *logger.Logger) TopicOpportunityRepo {
	return opportunity.NewTopicOpportunityRepo(db, baseLog)
}
func NewTopicSignalRepo(db *gorm.DB, baseLog *logger.Logger) TopicSignalRepo {
	return opportunity.NewTopicSignalRepo(db, baseLog)
}

func NewPostExperimentRepo(db *gorm.DB, baseLog *logger.Logger) PostExperimentRepo {
	return experiments.NewPostExperimentRepo(db, baseLog)
}
