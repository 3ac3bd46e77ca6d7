package domain

import (
	"github.com/yungbote/glowstack-backend/internal/domain/catalog"
	"github.com/yungbote/glowstack-backend/internal/domain/content"
	"github.com/yungbote/glowstack-backend/internal/domain/experiments"
	"github.com/yungbote/glowstack-backend/internal/domain/opportunity"
	"github.com/yungbote/glowstack-backend/internal/domain/products"
	"github.com/yungbote/glowstack-backend/internal/domain/strategy"
)

type IngredientFact = catalog.IngredientFact

type Product = products.Product
type ProductScore = products.ProductScore

type Post = content.Post
type PostMetrics = content.PostMetrics
type PostRevenue = content.PostRevenue
type PostPerformance = content.PostPerformance

type StrategyConfig = strategy.StrategyConfig
type SuccessWeights = strategy.SuccessWeights
type ContentRules = strategy.ContentRules

type TopicOpportunity = opportunity.TopicOpportunity
type TopicSignal = opportunity.TopicSignal

type PostExperiment = experiments.PostExperiment
type Variant = experiments.Variant

const (
	CategoryActive       = catalog.CategoryActive
	CategoryEmollient    = catalog.CategoryEmollient
	CategoryFragrance    = catalog.CategoryFragrance
	CategoryPreservative = catalog.CategoryPreservative
	CategorySurfactant   = catalog.CategorySurfactant
	CategoryOther        = catalog.CategoryOther

	EvidenceStrong    = catalog.EvidenceStrong
	EvidenceModerate  = catalog.EvidenceModerate
	EvidenceLimited   = catalog.EvidenceLimited
	EvidenceAnecdotal = catalog.EvidenceAnecdotal

	PostStatusDraft     = content.PostStatusDraft
	PostStatusPublished = content.PostStatusPublished
	PostStatusArchived  = content.PostStatusArchived

	PerformanceWindow7d  = content.PerformanceWindow7d
	PerformanceWindow30d = content.PerformanceWindow30d
	PerformanceWindow90d = content.PerformanceWindow90d

	ActionCreateNew      = opportunity.ActionCreateNew
	ActionUpdateExisting = opportunity.ActionUpdateExisting
	ActionIgnore         = opportunity.ActionIgnore

	OpportunityStatusPending   = opportunity.StatusPending
	OpportunityStatusActioned  = opportunity.StatusActioned
	OpportunityStatusDismissed = opportunity.StatusDismissed

	ExperimentStatusRunning   = experiments.ExperimentStatusRunning
	ExperimentStatusConcluded = experiments.ExperimentStatusConcluded
)
