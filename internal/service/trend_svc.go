package service

import (
	"context"
	"log"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/singleflight"

	"github.com/maituanhoang070/ytcreatorapp/internal/model"
	"github.com/maituanhoang070/ytcreatorapp/internal/store"
)

// defaultTrendScore is the aggregate score assigned to newly generated trends.
const defaultTrendScore = 100

// TrendAnalyzer is the external collaborator that suggests keywords and
// topics for a category.
type TrendAnalyzer interface {
	AnalyzeTrends(ctx context.Context, category string) (*model.TrendAnalysis, error)
}

// TrendService serves trend suggestions per category, generating and
// persisting them on first request.
type TrendService struct {
	store     store.Store
	analyzer  TrendAnalyzer
	cache     *CacheService
	fallbacks prometheus.Counter

	// group collapses concurrent first requests per category so the miss
	// path persists exactly one trend record.
	group singleflight.Group
}

// NewTrendService creates a TrendService. cache and fallbacks may be nil.
func NewTrendService(st store.Store, analyzer TrendAnalyzer, cache *CacheService, fallbacks prometheus.Counter) *TrendService {
	return &TrendService{store: st, analyzer: analyzer, cache: cache, fallbacks: fallbacks}
}

// GetOrCreate returns the trends stored for a category, sorted by score
// descending. On a store miss it asks the analyzer for suggestions and
// persists exactly one new trend record. Analyzer failures degrade to the
// deterministic fallback payload, so callers always receive usable data.
func (s *TrendService) GetOrCreate(ctx context.Context, category string) ([]model.Trend, error) {
	if s.cache != nil {
		cached, err := s.cache.GetTrends(ctx, category)
		if err != nil {
			log.Printf("cache: trend get error: %v", err)
		} else if len(cached) > 0 {
			return cached, nil
		}
	}

	v, err, _ := s.group.Do(category, func() (any, error) {
		return s.loadOrCreate(ctx, category)
	})
	if err != nil {
		return nil, err
	}
	trends := v.([]model.Trend)

	if s.cache != nil {
		if err := s.cache.SetTrends(ctx, category, trends); err != nil {
			log.Printf("cache: trend set error: %v", err)
		}
	}

	return trends, nil
}

func (s *TrendService) loadOrCreate(ctx context.Context, category string) ([]model.Trend, error) {
	trends, err := s.store.ListTrends(ctx, category)
	if err != nil {
		return nil, err
	}
	if len(trends) > 0 {
		return trends, nil
	}

	analysis, err := s.analyzer.AnalyzeTrends(ctx, category)
	if err != nil {
		log.Printf("trends: analysis failed for %q, using fallback: %v", category, err)
		if s.fallbacks != nil {
			s.fallbacks.Inc()
		}
		analysis = FallbackTrendAnalysis(category)
	}

	created, err := s.store.CreateTrend(ctx, model.NewTrend{
		Category: category,
		Keywords: analysis.Keywords,
		Topics:   analysis.Topics,
		Score:    defaultTrendScore,
	})
	if err != nil {
		return nil, err
	}
	return []model.Trend{*created}, nil
}
