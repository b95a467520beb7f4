package service

import (
	"errors"
	"time"

	"onlinedaku/internal/domain/analytics/model"
	"onlinedaku/internal/domain/analytics/repository"
	"onlinedaku/pkg/metrics"

	"gorm.io/gorm"
)

// DealStats 单个优惠的统计概览
type DealStats struct {
	DealID      string                `json:"dealId"`
	Views       int64                 `json:"views"`
	Clicks      int64                 `json:"clicks"`
	Conversions int64                 `json:"conversions"`
	Daily       []model.DealDailyStat `json:"daily"`
}

type AnalyticsService interface {
	TrackEvent(dealID, event string) error
	GetDealStats(dealID string, from, to time.Time) (*DealStats, error)
	GetTopDeals(limit int) ([]model.DealAnalytics, error)
}

type analyticsService struct {
	repo repository.AnalyticsRepository
}

func NewAnalyticsService(repo repository.AnalyticsRepository) AnalyticsService {
	return &analyticsService{repo: repo}
}

func (s *analyticsService) TrackEvent(dealID, event string) error {
	if !model.ValidEvent(event) {
		return errors.New("invalid event type")
	}

	if err := s.repo.IncrementEvent(dealID, event, time.Now()); err != nil {
		return err
	}

	metrics.Default().RecordAnalyticsEvent(event)
	return nil
}

func (s *analyticsService) GetDealStats(dealID string, from, to time.Time) (*DealStats, error) {
	stats := &DealStats{DealID: dealID}

	// 从未打点的优惠没有累计行, 计数保持为零; 其他错误原样上抛
	analytics, err := s.repo.GetByDealID(dealID)
	switch {
	case err == nil:
		stats.Views = analytics.Views
		stats.Clicks = analytics.Clicks
		stats.Conversions = analytics.Conversions
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	daily, err := s.repo.GetDailyStats(dealID, from, to)
	if err != nil {
		return nil, err
	}
	stats.Daily = daily

	return stats, nil
}

func (s *analyticsService) GetTopDeals(limit int) ([]model.DealAnalytics, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return s.repo.GetTopDeals(limit)
}
