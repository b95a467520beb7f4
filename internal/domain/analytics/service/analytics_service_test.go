package service

import (
	"errors"
	"testing"
	"time"

	"onlinedaku/internal/domain/analytics/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockAnalyticsRepository is a mock of AnalyticsRepository
type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) IncrementEvent(dealID, event string, day time.Time) error {
	args := m.Called(dealID, event, day)
	return args.Error(0)
}

func (m *MockAnalyticsRepository) GetByDealID(dealID string) (*model.DealAnalytics, error) {
	args := m.Called(dealID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DealAnalytics), args.Error(1)
}

func (m *MockAnalyticsRepository) GetDailyStats(dealID string, from, to time.Time) ([]model.DealDailyStat, error) {
	args := m.Called(dealID, from, to)
	return args.Get(0).([]model.DealDailyStat), args.Error(1)
}

func (m *MockAnalyticsRepository) GetTopDeals(limit int) ([]model.DealAnalytics, error) {
	args := m.Called(limit)
	return args.Get(0).([]model.DealAnalytics), args.Error(1)
}

func TestTrackEvent(t *testing.T) {
	t.Run("Valid events forwarded to repository", func(t *testing.T) {
		mockRepo := new(MockAnalyticsRepository)
		service := NewAnalyticsService(mockRepo)

		mockRepo.On("IncrementEvent", "deal-1", model.EventView, mock.AnythingOfType("time.Time")).Return(nil).Times(3)
		mockRepo.On("IncrementEvent", "deal-1", model.EventClick, mock.AnythingOfType("time.Time")).Return(nil).Once()

		for i := 0; i < 3; i++ {
			assert.NoError(t, service.TrackEvent("deal-1", "view"))
		}
		assert.NoError(t, service.TrackEvent("deal-1", "click"))

		mockRepo.AssertExpectations(t)
	})

	t.Run("Invalid event rejected before any write", func(t *testing.T) {
		mockRepo := new(MockAnalyticsRepository)
		service := NewAnalyticsService(mockRepo)

		err := service.TrackEvent("deal-1", "hover")

		assert.Error(t, err)
		assert.Equal(t, "invalid event type", err.Error())
		mockRepo.AssertNotCalled(t, "IncrementEvent")
	})

	t.Run("Repository error propagated", func(t *testing.T) {
		mockRepo := new(MockAnalyticsRepository)
		service := NewAnalyticsService(mockRepo)

		mockRepo.On("IncrementEvent", "deal-1", model.EventConversion, mock.AnythingOfType("time.Time")).
			Return(errors.New("db down"))

		err := service.TrackEvent("deal-1", "conversion")

		assert.Error(t, err)
	})
}

func TestGetDealStats(t *testing.T) {
	t.Run("Totals and daily merged", func(t *testing.T) {
		mockRepo := new(MockAnalyticsRepository)
		service := NewAnalyticsService(mockRepo)

		from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

		mockRepo.On("GetByDealID", "deal-1").Return(&model.DealAnalytics{
			DealID: "deal-1", Views: 3, Clicks: 1,
		}, nil)
		mockRepo.On("GetDailyStats", "deal-1", from, to).Return([]model.DealDailyStat{
			{DealID: "deal-1", StatDate: from, Views: 3, Clicks: 1},
		}, nil)

		stats, err := service.GetDealStats("deal-1", from, to)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), stats.Views)
		assert.Equal(t, int64(1), stats.Clicks)
		assert.Len(t, stats.Daily, 1)
	})

	t.Run("No totals yet still returns daily", func(t *testing.T) {
		mockRepo := new(MockAnalyticsRepository)
		service := NewAnalyticsService(mockRepo)

		from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

		mockRepo.On("GetByDealID", "deal-2").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("GetDailyStats", "deal-2", from, to).Return([]model.DealDailyStat{}, nil)

		stats, err := service.GetDealStats("deal-2", from, to)

		assert.NoError(t, err)
		assert.Equal(t, int64(0), stats.Views)
	})

	t.Run("Database failure is not reported as zero counters", func(t *testing.T) {
		mockRepo := new(MockAnalyticsRepository)
		service := NewAnalyticsService(mockRepo)

		from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

		mockRepo.On("GetByDealID", "deal-3").Return(nil, errors.New("connection refused"))

		stats, err := service.GetDealStats("deal-3", from, to)

		assert.Error(t, err)
		assert.Nil(t, stats)
		mockRepo.AssertNotCalled(t, "GetDailyStats", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGetTopDeals(t *testing.T) {
	t.Run("Out of range limit normalized", func(t *testing.T) {
		mockRepo := new(MockAnalyticsRepository)
		service := NewAnalyticsService(mockRepo)

		mockRepo.On("GetTopDeals", 10).Return([]model.DealAnalytics{}, nil)

		_, err := service.GetTopDeals(1000)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}
