package repository

import (
	"time"

	"onlinedaku/internal/domain/analytics/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnalyticsRepository interface {
	IncrementEvent(dealID, event string, day time.Time) error
	GetByDealID(dealID string) (*model.DealAnalytics, error)
	GetDailyStats(dealID string, from, to time.Time) ([]model.DealDailyStat, error)
	GetTopDeals(limit int) ([]model.DealAnalytics, error)
}

type analyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// eventColumn 事件对应的计数列
func eventColumn(event string) string {
	switch event {
	case model.EventView:
		return "views"
	case model.EventClick:
		return "clicks"
	case model.EventConversion:
		return "conversions"
	}
	return ""
}

// IncrementEvent 单事务内原子递增累计与按日计数, 并发安全依赖唯一键上的 upsert
func (r *analyticsRepository) IncrementEvent(dealID, event string, day time.Time) error {
	column := eventColumn(event)
	if column == "" {
		return gorm.ErrInvalidData
	}
	statDate := day.Truncate(24 * time.Hour)

	return r.db.Transaction(func(tx *gorm.DB) error {
		total := model.DealAnalytics{DealID: dealID}
		switch column {
		case "views":
			total.Views = 1
		case "clicks":
			total.Clicks = 1
		case "conversions":
			total.Conversions = 1
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "deal_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				column:       gorm.Expr("deal_analytics."+column+" + 1"),
				"updated_at": time.Now(),
			}),
		}).Create(&total).Error; err != nil {
			return err
		}

		daily := model.DealDailyStat{DealID: dealID, StatDate: statDate}
		switch column {
		case "views":
			daily.Views = 1
		case "clicks":
			daily.Clicks = 1
		case "conversions":
			daily.Conversions = 1
		}

		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "deal_id"}, {Name: "stat_date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				column:       gorm.Expr("deal_daily_stats."+column+" + 1"),
				"updated_at": time.Now(),
			}),
		}).Create(&daily).Error
	})
}

func (r *analyticsRepository) GetByDealID(dealID string) (*model.DealAnalytics, error) {
	var analytics model.DealAnalytics
	if err := r.db.Where("deal_id = ?", dealID).First(&analytics).Error; err != nil {
		return nil, err
	}
	return &analytics, nil
}

func (r *analyticsRepository) GetDailyStats(dealID string, from, to time.Time) ([]model.DealDailyStat, error) {
	var stats []model.DealDailyStat
	err := r.db.Where("deal_id = ? AND stat_date >= ? AND stat_date <= ?", dealID, from, to).
		Order("stat_date asc").
		Find(&stats).Error
	return stats, err
}

func (r *analyticsRepository) GetTopDeals(limit int) ([]model.DealAnalytics, error) {
	var list []model.DealAnalytics
	err := r.db.Order("views desc").Limit(limit).Find(&list).Error
	return list, err
}
