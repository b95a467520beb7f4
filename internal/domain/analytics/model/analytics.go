package model

import (
	"time"

	"onlinedaku/pkg/model"
)

// 事件类型
const (
	EventView       = "view"
	EventClick      = "click"
	EventConversion = "conversion"
)

// ValidEvent 事件类型校验
func ValidEvent(event string) bool {
	switch event {
	case EventView, EventClick, EventConversion:
		return true
	}
	return false
}

// DealAnalytics 优惠累计统计
type DealAnalytics struct {
	model.BaseModel
	DealID      string `gorm:"type:uuid;uniqueIndex;not null" json:"dealId"`
	Views       int64  `gorm:"default:0" json:"views"`
	Clicks      int64  `gorm:"default:0" json:"clicks"`
	Conversions int64  `gorm:"default:0" json:"conversions"`
}

func (DealAnalytics) TableName() string {
	return "deal_analytics"
}

// DealDailyStat 优惠按日统计, (deal_id, stat_date) 唯一
type DealDailyStat struct {
	model.BaseModel
	DealID      string    `gorm:"type:uuid;uniqueIndex:idx_deal_stat_date;not null" json:"dealId"`
	StatDate    time.Time `gorm:"type:date;uniqueIndex:idx_deal_stat_date;not null" json:"statDate"`
	Views       int64     `gorm:"default:0" json:"views"`
	Clicks      int64     `gorm:"default:0" json:"clicks"`
	Conversions int64     `gorm:"default:0" json:"conversions"`
}

func (DealDailyStat) TableName() string {
	return "deal_daily_stats"
}
