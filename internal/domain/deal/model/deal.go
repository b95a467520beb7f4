package model

import (
	"time"

	baseModel "onlinedaku/pkg/model"
)

// 折扣类型
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// Deal 限时优惠
type Deal struct {
	baseModel.BaseModel
	Title         string    `gorm:"not null" json:"title"`
	Description   string    `gorm:"type:text" json:"description"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"originalPrice"`
	StoreName     string    `gorm:"index" json:"store"`
	CategoryID    *string   `gorm:"type:uuid;index" json:"categoryId,omitempty"`
	DiscountType  string    `gorm:"type:varchar(20)" json:"discountType"` // percentage, fixed
	DiscountValue float64   `json:"discountValue"`
	Image         string    `json:"image"`
	Link          string    `json:"link"`
	CouponCode    string    `json:"couponCode"`
	StartDate     time.Time `gorm:"not null;index" json:"startDate"`
	EndDate       time.Time `gorm:"not null;index" json:"endDate"`
	IsActive      bool      `gorm:"default:true" json:"isActive"`
	CreatedBy     string    `gorm:"type:uuid" json:"createdBy"`
	UpdatedBy     string    `gorm:"type:uuid" json:"updatedBy"`
}

// IsLive 上线判定：isActive 且 startDate <= now < endDate（endDate 不含）
func (d *Deal) IsLive(now time.Time) bool {
	return d.IsActive && !now.Before(d.StartDate) && now.Before(d.EndDate)
}
