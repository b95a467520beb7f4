package model

import (
	"time"

	baseModel "onlinedaku/pkg/model"
)

// 优惠券类型
const (
	TypeCode = "Code" // 输入码
	TypeDeal = "Deal" // 直达链接
)

// Coupon 优惠券，以兑换码为主要载体
type Coupon struct {
	baseModel.BaseModel
	OfferID     string    `gorm:"unique;not null" json:"offerId"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Code        string    `json:"code"`
	Type        string    `gorm:"type:varchar(20);default:'Code'" json:"type"`
	StoreName   string    `gorm:"index" json:"store"`
	CategoryID  *string   `gorm:"type:uuid;index" json:"categoryId,omitempty"`
	Status      string    `gorm:"type:varchar(20);default:'active'" json:"status"`
	Rating      float64   `json:"rating"`
	Label       string    `json:"label"`
	Link        string    `json:"link"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `gorm:"index" json:"endDate"`
	IsActive    bool      `gorm:"default:true" json:"isActive"`
	CreatedBy   string    `gorm:"type:uuid" json:"createdBy"`
	UpdatedBy   string    `gorm:"type:uuid" json:"updatedBy"`
}
