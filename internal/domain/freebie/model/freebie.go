package model

import (
	"time"

	baseModel "onlinedaku/pkg/model"
)

// Freebie 免费领取活动，结构上等同去掉价格字段的 Deal
type Freebie struct {
	baseModel.BaseModel
	Title              string    `gorm:"not null" json:"title"`
	Description        string    `gorm:"type:text" json:"description"`
	StoreName          string    `gorm:"index" json:"store"`
	CategoryID         *string   `gorm:"type:uuid;index" json:"categoryId,omitempty"`
	Image              string    `json:"image"`
	Link               string    `json:"link"`
	TermsAndConditions string    `gorm:"type:text" json:"termsAndConditions"`
	StartDate          time.Time `gorm:"not null" json:"startDate"`
	EndDate            time.Time `gorm:"not null;index" json:"endDate"`
	IsActive           bool      `gorm:"default:true" json:"isActive"`
	CreatedBy          string    `gorm:"type:uuid" json:"createdBy"`
	UpdatedBy          string    `gorm:"type:uuid" json:"updatedBy"`
}

// IsLive 与 Deal 相同的上线窗口判定
func (f *Freebie) IsLive(now time.Time) bool {
	return f.IsActive && !now.Before(f.StartDate) && now.Before(f.EndDate)
}
