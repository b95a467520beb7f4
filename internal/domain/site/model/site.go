package model

import (
	"time"

	"onlinedaku/pkg/model"
)

// Banner 首页横幅
type Banner struct {
	model.BaseModel
	Title        string     `gorm:"size:255;not null" json:"title"`
	Image        string     `gorm:"size:500;not null" json:"image"`
	Link         string     `gorm:"size:500" json:"link"`
	Position     string     `gorm:"size:50;default:'home_top'" json:"position"`
	DisplayOrder int        `gorm:"default:0" json:"displayOrder"`
	IsActive     bool       `gorm:"default:true" json:"isActive"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
}

func (Banner) TableName() string {
	return "banners"
}

// Live 横幅是否在展示窗口内
func (b *Banner) Live(now time.Time) bool {
	if !b.IsActive {
		return false
	}
	if b.StartDate != nil && now.Before(*b.StartDate) {
		return false
	}
	if b.EndDate != nil && !now.Before(*b.EndDate) {
		return false
	}
	return true
}

// Setting 站点配置项, key 唯一
type Setting struct {
	model.BaseModel
	Key      string `gorm:"size:100;uniqueIndex;not null" json:"key"`
	Value    string `gorm:"type:text" json:"value"`
	Group    string `gorm:"size:50;default:'general'" json:"group"`
	IsPublic bool   `gorm:"default:false" json:"isPublic"`
}

func (Setting) TableName() string {
	return "settings"
}
