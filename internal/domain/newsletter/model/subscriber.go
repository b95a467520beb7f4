package model

import (
	"time"

	"onlinedaku/pkg/model"
)

// Subscriber 订阅用户
type Subscriber struct {
	model.BaseModel
	Email          string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	IsActive       bool       `gorm:"default:true" json:"isActive"`
	SubscribedAt   time.Time  `json:"subscribedAt"`
	UnsubscribedAt *time.Time `json:"unsubscribedAt,omitempty"`
}

func (Subscriber) TableName() string {
	return "newsletter_subscribers"
}
