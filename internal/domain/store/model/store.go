package model

import (
	categoryModel "onlinedaku/internal/domain/category/model"
	"onlinedaku/pkg/model"
)

// Store 商家
type Store struct {
	model.BaseModel
	Name        string  `gorm:"size:255;not null" json:"name"`
	Slug        string  `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Description string  `gorm:"type:text" json:"description"`
	Website     string  `gorm:"size:500" json:"website"`
	Logo        string  `gorm:"size:500" json:"logo"`
	Rating      float64 `gorm:"default:0" json:"rating"`
	Featured    bool    `gorm:"default:false" json:"featured"`
	IsActive    bool    `gorm:"default:true" json:"isActive"`

	Categories []categoryModel.Category `gorm:"many2many:store_categories" json:"categories,omitempty"`
}

func (Store) TableName() string {
	return "stores"
}
