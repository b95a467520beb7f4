package model

import (
	baseModel "onlinedaku/pkg/model"
)

// Category 分类，parentCategory 自引用构成两级树
type Category struct {
	baseModel.BaseModel
	Name         string  `gorm:"not null" json:"name"`
	Slug         string  `gorm:"unique;not null" json:"slug"`
	ParentID     *string `gorm:"type:uuid;index" json:"parentId,omitempty"`
	DisplayOrder int     `gorm:"default:0" json:"displayOrder"`

	// 关联
	Children []Category `gorm:"foreignKey:ParentID" json:"children,omitempty"`
}
