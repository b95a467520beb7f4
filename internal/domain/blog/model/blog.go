package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"onlinedaku/pkg/model"
)

// TagList 标签列表, 存储为 jsonb
type TagList []string

func (t TagList) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	return json.Marshal(t)
}

func (t *TagList) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			bytes = []byte(s)
		} else {
			return errors.New("failed to scan TagList")
		}
	}
	return json.Unmarshal(bytes, t)
}

// Blog 博客文章
type Blog struct {
	model.BaseModel
	Title       string     `gorm:"size:255;not null" json:"title"`
	Slug        string     `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Content     string     `gorm:"type:text" json:"content"`
	Excerpt     string     `gorm:"size:500" json:"excerpt"`
	CoverImage  string     `gorm:"size:500" json:"coverImage"`
	Tags        TagList    `gorm:"type:jsonb;default:'[]'" json:"tags"`
	IsPublished bool       `gorm:"default:false" json:"isPublished"`
	PublishedAt *time.Time `json:"publishedAt"`
	AuthorID    string     `gorm:"type:uuid" json:"authorId"`
}

func (Blog) TableName() string {
	return "blogs"
}
