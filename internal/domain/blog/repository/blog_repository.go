package repository

import (
	"onlinedaku/internal/domain/blog/model"

	"gorm.io/gorm"
)

// Filter 博客列表过滤条件
type Filter struct {
	Search        string
	Tag           string
	PublishedOnly bool
}

type BlogRepository interface {
	Create(blog *model.Blog) error
	GetByID(id string) (*model.Blog, error)
	GetBySlug(slug string) (*model.Blog, error)
	List(filter Filter, offset, limit int) ([]model.Blog, int64, error)
	Update(blog *model.Blog) error
	Delete(id string) error
}

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(blog *model.Blog) error {
	return r.db.Create(blog).Error
}

func (r *blogRepository) GetByID(id string) (*model.Blog, error) {
	var blog model.Blog
	if err := r.db.Where("id = ?", id).First(&blog).Error; err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *blogRepository) GetBySlug(slug string) (*model.Blog, error) {
	var blog model.Blog
	if err := r.db.Where("slug = ?", slug).First(&blog).Error; err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *blogRepository) List(filter Filter, offset, limit int) ([]model.Blog, int64, error) {
	var blogs []model.Blog
	var total int64

	query := r.db.Model(&model.Blog{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR excerpt ILIKE ?", pattern, pattern)
	}
	if filter.Tag != "" {
		query = query.Where("tags @> ?", `["`+filter.Tag+`"]`)
	}
	if filter.PublishedOnly {
		query = query.Where("is_published = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&blogs).Error
	return blogs, total, err
}

func (r *blogRepository) Update(blog *model.Blog) error {
	return r.db.Save(blog).Error
}

func (r *blogRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.Blog{}).Error
}
