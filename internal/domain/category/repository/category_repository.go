package repository

import (
	"onlinedaku/internal/domain/category/model"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *model.Category) error
	GetByID(id string) (*model.Category, error)
	GetBySlug(slug string) (*model.Category, error)
	GetChildren(parentID string) ([]model.Category, error)
	GetTree() ([]model.Category, error)
	GetList(offset, limit int) ([]model.Category, int64, error)
	Update(category *model.Category) error
	Delete(id string) error
	HasChildren(id string) (bool, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *model.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepository) GetByID(id string) (*model.Category, error) {
	var category model.Category
	if err := r.db.Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetBySlug(slug string) (*model.Category, error) {
	var category model.Category
	if err := r.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetChildren(parentID string) ([]model.Category, error) {
	var children []model.Category
	if err := r.db.Where("parent_id = ?", parentID).Order("display_order asc").Find(&children).Error; err != nil {
		return nil, err
	}
	return children, nil
}

// GetTree 顶级分类带直接子级，按 display_order 排序
func (r *categoryRepository) GetTree() ([]model.Category, error) {
	var roots []model.Category
	err := r.db.Where("parent_id IS NULL").
		Preload("Children", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order asc")
		}).
		Order("display_order asc").
		Find(&roots).Error
	if err != nil {
		return nil, err
	}
	return roots, nil
}

func (r *categoryRepository) GetList(offset, limit int) ([]model.Category, int64, error) {
	var categories []model.Category
	var total int64

	if err := r.db.Model(&model.Category{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Order("display_order asc").Offset(offset).Limit(limit).Find(&categories).Error; err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

func (r *categoryRepository) Update(category *model.Category) error {
	return r.db.Save(category).Error
}

func (r *categoryRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.Category{}).Error
}

func (r *categoryRepository) HasChildren(id string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Category{}).Where("parent_id = ?", id).Count(&count).Error
	return count > 0, err
}
