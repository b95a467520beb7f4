package repository

import (
	categoryModel "onlinedaku/internal/domain/category/model"
	"onlinedaku/internal/domain/store/model"

	"gorm.io/gorm"
)

// Filter 商家列表过滤条件
type Filter struct {
	Search     string
	Featured   *bool
	ActiveOnly bool
}

type StoreRepository interface {
	Create(store *model.Store) error
	GetByID(id string) (*model.Store, error)
	GetBySlug(slug string) (*model.Store, error)
	List(filter Filter, offset, limit int) ([]model.Store, int64, error)
	Update(store *model.Store) error
	Delete(id string) error
	ReplaceCategories(store *model.Store, categoryIDs []string) error
}

type storeRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) Create(store *model.Store) error {
	return r.db.Create(store).Error
}

func (r *storeRepository) GetByID(id string) (*model.Store, error) {
	var store model.Store
	if err := r.db.Preload("Categories").Where("id = ?", id).First(&store).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepository) GetBySlug(slug string) (*model.Store, error) {
	var store model.Store
	if err := r.db.Preload("Categories").Where("slug = ?", slug).First(&store).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepository) List(filter Filter, offset, limit int) ([]model.Store, int64, error) {
	var stores []model.Store
	var total int64

	query := r.db.Model(&model.Store{})
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Categories").
		Order("featured desc, name asc").
		Offset(offset).Limit(limit).
		Find(&stores).Error
	return stores, total, err
}

func (r *storeRepository) Update(store *model.Store) error {
	return r.db.Save(store).Error
}

func (r *storeRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.Store{}).Error
}

func (r *storeRepository) ReplaceCategories(store *model.Store, categoryIDs []string) error {
	if len(categoryIDs) == 0 {
		return r.db.Model(store).Association("Categories").Clear()
	}

	var categories []categoryModel.Category
	if err := r.db.Where("id IN ?", categoryIDs).Find(&categories).Error; err != nil {
		return err
	}
	return r.db.Model(store).Association("Categories").Replace(categories)
}
