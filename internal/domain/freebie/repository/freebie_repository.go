package repository

import (
	"time"

	"onlinedaku/internal/domain/freebie/model"

	"gorm.io/gorm"
)

// Filter 免费活动列表过滤条件
type Filter struct {
	Search      string
	Store       string
	CategoryIDs []string
	LiveOnly    bool
}

type FreebieRepository interface {
	Create(freebie *model.Freebie) error
	GetByID(id string) (*model.Freebie, error)
	GetList(filter Filter, offset, limit int) ([]model.Freebie, int64, error)
	Update(freebie *model.Freebie) error
	Delete(id string) error
}

type freebieRepository struct {
	db *gorm.DB
}

func NewFreebieRepository(db *gorm.DB) FreebieRepository {
	return &freebieRepository{db: db}
}

func (r *freebieRepository) Create(freebie *model.Freebie) error {
	return r.db.Create(freebie).Error
}

func (r *freebieRepository) GetByID(id string) (*model.Freebie, error) {
	var freebie model.Freebie
	if err := r.db.Where("id = ?", id).First(&freebie).Error; err != nil {
		return nil, err
	}
	return &freebie, nil
}

func (r *freebieRepository) GetList(filter Filter, offset, limit int) ([]model.Freebie, int64, error) {
	var freebies []model.Freebie
	var total int64

	query := r.db.Model(&model.Freebie{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filter.Store != "" {
		query = query.Where("store_name = ?", filter.Store)
	}
	if len(filter.CategoryIDs) > 0 {
		query = query.Where("category_id IN ?", filter.CategoryIDs)
	}
	if filter.LiveOnly {
		now := time.Now()
		query = query.Where("is_active = ? AND start_date <= ? AND end_date > ?", true, now, now)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&freebies).Error; err != nil {
		return nil, 0, err
	}
	return freebies, total, nil
}

func (r *freebieRepository) Update(freebie *model.Freebie) error {
	return r.db.Save(freebie).Error
}

func (r *freebieRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.Freebie{}).Error
}
