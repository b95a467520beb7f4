package repository

import (
	"onlinedaku/internal/domain/newsletter/model"

	"gorm.io/gorm"
)

type SubscriberRepository interface {
	Create(sub *model.Subscriber) error
	GetByEmail(email string) (*model.Subscriber, error)
	List(activeOnly bool, offset, limit int) ([]model.Subscriber, int64, error)
	Update(sub *model.Subscriber) error
	Delete(id string) error
}

type subscriberRepository struct {
	db *gorm.DB
}

func NewSubscriberRepository(db *gorm.DB) SubscriberRepository {
	return &subscriberRepository{db: db}
}

func (r *subscriberRepository) Create(sub *model.Subscriber) error {
	return r.db.Create(sub).Error
}

func (r *subscriberRepository) GetByEmail(email string) (*model.Subscriber, error) {
	var sub model.Subscriber
	if err := r.db.Where("email = ?", email).First(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *subscriberRepository) List(activeOnly bool, offset, limit int) ([]model.Subscriber, int64, error) {
	var subs []model.Subscriber
	var total int64

	query := r.db.Model(&model.Subscriber{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&subs).Error
	return subs, total, err
}

func (r *subscriberRepository) Update(sub *model.Subscriber) error {
	return r.db.Save(sub).Error
}

func (r *subscriberRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.Subscriber{}).Error
}
