package repository

import (
	"time"

	"onlinedaku/internal/domain/coupon/model"

	"gorm.io/gorm"
)

// Filter 优惠券列表过滤条件
type Filter struct {
	Search      string
	Store       string
	CategoryIDs []string
	Status      string
	LiveOnly    bool
}

type CouponRepository interface {
	Create(coupon *model.Coupon) error
	GetByID(id string) (*model.Coupon, error)
	GetByOfferID(offerID string) (*model.Coupon, error)
	GetList(filter Filter, offset, limit int) ([]model.Coupon, int64, error)
	Update(coupon *model.Coupon) error
	Delete(id string) error
}

type couponRepository struct {
	db *gorm.DB
}

func NewCouponRepository(db *gorm.DB) CouponRepository {
	return &couponRepository{db: db}
}

func (r *couponRepository) Create(coupon *model.Coupon) error {
	return r.db.Create(coupon).Error
}

func (r *couponRepository) GetByID(id string) (*model.Coupon, error) {
	var coupon model.Coupon
	if err := r.db.Where("id = ?", id).First(&coupon).Error; err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *couponRepository) GetByOfferID(offerID string) (*model.Coupon, error) {
	var coupon model.Coupon
	if err := r.db.Where("offer_id = ?", offerID).First(&coupon).Error; err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *couponRepository) GetList(filter Filter, offset, limit int) ([]model.Coupon, int64, error) {
	var coupons []model.Coupon
	var total int64

	query := r.db.Model(&model.Coupon{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ? OR code ILIKE ?", pattern, pattern, pattern)
	}
	if filter.Store != "" {
		query = query.Where("store_name = ?", filter.Store)
	}
	if len(filter.CategoryIDs) > 0 {
		query = query.Where("category_id IN ?", filter.CategoryIDs)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.LiveOnly {
		now := time.Now()
		query = query.Where("is_active = ? AND end_date > ?", true, now)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&coupons).Error; err != nil {
		return nil, 0, err
	}
	return coupons, total, nil
}

func (r *couponRepository) Update(coupon *model.Coupon) error {
	return r.db.Save(coupon).Error
}

func (r *couponRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.Coupon{}).Error
}
