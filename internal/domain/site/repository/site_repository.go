package repository

import (
	"time"

	"onlinedaku/internal/domain/site/model"

	"gorm.io/gorm"
)

type SiteRepository interface {
	CreateBanner(banner *model.Banner) error
	GetBannerByID(id string) (*model.Banner, error)
	ListBanners(liveOnly bool, now time.Time) ([]model.Banner, error)
	UpdateBanner(banner *model.Banner) error
	DeleteBanner(id string) error

	GetSetting(key string) (*model.Setting, error)
	ListSettings(publicOnly bool) ([]model.Setting, error)
	UpsertSetting(setting *model.Setting) error
	DeleteSetting(key string) error
}

type siteRepository struct {
	db *gorm.DB
}

func NewSiteRepository(db *gorm.DB) SiteRepository {
	return &siteRepository{db: db}
}

func (r *siteRepository) CreateBanner(banner *model.Banner) error {
	return r.db.Create(banner).Error
}

func (r *siteRepository) GetBannerByID(id string) (*model.Banner, error) {
	var banner model.Banner
	if err := r.db.Where("id = ?", id).First(&banner).Error; err != nil {
		return nil, err
	}
	return &banner, nil
}

func (r *siteRepository) ListBanners(liveOnly bool, now time.Time) ([]model.Banner, error) {
	var banners []model.Banner
	query := r.db.Model(&model.Banner{})
	if liveOnly {
		query = query.Where("is_active = ?", true).
			Where("start_date IS NULL OR start_date <= ?", now).
			Where("end_date IS NULL OR end_date > ?", now)
	}
	err := query.Order("display_order asc, created_at desc").Find(&banners).Error
	return banners, err
}

func (r *siteRepository) UpdateBanner(banner *model.Banner) error {
	return r.db.Save(banner).Error
}

func (r *siteRepository) DeleteBanner(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.Banner{}).Error
}

func (r *siteRepository) GetSetting(key string) (*model.Setting, error) {
	var setting model.Setting
	if err := r.db.Where("key = ?", key).First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *siteRepository) ListSettings(publicOnly bool) ([]model.Setting, error) {
	var settings []model.Setting
	query := r.db.Model(&model.Setting{})
	if publicOnly {
		query = query.Where("is_public = ?", true)
	}
	err := query.Order("key asc").Find(&settings).Error
	return settings, err
}

func (r *siteRepository) UpsertSetting(setting *model.Setting) error {
	existing := &model.Setting{}
	err := r.db.Where("key = ?", setting.Key).First(existing).Error
	if err == nil {
		existing.Value = setting.Value
		existing.Group = setting.Group
		existing.IsPublic = setting.IsPublic
		*setting = *existing
		return r.db.Save(existing).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return r.db.Create(setting).Error
}

func (r *siteRepository) DeleteSetting(key string) error {
	return r.db.Where("key = ?", key).Delete(&model.Setting{}).Error
}
