package service

import (
	"errors"
	"time"

	"onlinedaku/internal/domain/site/model"
	"onlinedaku/internal/domain/site/repository"
	"onlinedaku/internal/pkg/revalidate"

	"gorm.io/gorm"
)

// BannerInput 横幅创建/更新输入
type BannerInput struct {
	Title        string
	Image        string
	Link         string
	Position     string
	DisplayOrder int
	IsActive     bool
	StartDate    *time.Time
	EndDate      *time.Time
}

type SiteService interface {
	GetLiveBanners() ([]model.Banner, error)
	GetPublicSettings() (map[string]string, error)

	GetBanners() ([]model.Banner, error)
	CreateBanner(input BannerInput) (*model.Banner, error)
	UpdateBanner(id string, input BannerInput) (*model.Banner, error)
	DeleteBanner(id string) error

	GetSettings() ([]model.Setting, error)
	SetSetting(key, value, group string, isPublic bool) (*model.Setting, error)
	DeleteSetting(key string) error
}

type siteService struct {
	repo    repository.SiteRepository
	trigger *revalidate.Trigger
}

func NewSiteService(repo repository.SiteRepository, trigger *revalidate.Trigger) SiteService {
	return &siteService{repo: repo, trigger: trigger}
}

func (s *siteService) GetLiveBanners() ([]model.Banner, error) {
	return s.repo.ListBanners(true, time.Now())
}

func (s *siteService) GetPublicSettings() (map[string]string, error) {
	settings, err := s.repo.ListSettings(true)
	if err != nil {
		return nil, err
	}
	result := make(map[string]string, len(settings))
	for _, setting := range settings {
		result[setting.Key] = setting.Value
	}
	return result, nil
}

func (s *siteService) GetBanners() ([]model.Banner, error) {
	return s.repo.ListBanners(false, time.Now())
}

func (s *siteService) CreateBanner(input BannerInput) (*model.Banner, error) {
	if input.StartDate != nil && input.EndDate != nil && !input.EndDate.After(*input.StartDate) {
		return nil, errors.New("end date must be after start date")
	}

	banner := &model.Banner{
		Title:        input.Title,
		Image:        input.Image,
		Link:         input.Link,
		Position:     input.Position,
		DisplayOrder: input.DisplayOrder,
		IsActive:     input.IsActive,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
	}
	if err := s.repo.CreateBanner(banner); err != nil {
		return nil, err
	}

	s.trigger.Tag("banners")
	return banner, nil
}

func (s *siteService) UpdateBanner(id string, input BannerInput) (*model.Banner, error) {
	banner, err := s.repo.GetBannerByID(id)
	if err != nil {
		return nil, err
	}

	if input.StartDate != nil && input.EndDate != nil && !input.EndDate.After(*input.StartDate) {
		return nil, errors.New("end date must be after start date")
	}

	banner.Title = input.Title
	banner.Image = input.Image
	banner.Link = input.Link
	banner.Position = input.Position
	banner.DisplayOrder = input.DisplayOrder
	banner.IsActive = input.IsActive
	banner.StartDate = input.StartDate
	banner.EndDate = input.EndDate

	if err := s.repo.UpdateBanner(banner); err != nil {
		return nil, err
	}

	s.trigger.Tag("banners")
	return banner, nil
}

func (s *siteService) DeleteBanner(id string) error {
	if _, err := s.repo.GetBannerByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("banner not found")
		}
		return err
	}

	if err := s.repo.DeleteBanner(id); err != nil {
		return err
	}

	s.trigger.Tag("banners")
	return nil
}

func (s *siteService) GetSettings() ([]model.Setting, error) {
	return s.repo.ListSettings(false)
}

func (s *siteService) SetSetting(key, value, group string, isPublic bool) (*model.Setting, error) {
	if key == "" {
		return nil, errors.New("setting key is required")
	}

	setting := &model.Setting{Key: key, Value: value, IsPublic: isPublic}
	if err := s.repo.UpsertSetting(setting); err != nil {
		return nil, err
	}

	if isPublic {
		s.trigger.Tag("settings")
	}
	return setting, nil
}

func (s *siteService) DeleteSetting(key string) error {
	if _, err := s.repo.GetSetting(key); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("setting not found")
		}
		return err
	}

	if err := s.repo.DeleteSetting(key); err != nil {
		return err
	}

	s.trigger.Tag("settings")
	return nil
}
