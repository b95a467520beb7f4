package service

import (
	"errors"

	"onlinedaku/internal/domain/store/model"
	"onlinedaku/internal/domain/store/repository"
	"onlinedaku/internal/pkg/revalidate"
	"onlinedaku/pkg/utils"

	"gorm.io/gorm"
)

// ListParams 列表查询参数
type ListParams struct {
	Page     int
	Limit    int
	Search   string
	Featured *bool
}

// StoreInput 创建/更新输入
type StoreInput struct {
	Name        string
	Slug        string
	Description string
	Website     string
	Logo        string
	Rating      float64
	Featured    bool
	IsActive    bool
	CategoryIDs []string
}

type StoreService interface {
	GetActiveStores(params ListParams) ([]model.Store, int64, error)
	GetStoreBySlug(slug string) (*model.Store, error)

	GetStores(params ListParams) ([]model.Store, int64, error)
	GetStore(id string) (*model.Store, error)
	CreateStore(input StoreInput) (*model.Store, error)
	UpdateStore(id string, input StoreInput) (*model.Store, error)
	DeleteStore(id string) error
}

type storeService struct {
	repo    repository.StoreRepository
	trigger *revalidate.Trigger
}

func NewStoreService(repo repository.StoreRepository, trigger *revalidate.Trigger) StoreService {
	return &storeService{repo: repo, trigger: trigger}
}

func (s *storeService) getList(params ListParams, activeOnly bool) ([]model.Store, int64, error) {
	offset := (params.Page - 1) * params.Limit
	filter := repository.Filter{
		Search:     params.Search,
		Featured:   params.Featured,
		ActiveOnly: activeOnly,
	}
	return s.repo.List(filter, offset, params.Limit)
}

func (s *storeService) GetActiveStores(params ListParams) ([]model.Store, int64, error) {
	return s.getList(params, true)
}

func (s *storeService) GetStores(params ListParams) ([]model.Store, int64, error) {
	return s.getList(params, false)
}

func (s *storeService) GetStoreBySlug(slug string) (*model.Store, error) {
	store, err := s.repo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if !store.IsActive {
		return nil, gorm.ErrRecordNotFound
	}
	return store, nil
}

func (s *storeService) GetStore(id string) (*model.Store, error) {
	return s.repo.GetByID(id)
}

func (s *storeService) CreateStore(input StoreInput) (*model.Store, error) {
	slug := input.Slug
	if slug == "" {
		slug = utils.Slugify(input.Name)
	}

	// slug 唯一性检查
	if _, err := s.repo.GetBySlug(slug); err == nil {
		return nil, errors.New("slug already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	store := &model.Store{
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
		Website:     input.Website,
		Logo:        input.Logo,
		Rating:      input.Rating,
		Featured:    input.Featured,
		IsActive:    input.IsActive,
	}

	if err := s.repo.Create(store); err != nil {
		return nil, err
	}

	if len(input.CategoryIDs) > 0 {
		if err := s.repo.ReplaceCategories(store, input.CategoryIDs); err != nil {
			return nil, err
		}
	}

	s.trigger.Tag("stores")
	return s.repo.GetByID(store.ID)
}

func (s *storeService) UpdateStore(id string, input StoreInput) (*model.Store, error) {
	store, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	slug := input.Slug
	if slug == "" {
		slug = utils.Slugify(input.Name)
	}
	if slug != store.Slug {
		if _, err := s.repo.GetBySlug(slug); err == nil {
			return nil, errors.New("slug already exists")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	store.Name = input.Name
	store.Slug = slug
	store.Description = input.Description
	store.Website = input.Website
	store.Logo = input.Logo
	store.Rating = input.Rating
	store.Featured = input.Featured
	store.IsActive = input.IsActive

	if err := s.repo.Update(store); err != nil {
		return nil, err
	}

	if err := s.repo.ReplaceCategories(store, input.CategoryIDs); err != nil {
		return nil, err
	}

	s.trigger.Tag("stores")
	s.trigger.Path("/stores/" + store.Slug)
	return s.repo.GetByID(store.ID)
}

func (s *storeService) DeleteStore(id string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("store not found")
		}
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.trigger.Tag("stores")
	return nil
}
