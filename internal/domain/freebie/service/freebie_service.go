package service

import (
	"errors"
	"time"

	"onlinedaku/internal/domain/freebie/model"
	"onlinedaku/internal/domain/freebie/repository"
	"onlinedaku/internal/pkg/revalidate"
	"onlinedaku/pkg/utils"

	"gorm.io/gorm"
)

// CategoryResolver 分类过滤参数解析
type CategoryResolver interface {
	ResolveIDs(slugOrID string) ([]string, error)
}

// ListParams 列表查询参数
type ListParams struct {
	Page     int
	Limit    int
	Search   string
	Store    string
	Category string
}

// FreebieInput 创建/更新输入
type FreebieInput struct {
	Title              string
	Description        string
	Store              string
	CategoryID         *string
	Image              string
	Link               string
	TermsAndConditions string
	StartDate          time.Time
	EndDate            time.Time
	IsActive           bool
}

type FreebieService interface {
	GetLiveFreebies(params ListParams) ([]model.Freebie, int64, error)
	GetFreebie(id string) (*model.Freebie, error)

	GetFreebies(params ListParams) ([]model.Freebie, int64, error)
	CreateFreebie(input FreebieInput, adminID string) (*model.Freebie, error)
	UpdateFreebie(id string, input FreebieInput, adminID string) (*model.Freebie, error)
	DeleteFreebie(id string) error
}

type freebieService struct {
	repo       repository.FreebieRepository
	categories CategoryResolver
	trigger    *revalidate.Trigger
}

func NewFreebieService(repo repository.FreebieRepository, categories CategoryResolver, trigger *revalidate.Trigger) FreebieService {
	return &freebieService{repo: repo, categories: categories, trigger: trigger}
}

func (s *freebieService) getList(params ListParams, liveOnly bool) ([]model.Freebie, int64, error) {
	filter := repository.Filter{
		Search:   params.Search,
		Store:    params.Store,
		LiveOnly: liveOnly,
	}

	if params.Category != "" {
		ids, err := s.categories.ResolveIDs(params.Category)
		if err != nil {
			return nil, 0, err
		}
		filter.CategoryIDs = ids
	}

	p := utils.Pagination{Page: params.Page, Limit: params.Limit}
	offset, limit := p.GetPageOffset()
	return s.repo.GetList(filter, offset, limit)
}

func (s *freebieService) GetLiveFreebies(params ListParams) ([]model.Freebie, int64, error) {
	return s.getList(params, true)
}

func (s *freebieService) GetFreebies(params ListParams) ([]model.Freebie, int64, error) {
	return s.getList(params, false)
}

func (s *freebieService) GetFreebie(id string) (*model.Freebie, error) {
	return s.repo.GetByID(id)
}

func (s *freebieService) CreateFreebie(input FreebieInput, adminID string) (*model.Freebie, error) {
	if !input.EndDate.After(input.StartDate) {
		return nil, errors.New("end date must be after start date")
	}

	freebie := &model.Freebie{
		Title:              input.Title,
		Description:        input.Description,
		StoreName:          input.Store,
		CategoryID:         input.CategoryID,
		Image:              input.Image,
		Link:               input.Link,
		TermsAndConditions: input.TermsAndConditions,
		StartDate:          input.StartDate,
		EndDate:            input.EndDate,
		IsActive:           input.IsActive,
		CreatedBy:          adminID,
		UpdatedBy:          adminID,
	}

	if err := s.repo.Create(freebie); err != nil {
		return nil, err
	}

	s.trigger.Tag("freebies")
	return freebie, nil
}

func (s *freebieService) UpdateFreebie(id string, input FreebieInput, adminID string) (*model.Freebie, error) {
	if !input.EndDate.After(input.StartDate) {
		return nil, errors.New("end date must be after start date")
	}

	freebie, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	freebie.Title = input.Title
	freebie.Description = input.Description
	freebie.StoreName = input.Store
	freebie.CategoryID = input.CategoryID
	freebie.Image = input.Image
	freebie.Link = input.Link
	freebie.TermsAndConditions = input.TermsAndConditions
	freebie.StartDate = input.StartDate
	freebie.EndDate = input.EndDate
	freebie.IsActive = input.IsActive
	freebie.UpdatedBy = adminID

	if err := s.repo.Update(freebie); err != nil {
		return nil, err
	}

	s.trigger.Tag("freebies")
	return freebie, nil
}

func (s *freebieService) DeleteFreebie(id string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("freebie not found")
		}
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.trigger.Tag("freebies")
	return nil
}
