package service

import (
	"errors"
	"time"

	"onlinedaku/internal/domain/deal/model"
	"onlinedaku/internal/domain/deal/repository"
	"onlinedaku/internal/pkg/revalidate"
	"onlinedaku/pkg/utils"

	"gorm.io/gorm"
)

// CategoryResolver 分类过滤参数 (slug 或 ID) → 分类 ID 集合
type CategoryResolver interface {
	ResolveIDs(slugOrID string) ([]string, error)
}

// ListParams 列表查询参数，来自原始 query string
type ListParams struct {
	Page      int
	Limit     int
	Search    string
	Store     string
	Category  string // slug 或 UUID
	Status    string
	SortBy    string
	SortOrder string
}

// DealInput 创建/更新输入
type DealInput struct {
	Title         string
	Description   string
	Price         float64
	OriginalPrice float64
	Store         string
	CategoryID    *string
	DiscountType  string
	DiscountValue float64
	Image         string
	Link          string
	CouponCode    string
	StartDate     time.Time
	EndDate       time.Time
	IsActive      bool
}

type DealService interface {
	// 前台：只返回上线中的优惠
	GetLiveDeals(params ListParams) ([]model.Deal, int64, error)
	GetDeal(id string) (*model.Deal, error)

	// 后台
	GetDeals(params ListParams) ([]model.Deal, int64, error)
	CreateDeal(input DealInput, adminID string) (*model.Deal, error)
	UpdateDeal(id string, input DealInput, adminID string) (*model.Deal, error)
	DeleteDeal(id string) error
}

type dealService struct {
	repo       repository.DealRepository
	categories CategoryResolver
	trigger    *revalidate.Trigger
}

func NewDealService(repo repository.DealRepository, categories CategoryResolver, trigger *revalidate.Trigger) DealService {
	return &dealService{repo: repo, categories: categories, trigger: trigger}
}

// buildFilter 解析原始参数：分类在这里一次性解析为 ID 集合
func (s *dealService) buildFilter(params ListParams, liveOnly bool) (repository.Filter, error) {
	filter := repository.Filter{
		Search:    params.Search,
		Store:     params.Store,
		Status:    params.Status,
		LiveOnly:  liveOnly,
		SortBy:    params.SortBy,
		SortOrder: params.SortOrder,
	}

	if params.Category != "" {
		ids, err := s.categories.ResolveIDs(params.Category)
		if err != nil {
			return filter, err
		}
		filter.CategoryIDs = ids
	}

	return filter, nil
}

func (s *dealService) getList(params ListParams, liveOnly bool) ([]model.Deal, int64, error) {
	filter, err := s.buildFilter(params, liveOnly)
	if err != nil {
		return nil, 0, err
	}

	p := utils.Pagination{Page: params.Page, Limit: params.Limit}
	offset, limit := p.GetPageOffset()
	return s.repo.GetList(filter, offset, limit)
}

func (s *dealService) GetLiveDeals(params ListParams) ([]model.Deal, int64, error) {
	return s.getList(params, true)
}

func (s *dealService) GetDeals(params ListParams) ([]model.Deal, int64, error) {
	return s.getList(params, false)
}

func (s *dealService) GetDeal(id string) (*model.Deal, error) {
	return s.repo.GetByID(id)
}

func validateInput(input DealInput) error {
	if !input.EndDate.After(input.StartDate) {
		return errors.New("end date must be after start date")
	}
	if input.DiscountType != "" && input.DiscountType != model.DiscountPercentage && input.DiscountType != model.DiscountFixed {
		return errors.New("invalid discount type")
	}
	return nil
}

func (s *dealService) CreateDeal(input DealInput, adminID string) (*model.Deal, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	deal := &model.Deal{
		Title:         input.Title,
		Description:   input.Description,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		StoreName:     input.Store,
		CategoryID:    input.CategoryID,
		DiscountType:  input.DiscountType,
		DiscountValue: input.DiscountValue,
		Image:         input.Image,
		Link:          input.Link,
		CouponCode:    input.CouponCode,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		IsActive:      input.IsActive,
		CreatedBy:     adminID,
		UpdatedBy:     adminID,
	}

	if err := s.repo.Create(deal); err != nil {
		return nil, err
	}

	s.trigger.Tag("deals")
	return deal, nil
}

func (s *dealService) UpdateDeal(id string, input DealInput, adminID string) (*model.Deal, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	deal, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	deal.Title = input.Title
	deal.Description = input.Description
	deal.Price = input.Price
	deal.OriginalPrice = input.OriginalPrice
	deal.StoreName = input.Store
	deal.CategoryID = input.CategoryID
	deal.DiscountType = input.DiscountType
	deal.DiscountValue = input.DiscountValue
	deal.Image = input.Image
	deal.Link = input.Link
	deal.CouponCode = input.CouponCode
	deal.StartDate = input.StartDate
	deal.EndDate = input.EndDate
	deal.IsActive = input.IsActive
	deal.UpdatedBy = adminID

	if err := s.repo.Update(deal); err != nil {
		return nil, err
	}

	s.trigger.Tag("deals")
	return deal, nil
}

func (s *dealService) DeleteDeal(id string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("deal not found")
		}
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.trigger.Tag("deals")
	return nil
}
