package service

import (
	"errors"
	"time"

	"onlinedaku/internal/domain/coupon/model"
	"onlinedaku/internal/domain/coupon/repository"
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
	Status   string
}

// CouponInput 创建/更新输入
type CouponInput struct {
	OfferID     string
	Title       string
	Description string
	Code        string
	Type        string
	Store       string
	CategoryID  *string
	Status      string
	Rating      float64
	Label       string
	Link        string
	StartDate   time.Time
	EndDate     time.Time
	IsActive    bool
}

type CouponService interface {
	GetLiveCoupons(params ListParams) ([]model.Coupon, int64, error)
	GetCoupon(id string) (*model.Coupon, error)

	GetCoupons(params ListParams) ([]model.Coupon, int64, error)
	CreateCoupon(input CouponInput, adminID string) (*model.Coupon, error)
	UpdateCoupon(id string, input CouponInput, adminID string) (*model.Coupon, error)
	DeleteCoupon(id string) error
}

type couponService struct {
	repo       repository.CouponRepository
	categories CategoryResolver
	trigger    *revalidate.Trigger
}

func NewCouponService(repo repository.CouponRepository, categories CategoryResolver, trigger *revalidate.Trigger) CouponService {
	return &couponService{repo: repo, categories: categories, trigger: trigger}
}

func (s *couponService) buildFilter(params ListParams, liveOnly bool) (repository.Filter, error) {
	filter := repository.Filter{
		Search:   params.Search,
		Store:    params.Store,
		Status:   params.Status,
		LiveOnly: liveOnly,
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

func (s *couponService) getList(params ListParams, liveOnly bool) ([]model.Coupon, int64, error) {
	filter, err := s.buildFilter(params, liveOnly)
	if err != nil {
		return nil, 0, err
	}

	p := utils.Pagination{Page: params.Page, Limit: params.Limit}
	offset, limit := p.GetPageOffset()
	return s.repo.GetList(filter, offset, limit)
}

func (s *couponService) GetLiveCoupons(params ListParams) ([]model.Coupon, int64, error) {
	return s.getList(params, true)
}

func (s *couponService) GetCoupons(params ListParams) ([]model.Coupon, int64, error) {
	return s.getList(params, false)
}

func (s *couponService) GetCoupon(id string) (*model.Coupon, error) {
	return s.repo.GetByID(id)
}

// CreateCoupon offerId 重复返回业务错误
func (s *couponService) CreateCoupon(input CouponInput, adminID string) (*model.Coupon, error) {
	if _, err := s.repo.GetByOfferID(input.OfferID); err == nil {
		return nil, errors.New("offer id already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	coupon := &model.Coupon{
		OfferID:     input.OfferID,
		Title:       input.Title,
		Description: input.Description,
		Code:        input.Code,
		Type:        input.Type,
		StoreName:   input.Store,
		CategoryID:  input.CategoryID,
		Status:      input.Status,
		Rating:      input.Rating,
		Label:       input.Label,
		Link:        input.Link,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		IsActive:    input.IsActive,
		CreatedBy:   adminID,
		UpdatedBy:   adminID,
	}
	if coupon.Type == "" {
		coupon.Type = model.TypeCode
	}
	if coupon.Status == "" {
		coupon.Status = "active"
	}

	if err := s.repo.Create(coupon); err != nil {
		return nil, err
	}

	s.trigger.Tag("coupons")
	return coupon, nil
}

func (s *couponService) UpdateCoupon(id string, input CouponInput, adminID string) (*model.Coupon, error) {
	coupon, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.OfferID != coupon.OfferID {
		if _, err := s.repo.GetByOfferID(input.OfferID); err == nil {
			return nil, errors.New("offer id already exists")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		coupon.OfferID = input.OfferID
	}

	coupon.Title = input.Title
	coupon.Description = input.Description
	coupon.Code = input.Code
	coupon.Type = input.Type
	coupon.StoreName = input.Store
	coupon.CategoryID = input.CategoryID
	coupon.Status = input.Status
	coupon.Rating = input.Rating
	coupon.Label = input.Label
	coupon.Link = input.Link
	coupon.StartDate = input.StartDate
	coupon.EndDate = input.EndDate
	coupon.IsActive = input.IsActive
	coupon.UpdatedBy = adminID

	if err := s.repo.Update(coupon); err != nil {
		return nil, err
	}

	s.trigger.Tag("coupons")
	return coupon, nil
}

func (s *couponService) DeleteCoupon(id string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("coupon not found")
		}
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.trigger.Tag("coupons")
	return nil
}
