package handler

import (
	"net/http"
	"time"

	"onlinedaku/internal/domain/coupon/service"
	"onlinedaku/internal/pkg/middleware"
	"onlinedaku/pkg/response"
	"onlinedaku/pkg/utils"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	service service.CouponService
}

func NewCouponHandler(s service.CouponService) *CouponHandler {
	return &CouponHandler{service: s}
}

type ListQuery struct {
	utils.Pagination
	Search   string `form:"search"`
	Store    string `form:"store"`
	Category string `form:"category"`
	Status   string `form:"status"`
}

func (q *ListQuery) toParams() service.ListParams {
	return service.ListParams{
		Page:     q.Page,
		Limit:    q.Limit,
		Search:   q.Search,
		Store:    q.Store,
		Category: q.Category,
		Status:   q.Status,
	}
}

type CouponInput struct {
	OfferID     string    `json:"offerId" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Code        string    `json:"code"`
	Type        string    `json:"type" binding:"omitempty,oneof=Code Deal"`
	Store       string    `json:"store" binding:"required"`
	CategoryID  *string   `json:"categoryId"`
	Status      string    `json:"status"`
	Rating      float64   `json:"rating" binding:"omitempty,min=0,max=5"`
	Label       string    `json:"label"`
	Link        string    `json:"link"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate" binding:"required"`
	IsActive    bool      `json:"isActive"`
}

func (in *CouponInput) toServiceInput() service.CouponInput {
	return service.CouponInput{
		OfferID:     in.OfferID,
		Title:       in.Title,
		Description: in.Description,
		Code:        in.Code,
		Type:        in.Type,
		Store:       in.Store,
		CategoryID:  in.CategoryID,
		Status:      in.Status,
		Rating:      in.Rating,
		Label:       in.Label,
		Link:        in.Link,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		IsActive:    in.IsActive,
	}
}

func listError(c *gin.Context, err error) {
	if err.Error() == "category not found" {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidCategory, err.Error())
		return
	}
	response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
}

// GetLiveCoupons 前台优惠券列表
// @Summary 前台优惠券列表
// @Tags Coupon
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} utils.PageResult
// @Router /api/coupons [get]
func (h *CouponHandler) GetLiveCoupons(c *gin.Context) {
	var q ListQuery
	c.ShouldBindQuery(&q)
	q.GetPageOffset()

	coupons, total, err := h.service.GetLiveCoupons(q.toParams())
	if err != nil {
		listError(c, err)
		return
	}

	response.Success(c, utils.NewPageResult(coupons, total, q.Page, q.Limit))
}

// GetCoupon 优惠券详情
func (h *CouponHandler) GetCoupon(c *gin.Context) {
	coupon, err := h.service.GetCoupon(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, response.ErrResourceNotFound, "Coupon not found")
		return
	}
	response.Success(c, coupon)
}

// GetCoupons 后台优惠券列表
func (h *CouponHandler) GetCoupons(c *gin.Context) {
	var q ListQuery
	c.ShouldBindQuery(&q)
	q.GetPageOffset()

	coupons, total, err := h.service.GetCoupons(q.toParams())
	if err != nil {
		listError(c, err)
		return
	}

	response.Success(c, utils.NewPageResult(coupons, total, q.Page, q.Limit))
}

// CreateCoupon 创建优惠券
func (h *CouponHandler) CreateCoupon(c *gin.Context) {
	var input CouponInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	admin := middleware.CurrentAdmin(c)
	coupon, err := h.service.CreateCoupon(input.toServiceInput(), admin.ID)
	if err != nil {
		if err.Error() == "offer id already exists" {
			response.Error(c, http.StatusBadRequest, response.ErrDuplicateOfferID, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}

	response.Success(c, coupon)
}

// UpdateCoupon 更新优惠券
func (h *CouponHandler) UpdateCoupon(c *gin.Context) {
	var input CouponInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	admin := middleware.CurrentAdmin(c)
	coupon, err := h.service.UpdateCoupon(c.Param("id"), input.toServiceInput(), admin.ID)
	if err != nil {
		switch err.Error() {
		case "record not found":
			response.Error(c, http.StatusNotFound, response.ErrResourceNotFound, "Coupon not found")
		case "offer id already exists":
			response.Error(c, http.StatusBadRequest, response.ErrDuplicateOfferID, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		}
		return
	}

	response.Success(c, coupon)
}

// DeleteCoupon 删除优惠券
func (h *CouponHandler) DeleteCoupon(c *gin.Context) {
	if err := h.service.DeleteCoupon(c.Param("id")); err != nil {
		if err.Error() == "coupon not found" {
			response.Error(c, http.StatusNotFound, response.ErrResourceNotFound, "Coupon not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}
	response.Success(c, "coupon deleted")
}
