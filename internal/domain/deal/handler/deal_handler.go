package handler

import (
	"net/http"
	"time"

	"onlinedaku/internal/domain/deal/service"
	"onlinedaku/internal/pkg/middleware"
	"onlinedaku/pkg/response"
	"onlinedaku/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DealHandler struct {
	service service.DealService
}

func NewDealHandler(s service.DealService) *DealHandler {
	return &DealHandler{service: s}
}

// ListQuery 列表查询参数
type ListQuery struct {
	utils.Pagination
	Search    string `form:"search"`
	Store     string `form:"store"`
	Category  string `form:"category"`
	Status    string `form:"status"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"`
}

func (q *ListQuery) toParams() service.ListParams {
	return service.ListParams{
		Page:      q.Page,
		Limit:     q.Limit,
		Search:    q.Search,
		Store:     q.Store,
		Category:  q.Category,
		Status:    q.Status,
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
	}
}

// DealInput 创建/更新优惠输入
type DealInput struct {
	Title         string    `json:"title" binding:"required"`
	Description   string    `json:"description"`
	Price         float64   `json:"price" binding:"min=0"`
	OriginalPrice float64   `json:"originalPrice" binding:"min=0"`
	Store         string    `json:"store" binding:"required"`
	CategoryID    *string   `json:"categoryId"`
	DiscountType  string    `json:"discountType" binding:"omitempty,oneof=percentage fixed"`
	DiscountValue float64   `json:"discountValue"`
	Image         string    `json:"image"`
	Link          string    `json:"link" binding:"required,url"`
	CouponCode    string    `json:"couponCode"`
	StartDate     time.Time `json:"startDate" binding:"required"`
	EndDate       time.Time `json:"endDate" binding:"required"`
	IsActive      bool      `json:"isActive"`
}

func (in *DealInput) toServiceInput() service.DealInput {
	return service.DealInput{
		Title:         in.Title,
		Description:   in.Description,
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		Store:         in.Store,
		CategoryID:    in.CategoryID,
		DiscountType:  in.DiscountType,
		DiscountValue: in.DiscountValue,
		Image:         in.Image,
		Link:          in.Link,
		CouponCode:    in.CouponCode,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		IsActive:      in.IsActive,
	}
}

func listError(c *gin.Context, err error) {
	if err.Error() == "category not found" {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidCategory, err.Error())
		return
	}
	response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
}

// GetLiveDeals 前台优惠列表
// @Summary 前台优惠列表（只含上线中的）
// @Tags Deal
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Param search query string false "Search"
// @Param store query string false "Store"
// @Param category query string false "Category slug or id"
// @Success 200 {object} utils.PageResult
// @Router /api/deals [get]
func (h *DealHandler) GetLiveDeals(c *gin.Context) {
	var q ListQuery
	c.ShouldBindQuery(&q)
	q.GetPageOffset() // 规范化 page/limit

	deals, total, err := h.service.GetLiveDeals(q.toParams())
	if err != nil {
		listError(c, err)
		return
	}

	response.Success(c, utils.NewPageResult(deals, total, q.Page, q.Limit))
}

// GetDeal 前台优惠详情
// @Summary 优惠详情
// @Tags Deal
// @Param id path string true "Deal ID"
// @Success 200 {object} model.Deal
// @Router /api/deals/{id} [get]
func (h *DealHandler) GetDeal(c *gin.Context) {
	deal, err := h.service.GetDeal(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, response.ErrResourceNotFound, "Deal not found")
		return
	}
	response.Success(c, deal)
}

// GetDeals 后台优惠列表（支持 status 过滤）
func (h *DealHandler) GetDeals(c *gin.Context) {
	var q ListQuery
	c.ShouldBindQuery(&q)
	q.GetPageOffset()

	deals, total, err := h.service.GetDeals(q.toParams())
	if err != nil {
		listError(c, err)
		return
	}

	response.Success(c, utils.NewPageResult(deals, total, q.Page, q.Limit))
}

// CreateDeal 创建优惠
func (h *DealHandler) CreateDeal(c *gin.Context) {
	var input DealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	admin := middleware.CurrentAdmin(c)
	deal, err := h.service.CreateDeal(input.toServiceInput(), admin.ID)
	if err != nil {
		if err.Error() == "end date must be after start date" || err.Error() == "invalid discount type" {
			response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}

	response.Success(c, deal)
}

// UpdateDeal 更新优惠
func (h *DealHandler) UpdateDeal(c *gin.Context) {
	var input DealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	admin := middleware.CurrentAdmin(c)
	deal, err := h.service.UpdateDeal(c.Param("id"), input.toServiceInput(), admin.ID)
	if err != nil {
		switch err.Error() {
		case "record not found":
			response.Error(c, http.StatusNotFound, response.ErrResourceNotFound, "Deal not found")
		case "end date must be after start date", "invalid discount type":
			response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		}
		return
	}

	response.Success(c, deal)
}

// DeleteDeal 删除优惠
func (h *DealHandler) DeleteDeal(c *gin.Context) {
	if err := h.service.DeleteDeal(c.Param("id")); err != nil {
		if err.Error() == "deal not found" {
			response.Error(c, http.StatusNotFound, response.ErrResourceNotFound, "Deal not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}
	response.Success(c, "deal deleted")
}
