package handler

import (
	"net/http"
	"time"

	"onlinedaku/internal/domain/freebie/service"
	"onlinedaku/internal/pkg/middleware"
	"onlinedaku/pkg/response"
	"onlinedaku/pkg/utils"

	"github.com/gin-gonic/gin"
)

type FreebieHandler struct {
	service service.FreebieService
}

func NewFreebieHandler(s service.FreebieService) *FreebieHandler {
	return &FreebieHandler{service: s}
}

type ListQuery struct {
	utils.Pagination
	Search   string `form:"search"`
	Store    string `form:"store"`
	Category string `form:"category"`
}

func (q *ListQuery) toParams() service.ListParams {
	return service.ListParams{
		Page:     q.Page,
		Limit:    q.Limit,
		Search:   q.Search,
		Store:    q.Store,
		Category: q.Category,
	}
}

type FreebieInput struct {
	Title              string    `json:"title" binding:"required"`
	Description        string    `json:"description"`
	Store              string    `json:"store" binding:"required"`
	CategoryID         *string   `json:"categoryId"`
	Image              string    `json:"image"`
	Link               string    `json:"link" binding:"required,url"`
	TermsAndConditions string    `json:"termsAndConditions"`
	StartDate          time.Time `json:"startDate" binding:"required"`
	EndDate            time.Time `json:"endDate" binding:"required"`
	IsActive           bool      `json:"isActive"`
}

func (in *FreebieInput) toServiceInput() service.FreebieInput {
	return service.FreebieInput{
		Title:              in.Title,
		Description:        in.Description,
		Store:              in.Store,
		CategoryID:         in.CategoryID,
		Image:              in.Image,
		Link:               in.Link,
		TermsAndConditions: in.TermsAndConditions,
		StartDate:          in.StartDate,
		EndDate:            in.EndDate,
		IsActive:           in.IsActive,
	}
}

// GetLiveFreebies 前台免费活动列表
// @Summary 前台免费活动列表
// @Tags Freebie
// @Success 200 {object} utils.PageResult
// @Router /api/freebies [get]
func (h *FreebieHandler) GetLiveFreebies(c *gin.Context) {
	var q ListQuery
	c.ShouldBindQuery(&q)
	q.GetPageOffset()

	freebies, total, err := h.service.GetLiveFreebies(q.toParams())
	if err != nil {
		if err.Error() == "category not found" {
			response.Error(c, http.StatusBadRequest, response.ErrInvalidCategory, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}

	response.Success(c, utils.NewPageResult(freebies, total, q.Page, q.Limit))
}

// GetFreebie 免费活动详情
func (h *FreebieHandler) GetFreebie(c *gin.Context) {
	freebie, err := h.service.GetFreebie(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, response.ErrResourceNotFound, "Freebie not found")
		return
	}
	response.Success(c, freebie)
}

// GetFreebies 后台免费活动列表
func (h *FreebieHandler) GetFreebies(c *gin.Context) {
	var q ListQuery
	c.ShouldBindQuery(&q)
	q.GetPageOffset()

	freebies, total, err := h.service.GetFreebies(q.toParams())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}

	response.Success(c, utils.NewPageResult(freebies, total, q.Page, q.Limit))
}

// CreateFreebie 创建免费活动
func (h *FreebieHandler) CreateFreebie(c *gin.Context) {
	var input FreebieInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	admin := middleware.CurrentAdmin(c)
	freebie, err := h.service.CreateFreebie(input.toServiceInput(), admin.ID)
	if err != nil {
		if err.Error() == "end date must be after start date" {
			response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}

	response.Success(c, freebie)
}

// UpdateFreebie 更新免费活动
func (h *FreebieHandler) UpdateFreebie(c *gin.Context) {
	var input FreebieInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	admin := middleware.CurrentAdmin(c)
	freebie, err := h.service.UpdateFreebie(c.Param("id"), input.toServiceInput(), admin.ID)
	if err != nil {
		switch err.Error() {
		case "record not found":
			response.Error(c, http.StatusNotFound, response.ErrResourceNotFound, "Freebie not found")
		case "end date must be after start date":
			response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		}
		return
	}

	response.Success(c, freebie)
}

// DeleteFreebie 删除免费活动
func (h *FreebieHandler) DeleteFreebie(c *gin.Context) {
	if err := h.service.DeleteFreebie(c.Param("id")); err != nil {
		if err.Error() == "freebie not found" {
			response.Error(c, http.StatusNotFound, response.ErrResourceNotFound, "Freebie not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}
	response.Success(c, "freebie deleted")
}
