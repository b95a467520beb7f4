package handler

import (
	"net/http"

	"onlinedaku/internal/domain/store/service"
	"onlinedaku/pkg/response"
	"onlinedaku/pkg/utils"

	"github.com/gin-gonic/gin"
)

type StoreHandler struct {
	service service.StoreService
}

func NewStoreHandler(s service.StoreService) *StoreHandler {
	return &StoreHandler{service: s}
}

type ListQuery struct {
	utils.Pagination
	Search   string `form:"search"`
	Featured *bool  `form:"featured"`
}

func (q *ListQuery) toParams() service.ListParams {
	return service.ListParams{
		Page:     q.Page,
		Limit:    q.Limit,
		Search:   q.Search,
		Featured: q.Featured,
	}
}

type StoreInput struct {
	Name        string   `json:"name" binding:"required"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Website     string   `json:"website"`
	Logo        string   `json:"logo"`
	Rating      float64  `json:"rating"`
	Featured    bool     `json:"featured"`
	IsActive    bool     `json:"isActive"`
	CategoryIDs []string `json:"categoryIds"`
}

func (in *StoreInput) toServiceInput() service.StoreInput {
	return service.StoreInput{
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		Website:     in.Website,
		Logo:        in.Logo,
		Rating:      in.Rating,
		Featured:    in.Featured,
		IsActive:    in.IsActive,
		CategoryIDs: in.CategoryIDs,
	}
}

// GetActiveStores 前台商家列表
// @Summary 前台商家列表
// @Tags Store
// @Success 200 {object} utils.PageResult
// @Router /api/stores [get]
func (h *StoreHandler) GetActiveStores(c *gin.Context) {
	var q ListQuery
	c.ShouldBindQuery(&q)
	q.GetPageOffset()

	stores, total, err := h.service.GetActiveStores(q.toParams())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}

	response.Success(c, utils.NewPageResult(stores, total, q.Page, q.Limit))
}

// GetStoreBySlug 按 slug 查询商家
func (h *StoreHandler) GetStoreBySlug(c *gin.Context) {
	store, err := h.service.GetStoreBySlug(c.Param("slug"))
	if err != nil {
		response.Error(c, http.StatusNotFound, response.ErrResourceNotFound, "Store not found")
		return
	}
	response.Success(c, store)
}

// GetStores 后台商家列表
func (h *StoreHandler) GetStores(c *gin.Context) {
	var q ListQuery
	c.ShouldBindQuery(&q)
	q.GetPageOffset()

	stores, total, err := h.service.GetStores(q.toParams())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}

	response.Success(c, utils.NewPageResult(stores, total, q.Page, q.Limit))
}

// GetStore 后台商家详情
func (h *StoreHandler) GetStore(c *gin.Context) {
	store, err := h.service.GetStore(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, response.ErrResourceNotFound, "Store not found")
		return
	}
	response.Success(c, store)
}

// CreateStore 创建商家
func (h *StoreHandler) CreateStore(c *gin.Context) {
	var input StoreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	store, err := h.service.CreateStore(input.toServiceInput())
	if err != nil {
		if err.Error() == "slug already exists" {
			response.Error(c, http.StatusBadRequest, response.ErrDuplicateSlug, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}

	response.Success(c, store)
}

// UpdateStore 更新商家
func (h *StoreHandler) UpdateStore(c *gin.Context) {
	var input StoreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	store, err := h.service.UpdateStore(c.Param("id"), input.toServiceInput())
	if err != nil {
		switch err.Error() {
		case "record not found":
			response.Error(c, http.StatusNotFound, response.ErrResourceNotFound, "Store not found")
		case "slug already exists":
			response.Error(c, http.StatusBadRequest, response.ErrDuplicateSlug, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		}
		return
	}

	response.Success(c, store)
}

// DeleteStore 删除商家
func (h *StoreHandler) DeleteStore(c *gin.Context) {
	if err := h.service.DeleteStore(c.Param("id")); err != nil {
		if err.Error() == "store not found" {
			response.Error(c, http.StatusNotFound, response.ErrResourceNotFound, "Store not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}
	response.Success(c, "store deleted")
}
