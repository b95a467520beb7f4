package handler

import (
	"net/http"

	"onlinedaku/internal/domain/category/service"
	"onlinedaku/pkg/response"
	"onlinedaku/pkg/utils"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	service service.CategoryService
}

func NewCategoryHandler(s service.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: s}
}

type CreateCategoryInput struct {
	Name         string  `json:"name" binding:"required"`
	Slug         string  `json:"slug"`
	ParentID     *string `json:"parentId"`
	DisplayOrder int     `json:"displayOrder"`
}

type UpdateCategoryInput struct {
	Name         *string `json:"name"`
	Slug         *string `json:"slug"`
	ParentID     *string `json:"parentId"`
	DisplayOrder *int    `json:"displayOrder"`
}

// GetTree 公开分类树
// @Summary 获取分类树
// @Tags Category
// @Success 200 {object} response.Response
// @Router /api/categories [get]
func (h *CategoryHandler) GetTree(c *gin.Context) {
	tree, err := h.service.GetTree()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}
	response.Success(c, tree)
}

// GetCategories 后台分类列表（平铺分页）
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	var p utils.Pagination
	c.ShouldBindQuery(&p)

	categories, total, err := h.service.GetCategories(p.Page, p.Limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}

	response.Success(c, utils.NewPageResult(categories, total, p.Page, p.Limit))
}

// CreateCategory 创建分类
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var input CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	category, err := h.service.CreateCategory(input.Name, input.Slug, input.ParentID, input.DisplayOrder)
	if err != nil {
		switch err.Error() {
		case "slug already exists":
			response.Error(c, http.StatusBadRequest, response.ErrDuplicateSlug, err.Error())
		case "parent category not found", "categories support only two levels", "cannot derive slug from name":
			response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		}
		return
	}

	response.Success(c, category)
}

// UpdateCategory 更新分类
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id := c.Param("id")

	var input UpdateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	category, err := h.service.UpdateCategory(id, input.Name, input.Slug, input.ParentID, input.DisplayOrder)
	if err != nil {
		switch err.Error() {
		case "record not found":
			response.Error(c, http.StatusNotFound, response.ErrResourceNotFound, "Category not found")
		case "slug already exists":
			response.Error(c, http.StatusBadRequest, response.ErrDuplicateSlug, err.Error())
		case "parent category not found", "categories support only two levels", "category cannot be its own parent":
			response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		}
		return
	}

	response.Success(c, category)
}

// DeleteCategory 删除分类
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.DeleteCategory(id); err != nil {
		if err.Error() == "category has children" {
			response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}

	response.Success(c, "category deleted")
}
