package handler

import (
	"net/http"

	"onlinedaku/internal/domain/blog/service"
	"onlinedaku/internal/pkg/middleware"
	"onlinedaku/pkg/response"
	"onlinedaku/pkg/utils"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	service service.BlogService
}

func NewBlogHandler(s service.BlogService) *BlogHandler {
	return &BlogHandler{service: s}
}

type ListQuery struct {
	utils.Pagination
	Search string `form:"search"`
	Tag    string `form:"tag"`
}

func (q *ListQuery) toParams() service.ListParams {
	return service.ListParams{
		Page:   q.Page,
		Limit:  q.Limit,
		Search: q.Search,
		Tag:    q.Tag,
	}
}

type BlogInput struct {
	Title       string   `json:"title" binding:"required"`
	Slug        string   `json:"slug"`
	Content     string   `json:"content" binding:"required"`
	Excerpt     string   `json:"excerpt"`
	CoverImage  string   `json:"coverImage"`
	Tags        []string `json:"tags"`
	IsPublished bool     `json:"isPublished"`
}

func (in *BlogInput) toServiceInput() service.BlogInput {
	return service.BlogInput{
		Title:       in.Title,
		Slug:        in.Slug,
		Content:     in.Content,
		Excerpt:     in.Excerpt,
		CoverImage:  in.CoverImage,
		Tags:        in.Tags,
		IsPublished: in.IsPublished,
	}
}

// GetPublishedBlogs 前台文章列表
// @Summary 前台文章列表
// @Tags Blog
// @Success 200 {object} utils.PageResult
// @Router /api/blogs [get]
func (h *BlogHandler) GetPublishedBlogs(c *gin.Context) {
	var q ListQuery
	c.ShouldBindQuery(&q)
	q.GetPageOffset()

	blogs, total, err := h.service.GetPublishedBlogs(q.toParams())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}

	response.Success(c, utils.NewPageResult(blogs, total, q.Page, q.Limit))
}

// GetPublishedBlogBySlug 按 slug 查询已发布文章
func (h *BlogHandler) GetPublishedBlogBySlug(c *gin.Context) {
	blog, err := h.service.GetPublishedBlogBySlug(c.Param("slug"))
	if err != nil {
		response.Error(c, http.StatusNotFound, response.ErrResourceNotFound, "Blog not found")
		return
	}
	response.Success(c, blog)
}

// GetBlogs 后台文章列表
func (h *BlogHandler) GetBlogs(c *gin.Context) {
	var q ListQuery
	c.ShouldBindQuery(&q)
	q.GetPageOffset()

	blogs, total, err := h.service.GetBlogs(q.toParams())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}

	response.Success(c, utils.NewPageResult(blogs, total, q.Page, q.Limit))
}

// GetBlog 后台文章详情
func (h *BlogHandler) GetBlog(c *gin.Context) {
	blog, err := h.service.GetBlog(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, response.ErrResourceNotFound, "Blog not found")
		return
	}
	response.Success(c, blog)
}

// CreateBlog 创建文章
func (h *BlogHandler) CreateBlog(c *gin.Context) {
	var input BlogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	admin := middleware.CurrentAdmin(c)
	blog, err := h.service.CreateBlog(input.toServiceInput(), admin.ID)
	if err != nil {
		if err.Error() == "slug already exists" {
			response.Error(c, http.StatusBadRequest, response.ErrDuplicateSlug, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}

	response.Success(c, blog)
}

// UpdateBlog 更新文章
func (h *BlogHandler) UpdateBlog(c *gin.Context) {
	var input BlogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	blog, err := h.service.UpdateBlog(c.Param("id"), input.toServiceInput())
	if err != nil {
		switch err.Error() {
		case "record not found":
			response.Error(c, http.StatusNotFound, response.ErrResourceNotFound, "Blog not found")
		case "slug already exists":
			response.Error(c, http.StatusBadRequest, response.ErrDuplicateSlug, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		}
		return
	}

	response.Success(c, blog)
}

// DeleteBlog 删除文章
func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	if err := h.service.DeleteBlog(c.Param("id")); err != nil {
		if err.Error() == "blog not found" {
			response.Error(c, http.StatusNotFound, response.ErrResourceNotFound, "Blog not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}
	response.Success(c, "blog deleted")
}
