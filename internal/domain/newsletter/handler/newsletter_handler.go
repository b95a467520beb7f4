package handler

import (
	"net/http"

	"onlinedaku/internal/domain/newsletter/service"
	"onlinedaku/pkg/response"
	"onlinedaku/pkg/utils"

	"github.com/gin-gonic/gin"
)

type NewsletterHandler struct {
	service service.NewsletterService
}

func NewNewsletterHandler(s service.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{service: s}
}

type SubscribeInput struct {
	Email string `json:"email" binding:"required,email"`
}

// Subscribe 订阅
// @Summary 订阅邮件
// @Tags Newsletter
// @Router /api/newsletter/subscribe [post]
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var input SubscribeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	sub, err := h.service.Subscribe(input.Email)
	if err != nil {
		if err.Error() == "email already subscribed" {
			response.Error(c, http.StatusBadRequest, response.ErrDuplicateEmail, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}

	response.Success(c, sub)
}

// Unsubscribe 退订
func (h *NewsletterHandler) Unsubscribe(c *gin.Context) {
	var input SubscribeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	if err := h.service.Unsubscribe(input.Email); err != nil {
		if err.Error() == "subscriber not found" {
			response.Error(c, http.StatusNotFound, response.ErrResourceNotFound, "Subscriber not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}

	response.Success(c, "unsubscribed")
}

type ListQuery struct {
	utils.Pagination
	Active *bool `form:"active"`
}

// GetSubscribers 后台订阅用户列表
func (h *NewsletterHandler) GetSubscribers(c *gin.Context) {
	var q ListQuery
	c.ShouldBindQuery(&q)
	q.GetPageOffset()

	activeOnly := q.Active != nil && *q.Active
	subs, total, err := h.service.GetSubscribers(activeOnly, q.Page, q.Limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}

	response.Success(c, utils.NewPageResult(subs, total, q.Page, q.Limit))
}

// DeleteSubscriber 删除订阅用户
func (h *NewsletterHandler) DeleteSubscriber(c *gin.Context) {
	if err := h.service.DeleteSubscriber(c.Param("id")); err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}
	response.Success(c, "subscriber deleted")
}
