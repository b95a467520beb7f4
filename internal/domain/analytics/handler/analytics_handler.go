package handler

import (
	"net/http"
	"strconv"
	"time"

	"onlinedaku/internal/domain/analytics/service"
	"onlinedaku/pkg/response"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	service service.AnalyticsService
}

func NewAnalyticsHandler(s service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: s}
}

type TrackInput struct {
	Event string `json:"event" binding:"required"`
}

// TrackEvent 前台事件上报
// @Summary 优惠事件上报
// @Tags Analytics
// @Router /api/deals/{id}/track [post]
func (h *AnalyticsHandler) TrackEvent(c *gin.Context) {
	var input TrackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	if err := h.service.TrackEvent(c.Param("id"), input.Event); err != nil {
		if err.Error() == "invalid event type" {
			response.Error(c, http.StatusBadRequest, response.ErrInvalidEvent, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}

	response.Success(c, "tracked")
}

// GetDealStats 单个优惠统计
func (h *AnalyticsHandler) GetDealStats(c *gin.Context) {
	// 默认统计最近 30 天
	to := time.Now()
	from := to.AddDate(0, 0, -30)

	if v := c.Query("from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			from = t
		}
	}
	if v := c.Query("to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			to = t
		}
	}

	stats, err := h.service.GetDealStats(c.Param("id"), from, to)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}

	response.Success(c, stats)
}

// GetTopDeals 热门优惠排行
func (h *AnalyticsHandler) GetTopDeals(c *gin.Context) {
	limit := 10
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	list, err := h.service.GetTopDeals(limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}

	response.Success(c, list)
}
