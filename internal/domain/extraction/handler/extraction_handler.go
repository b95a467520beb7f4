package handler

import (
	"errors"
	"net/http"

	"onlinedaku/internal/domain/extraction/service"
	"onlinedaku/pkg/response"

	"github.com/gin-gonic/gin"
)

type ExtractionHandler struct {
	service service.ExtractionService
}

func NewExtractionHandler(s service.ExtractionService) *ExtractionHandler {
	return &ExtractionHandler{service: s}
}

type ExtractInput struct {
	URL string `json:"url" binding:"required"`
}

// ExtractProduct 商品信息抓取
// @Summary 从商品链接抓取信息
// @Tags Extraction
// @Router /api/admin/extract [post]
func (h *ExtractionHandler) ExtractProduct(c *gin.Context) {
	var input ExtractInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	result, err := h.service.ExtractProduct(c.Request.Context(), input.URL)
	if err != nil {
		if errors.Is(err, service.ErrInvalidProductURL) {
			response.Error(c, http.StatusBadRequest, response.ErrInvalidURL, err.Error())
			return
		}
		// 上游抓取失败, 返回 502 并携带可推断的部分信息
		c.JSON(http.StatusBadGateway, gin.H{
			"code":    response.ErrExtractionFailed,
			"message": err.Error(),
			"data":    result,
		})
		return
	}

	response.Success(c, result)
}
