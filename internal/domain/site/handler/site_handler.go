package handler

import (
	"net/http"
	"time"

	"onlinedaku/internal/domain/site/service"
	"onlinedaku/pkg/response"

	"github.com/gin-gonic/gin"
)

type SiteHandler struct {
	service service.SiteService
}

func NewSiteHandler(s service.SiteService) *SiteHandler {
	return &SiteHandler{service: s}
}

type BannerInput struct {
	Title        string     `json:"title" binding:"required"`
	Image        string     `json:"image" binding:"required"`
	Link         string     `json:"link"`
	Position     string     `json:"position"`
	DisplayOrder int        `json:"displayOrder"`
	IsActive     bool       `json:"isActive"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
}

func (in *BannerInput) toServiceInput() service.BannerInput {
	return service.BannerInput{
		Title:        in.Title,
		Image:        in.Image,
		Link:         in.Link,
		Position:     in.Position,
		DisplayOrder: in.DisplayOrder,
		IsActive:     in.IsActive,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
	}
}

type SettingInput struct {
	Key      string `json:"key" binding:"required"`
	Value    string `json:"value"`
	Group    string `json:"group"`
	IsPublic bool   `json:"isPublic"`
}

// GetLiveBanners 前台横幅
// @Summary 前台横幅列表
// @Tags Site
// @Router /api/banners [get]
func (h *SiteHandler) GetLiveBanners(c *gin.Context) {
	banners, err := h.service.GetLiveBanners()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}
	response.Success(c, banners)
}

// GetPublicSettings 前台站点配置
func (h *SiteHandler) GetPublicSettings(c *gin.Context) {
	settings, err := h.service.GetPublicSettings()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}
	response.Success(c, settings)
}

// GetBanners 后台横幅列表
func (h *SiteHandler) GetBanners(c *gin.Context) {
	banners, err := h.service.GetBanners()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}
	response.Success(c, banners)
}

// CreateBanner 创建横幅
func (h *SiteHandler) CreateBanner(c *gin.Context) {
	var input BannerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	banner, err := h.service.CreateBanner(input.toServiceInput())
	if err != nil {
		if err.Error() == "end date must be after start date" {
			response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}

	response.Success(c, banner)
}

// UpdateBanner 更新横幅
func (h *SiteHandler) UpdateBanner(c *gin.Context) {
	var input BannerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	banner, err := h.service.UpdateBanner(c.Param("id"), input.toServiceInput())
	if err != nil {
		switch err.Error() {
		case "record not found":
			response.Error(c, http.StatusNotFound, response.ErrResourceNotFound, "Banner not found")
		case "end date must be after start date":
			response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		}
		return
	}

	response.Success(c, banner)
}

// DeleteBanner 删除横幅
func (h *SiteHandler) DeleteBanner(c *gin.Context) {
	if err := h.service.DeleteBanner(c.Param("id")); err != nil {
		if err.Error() == "banner not found" {
			response.Error(c, http.StatusNotFound, response.ErrResourceNotFound, "Banner not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}
	response.Success(c, "banner deleted")
}

// GetSettings 后台配置列表
func (h *SiteHandler) GetSettings(c *gin.Context) {
	settings, err := h.service.GetSettings()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}
	response.Success(c, settings)
}

// SetSetting 写入配置项
func (h *SiteHandler) SetSetting(c *gin.Context) {
	var input SettingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	setting, err := h.service.SetSetting(input.Key, input.Value, input.Group, input.IsPublic)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}

	response.Success(c, setting)
}

// DeleteSetting 删除配置项
func (h *SiteHandler) DeleteSetting(c *gin.Context) {
	if err := h.service.DeleteSetting(c.Param("key")); err != nil {
		if err.Error() == "setting not found" {
			response.Error(c, http.StatusNotFound, response.ErrResourceNotFound, "Setting not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}
	response.Success(c, "setting deleted")
}
