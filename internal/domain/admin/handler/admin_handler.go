package handler

import (
	"net/http"

	"onlinedaku/internal/domain/admin/model"
	"onlinedaku/internal/domain/admin/repository"
	"onlinedaku/internal/domain/admin/service"
	"onlinedaku/internal/pkg/middleware"
	"onlinedaku/pkg/response"
	"onlinedaku/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	service   service.AdminService
	dashboard repository.DashboardRepository
}

func NewAdminHandler(s service.AdminService, dashboard repository.DashboardRepository) *AdminHandler {
	return &AdminHandler{service: s, dashboard: dashboard}
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateAdminInput struct {
	Email       string             `json:"email" binding:"required,email"`
	Password    string             `json:"password" binding:"required,min=8"`
	Role        string             `json:"role" binding:"required,oneof=admin super_admin"`
	Permissions []model.Permission `json:"permissions"`
}

type UpdateAdminInput struct {
	Role        *string            `json:"role"`
	Permissions []model.Permission `json:"permissions"`
	IsActive    *bool              `json:"isActive"`
}

// Login 管理员登录
// @Summary 管理员登录
// @Tags Admin
// @Accept json
// @Produce json
// @Param input body LoginInput true "登录凭证"
// @Success 200 {object} response.Response
// @Router /api/admin/auth/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	token, admin, err := h.service.Login(input.Email, input.Password, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		if err.Error() == "invalid email or password" || err.Error() == "account is disabled" {
			response.Error(c, http.StatusUnauthorized, response.ErrAuthFailed, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}

	// httpOnly cookie 维持后台会话，Header Bearer 同样有效
	c.SetCookie("admin_token", token, 24*3600, "/", "", false, true)

	response.Success(c, gin.H{
		"token": token,
		"admin": admin,
	})
}

// Logout 退出登录（清除 cookie）
func (h *AdminHandler) Logout(c *gin.Context) {
	c.SetCookie("admin_token", "", -1, "/", "", false, true)
	response.Success(c, "logged out")
}

// Me 当前登录管理员
// @Summary 当前登录管理员
// @Tags Admin
// @Success 200 {object} model.Admin
// @Router /api/admin/me [get]
func (h *AdminHandler) Me(c *gin.Context) {
	admin := middleware.CurrentAdmin(c)
	if admin == nil {
		response.Error(c, http.StatusUnauthorized, response.ErrTokenInvalid, "Not authenticated")
		return
	}
	response.Success(c, admin)
}

// Dashboard 后台首页概览
// @Summary 后台首页概览
// @Tags Admin
// @Success 200 {object} response.Response
// @Router /api/admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.dashboard.GetStats()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}

	topDeals, err := h.dashboard.GetTopDeals(5)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}

	response.Success(c, gin.H{
		"stats":    stats,
		"topDeals": topDeals,
	})
}

// GetAdmins 管理员列表
func (h *AdminHandler) GetAdmins(c *gin.Context) {
	var p utils.Pagination
	c.ShouldBindQuery(&p)
	p.GetPageOffset() // 规范化 page/limit

	admins, total, err := h.service.GetAdmins(p.Page, p.Limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}

	response.Success(c, utils.NewPageResult(admins, total, p.Page, p.Limit))
}

// CreateAdmin 创建管理员
func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	var input CreateAdminInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	admin, err := h.service.CreateAdmin(input.Email, input.Password, input.Role, input.Permissions)
	if err != nil {
		if err.Error() == "email already registered" {
			response.Error(c, http.StatusBadRequest, response.ErrDuplicateEmail, err.Error())
			return
		}
		if err.Error() == "invalid role" {
			response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}

	if actor := middleware.CurrentAdmin(c); actor != nil {
		h.service.LogAction(actor.ID, "create_admin", admin.Email, c.ClientIP(), c.Request.UserAgent())
	}

	response.Success(c, admin)
}

// UpdateAdmin 更新管理员
func (h *AdminHandler) UpdateAdmin(c *gin.Context) {
	id := c.Param("id")

	var input UpdateAdminInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	admin, err := h.service.UpdateAdmin(id, input.Role, input.Permissions, input.IsActive)
	if err != nil {
		if err.Error() == "record not found" {
			response.Error(c, http.StatusNotFound, response.ErrAdminNotFound, "Admin not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}

	response.Success(c, admin)
}

// DeleteAdmin 停用管理员
func (h *AdminHandler) DeleteAdmin(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.DeactivateAdmin(id); err != nil {
		if err.Error() == "record not found" {
			response.Error(c, http.StatusNotFound, response.ErrAdminNotFound, "Admin not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}

	response.Success(c, "admin deactivated")
}

// GetActivities 操作日志
func (h *AdminHandler) GetActivities(c *gin.Context) {
	var p utils.Pagination
	c.ShouldBindQuery(&p)
	p.GetPageOffset()
	adminID := c.Query("adminId")

	activities, total, err := h.service.GetActivities(adminID, p.Page, p.Limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}

	response.Success(c, utils.NewPageResult(activities, total, p.Page, p.Limit))
}
