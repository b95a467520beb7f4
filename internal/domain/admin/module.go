package admin

import (
	"onlinedaku/internal/domain/admin/handler"
	"onlinedaku/internal/domain/admin/model"
	"onlinedaku/internal/domain/admin/repository"
	"onlinedaku/internal/domain/admin/service"
	"onlinedaku/internal/pkg/common"
	"onlinedaku/internal/pkg/middleware"
	"onlinedaku/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// AdminModule 后台管理员模块
type AdminModule struct{}

func init() {
	// 自动注册模块
	registry.Register(&AdminModule{})
}

func (m *AdminModule) Name() string {
	return "admin"
}

func (m *AdminModule) Priority() int {
	// 认证依赖本模块的仓库，必须最先初始化
	return 1
}

func (m *AdminModule) Init(ctx *registry.ModuleContext) error {
	// 1. 依赖注入
	adminRepo := repository.NewAdminRepository(ctx.DB)
	dashboardRepo := repository.NewDashboardRepository(ctx.SQLX)
	adminService := service.NewAdminService(adminRepo)
	adminHandler := handler.NewAdminHandler(adminService, dashboardRepo)

	// 2. 认证中间件注入管理员加载器
	middleware.InitAuth(adminRepo)

	// 3. 路由注册
	setupRoutes(ctx.Router, adminHandler)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.AdminHandler) {
	// 公开路由
	authGroup := r.Group("/api/admin/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/logout", h.Logout)
	}

	// 受保护的路由
	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.AuthMiddleware())
	{
		adminGroup.GET("/me", h.Me)
		adminGroup.GET("/dashboard", middleware.RequirePermission(model.PermissionViewAnalytics), h.Dashboard)

		users := adminGroup.Group("/admins")
		users.Use(middleware.RequirePermission(model.PermissionManageUsers))
		{
			users.GET("", h.GetAdmins)
			users.POST("", h.CreateAdmin)
			users.PUT("/:id", h.UpdateAdmin)
			users.DELETE("/:id", h.DeleteAdmin)
		}

		adminGroup.GET("/activities", middleware.RequirePermission(model.PermissionManageUsers), h.GetActivities)

		// 图片上传, 任意已登录管理员可用
		adminGroup.POST("/upload", common.UploadFile)
	}
}
