package site

import (
	adminModel "onlinedaku/internal/domain/admin/model"
	"onlinedaku/internal/domain/site/handler"
	"onlinedaku/internal/domain/site/repository"
	"onlinedaku/internal/domain/site/service"
	"onlinedaku/internal/pkg/middleware"
	"onlinedaku/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// SiteModule 站点模块, 横幅与全局配置
type SiteModule struct{}

func init() {
	registry.Register(&SiteModule{})
}

func (m *SiteModule) Name() string {
	return "site"
}

func (m *SiteModule) Priority() int {
	return 17
}

func (m *SiteModule) Init(ctx *registry.ModuleContext) error {
	siteRepo := repository.NewSiteRepository(ctx.DB)
	siteService := service.NewSiteService(siteRepo, ctx.Revalidator)
	siteHandler := handler.NewSiteHandler(siteService)

	setupRoutes(ctx.Router, siteHandler)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.SiteHandler) {
	// 公开路由
	r.GET("/api/banners", h.GetLiveBanners)
	r.GET("/api/settings", h.GetPublicSettings)

	// 后台路由
	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.RequirePermission(adminModel.PermissionManageSettings))
	{
		adminGroup.GET("/banners", h.GetBanners)
		adminGroup.POST("/banners", h.CreateBanner)
		adminGroup.PUT("/banners/:id", h.UpdateBanner)
		adminGroup.DELETE("/banners/:id", h.DeleteBanner)

		adminGroup.GET("/settings", h.GetSettings)
		adminGroup.PUT("/settings", h.SetSetting)
		adminGroup.DELETE("/settings/:key", h.DeleteSetting)
	}
}
