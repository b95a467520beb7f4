package freebie

import (
	adminModel "onlinedaku/internal/domain/admin/model"
	"onlinedaku/internal/domain/category"
	"onlinedaku/internal/domain/freebie/handler"
	"onlinedaku/internal/domain/freebie/repository"
	"onlinedaku/internal/domain/freebie/service"
	"onlinedaku/internal/pkg/middleware"
	"onlinedaku/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// FreebieModule 免费活动模块
type FreebieModule struct{}

func init() {
	registry.Register(&FreebieModule{})
}

func (m *FreebieModule) Name() string {
	return "freebie"
}

func (m *FreebieModule) Priority() int {
	return 12
}

func (m *FreebieModule) Init(ctx *registry.ModuleContext) error {
	freebieRepo := repository.NewFreebieRepository(ctx.DB)
	freebieService := service.NewFreebieService(freebieRepo, category.Service, ctx.Revalidator)
	freebieHandler := handler.NewFreebieHandler(freebieService)

	setupRoutes(ctx.Router, freebieHandler)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.FreebieHandler) {
	// 公开路由
	r.GET("/api/freebies", h.GetLiveFreebies)
	r.GET("/api/freebies/:id", h.GetFreebie)

	// 后台路由
	adminGroup := r.Group("/api/admin/freebies")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.RequirePermission(adminModel.PermissionManageFreebies))
	{
		adminGroup.GET("", h.GetFreebies)
		adminGroup.POST("", h.CreateFreebie)
		adminGroup.PUT("/:id", h.UpdateFreebie)
		adminGroup.DELETE("/:id", h.DeleteFreebie)
	}
}
