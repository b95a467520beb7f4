package store

import (
	adminModel "onlinedaku/internal/domain/admin/model"
	"onlinedaku/internal/domain/store/handler"
	"onlinedaku/internal/domain/store/repository"
	"onlinedaku/internal/domain/store/service"
	"onlinedaku/internal/pkg/middleware"
	"onlinedaku/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// StoreModule 商家模块
type StoreModule struct{}

func init() {
	registry.Register(&StoreModule{})
}

func (m *StoreModule) Name() string {
	return "store"
}

func (m *StoreModule) Priority() int {
	return 13
}

func (m *StoreModule) Init(ctx *registry.ModuleContext) error {
	storeRepo := repository.NewStoreRepository(ctx.DB)
	storeService := service.NewStoreService(storeRepo, ctx.Revalidator)
	storeHandler := handler.NewStoreHandler(storeService)

	setupRoutes(ctx.Router, storeHandler)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.StoreHandler) {
	// 公开路由
	r.GET("/api/stores", h.GetActiveStores)
	r.GET("/api/stores/:slug", h.GetStoreBySlug)

	// 后台路由
	adminGroup := r.Group("/api/admin/stores")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.RequirePermission(adminModel.PermissionManageStores))
	{
		adminGroup.GET("", h.GetStores)
		adminGroup.GET("/:id", h.GetStore)
		adminGroup.POST("", h.CreateStore)
		adminGroup.PUT("/:id", h.UpdateStore)
		adminGroup.DELETE("/:id", h.DeleteStore)
	}
}
