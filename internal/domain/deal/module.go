package deal

import (
	adminModel "onlinedaku/internal/domain/admin/model"
	"onlinedaku/internal/domain/category"
	"onlinedaku/internal/domain/deal/handler"
	"onlinedaku/internal/domain/deal/repository"
	"onlinedaku/internal/domain/deal/service"
	"onlinedaku/internal/pkg/middleware"
	"onlinedaku/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// DealModule 优惠模块
type DealModule struct{}

func init() {
	registry.Register(&DealModule{})
}

func (m *DealModule) Name() string {
	return "deal"
}

func (m *DealModule) Priority() int {
	return 10
}

func (m *DealModule) Init(ctx *registry.ModuleContext) error {
	dealRepo := repository.NewDealRepository(ctx.DB)
	dealService := service.NewDealService(dealRepo, category.Service, ctx.Revalidator)
	// 前台读路径带 Redis 缓存
	cachedService := service.NewCachedDealService(dealService, ctx.Cache)
	dealHandler := handler.NewDealHandler(cachedService)

	setupRoutes(ctx.Router, dealHandler)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.DealHandler) {
	// 公开路由
	r.GET("/api/deals", h.GetLiveDeals)
	r.GET("/api/deals/:id", h.GetDeal)

	// 后台路由
	adminGroup := r.Group("/api/admin/deals")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.RequirePermission(adminModel.PermissionManageDeals))
	{
		adminGroup.GET("", h.GetDeals)
		adminGroup.POST("", h.CreateDeal)
		adminGroup.PUT("/:id", h.UpdateDeal)
		adminGroup.DELETE("/:id", h.DeleteDeal)
	}
}
