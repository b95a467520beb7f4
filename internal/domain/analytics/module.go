package analytics

import (
	adminModel "onlinedaku/internal/domain/admin/model"
	"onlinedaku/internal/domain/analytics/handler"
	"onlinedaku/internal/domain/analytics/repository"
	"onlinedaku/internal/domain/analytics/service"
	"onlinedaku/internal/pkg/middleware"
	"onlinedaku/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// AnalyticsModule 统计模块
type AnalyticsModule struct{}

func init() {
	registry.Register(&AnalyticsModule{})
}

func (m *AnalyticsModule) Name() string {
	return "analytics"
}

func (m *AnalyticsModule) Priority() int {
	return 15
}

func (m *AnalyticsModule) Init(ctx *registry.ModuleContext) error {
	analyticsRepo := repository.NewAnalyticsRepository(ctx.DB)
	analyticsService := service.NewAnalyticsService(analyticsRepo)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)

	setupRoutes(ctx.Router, analyticsHandler)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.AnalyticsHandler) {
	// 事件上报为公开接口, 限流防刷
	limiter := middleware.NewIPRateLimiter(5, 10)
	r.POST("/api/deals/:id/track", middleware.RateLimitMiddleware(limiter), h.TrackEvent)

	// 后台统计
	adminGroup := r.Group("/api/admin/analytics")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.RequirePermission(adminModel.PermissionViewAnalytics))
	{
		adminGroup.GET("/deals/top", h.GetTopDeals)
		adminGroup.GET("/deals/:id", h.GetDealStats)
	}
}
