package newsletter

import (
	adminModel "onlinedaku/internal/domain/admin/model"
	"onlinedaku/internal/domain/newsletter/handler"
	"onlinedaku/internal/domain/newsletter/repository"
	"onlinedaku/internal/domain/newsletter/service"
	"onlinedaku/internal/pkg/middleware"
	"onlinedaku/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// NewsletterModule 邮件订阅模块
type NewsletterModule struct{}

func init() {
	registry.Register(&NewsletterModule{})
}

func (m *NewsletterModule) Name() string {
	return "newsletter"
}

func (m *NewsletterModule) Priority() int {
	return 16
}

func (m *NewsletterModule) Init(ctx *registry.ModuleContext) error {
	subRepo := repository.NewSubscriberRepository(ctx.DB)
	newsletterService := service.NewNewsletterService(subRepo)
	newsletterHandler := handler.NewNewsletterHandler(newsletterService)

	setupRoutes(ctx.Router, newsletterHandler)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.NewsletterHandler) {
	// 公开路由, 限流防刷
	limiter := middleware.NewIPRateLimiter(2, 5)
	r.POST("/api/newsletter/subscribe", middleware.RateLimitMiddleware(limiter), h.Subscribe)
	r.POST("/api/newsletter/unsubscribe", middleware.RateLimitMiddleware(limiter), h.Unsubscribe)

	// 后台路由
	adminGroup := r.Group("/api/admin/newsletter")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.RequirePermission(adminModel.PermissionManageNewsletter))
	{
		adminGroup.GET("/subscribers", h.GetSubscribers)
		adminGroup.DELETE("/subscribers/:id", h.DeleteSubscriber)
	}
}
