package coupon

import (
	adminModel "onlinedaku/internal/domain/admin/model"
	"onlinedaku/internal/domain/category"
	"onlinedaku/internal/domain/coupon/handler"
	"onlinedaku/internal/domain/coupon/repository"
	"onlinedaku/internal/domain/coupon/service"
	"onlinedaku/internal/pkg/middleware"
	"onlinedaku/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// CouponModule 优惠券模块
type CouponModule struct{}

func init() {
	registry.Register(&CouponModule{})
}

func (m *CouponModule) Name() string {
	return "coupon"
}

func (m *CouponModule) Priority() int {
	return 11
}

func (m *CouponModule) Init(ctx *registry.ModuleContext) error {
	couponRepo := repository.NewCouponRepository(ctx.DB)
	couponService := service.NewCouponService(couponRepo, category.Service, ctx.Revalidator)
	couponHandler := handler.NewCouponHandler(couponService)

	setupRoutes(ctx.Router, couponHandler)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.CouponHandler) {
	// 公开路由
	r.GET("/api/coupons", h.GetLiveCoupons)
	r.GET("/api/coupons/:id", h.GetCoupon)

	// 后台路由
	adminGroup := r.Group("/api/admin/coupons")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.RequirePermission(adminModel.PermissionManageCoupons))
	{
		adminGroup.GET("", h.GetCoupons)
		adminGroup.POST("", h.CreateCoupon)
		adminGroup.PUT("/:id", h.UpdateCoupon)
		adminGroup.DELETE("/:id", h.DeleteCoupon)
	}
}
