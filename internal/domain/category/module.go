package category

import (
	adminModel "onlinedaku/internal/domain/admin/model"
	"onlinedaku/internal/domain/category/handler"
	"onlinedaku/internal/domain/category/repository"
	"onlinedaku/internal/domain/category/service"
	"onlinedaku/internal/pkg/middleware"
	"onlinedaku/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// CategoryModule 分类模块
type CategoryModule struct{}

// Service 暴露给 deal/coupon/freebie 模块做分类过滤解析
var Service service.CategoryService

func init() {
	registry.Register(&CategoryModule{})
}

func (m *CategoryModule) Name() string {
	return "category"
}

func (m *CategoryModule) Priority() int {
	// 内容模块的查询构建依赖分类解析，先于它们初始化
	return 2
}

func (m *CategoryModule) Init(ctx *registry.ModuleContext) error {
	categoryRepo := repository.NewCategoryRepository(ctx.DB)
	Service = service.NewCategoryService(categoryRepo)
	categoryHandler := handler.NewCategoryHandler(Service)

	setupRoutes(ctx.Router, categoryHandler)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.CategoryHandler) {
	// 公开路由
	r.GET("/api/categories", h.GetTree)

	// 后台路由
	adminGroup := r.Group("/api/admin/categories")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.RequirePermission(adminModel.PermissionManageCategories))
	{
		adminGroup.GET("", h.GetCategories)
		adminGroup.POST("", h.CreateCategory)
		adminGroup.PUT("/:id", h.UpdateCategory)
		adminGroup.DELETE("/:id", h.DeleteCategory)
	}
}
