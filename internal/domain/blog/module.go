package blog

import (
	adminModel "onlinedaku/internal/domain/admin/model"
	"onlinedaku/internal/domain/blog/handler"
	"onlinedaku/internal/domain/blog/repository"
	"onlinedaku/internal/domain/blog/service"
	"onlinedaku/internal/pkg/middleware"
	"onlinedaku/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// BlogModule 博客模块
type BlogModule struct{}

func init() {
	registry.Register(&BlogModule{})
}

func (m *BlogModule) Name() string {
	return "blog"
}

func (m *BlogModule) Priority() int {
	return 14
}

func (m *BlogModule) Init(ctx *registry.ModuleContext) error {
	blogRepo := repository.NewBlogRepository(ctx.DB)
	blogService := service.NewBlogService(blogRepo, ctx.Revalidator)
	blogHandler := handler.NewBlogHandler(blogService)

	setupRoutes(ctx.Router, blogHandler)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.BlogHandler) {
	// 公开路由
	r.GET("/api/blogs", h.GetPublishedBlogs)
	r.GET("/api/blogs/:slug", h.GetPublishedBlogBySlug)

	// 后台路由
	adminGroup := r.Group("/api/admin/blogs")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.RequirePermission(adminModel.PermissionManageBlogs))
	{
		adminGroup.GET("", h.GetBlogs)
		adminGroup.GET("/:id", h.GetBlog)
		adminGroup.POST("", h.CreateBlog)
		adminGroup.PUT("/:id", h.UpdateBlog)
		adminGroup.DELETE("/:id", h.DeleteBlog)
	}
}
