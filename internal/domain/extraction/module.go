package extraction

import (
	"time"

	adminModel "onlinedaku/internal/domain/admin/model"
	"onlinedaku/internal/domain/extraction/handler"
	"onlinedaku/internal/domain/extraction/service"
	"onlinedaku/internal/pkg/config"
	"onlinedaku/internal/pkg/middleware"
	"onlinedaku/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// ExtractionModule 商品抓取模块
type ExtractionModule struct{}

func init() {
	registry.Register(&ExtractionModule{})
}

func (m *ExtractionModule) Name() string {
	return "extraction"
}

func (m *ExtractionModule) Priority() int {
	return 18
}

func (m *ExtractionModule) Init(ctx *registry.ModuleContext) error {
	cfg := config.GlobalConfig.Extraction
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second

	scrapers := []service.Scraper{}
	if cfg.APIURL != "" && cfg.APIKey != "" {
		scrapers = append(scrapers, service.NewAPIScraper(cfg.APIURL, cfg.APIKey, timeout))
	}
	scrapers = append(scrapers, service.NewHTMLScraper(timeout))

	extractionService := service.NewExtractionService(scrapers...)
	extractionHandler := handler.NewExtractionHandler(extractionService)

	setupRoutes(ctx.Router, extractionHandler)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.ExtractionHandler) {
	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.RequirePermission(adminModel.PermissionManageDeals))
	{
		adminGroup.POST("/extract", h.ExtractProduct)
	}
}
