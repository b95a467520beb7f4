package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"onlinedaku/internal/pkg/config"
	"onlinedaku/internal/pkg/middleware"
	"onlinedaku/internal/pkg/registry"
	"onlinedaku/internal/pkg/revalidate"
	"onlinedaku/internal/pkg/uploader"
	"onlinedaku/internal/pkg/worker"
	"onlinedaku/pkg/cache"
	"onlinedaku/pkg/database"
	"onlinedaku/pkg/logger"

	_ "onlinedaku/internal/domain/admin"
	_ "onlinedaku/internal/domain/analytics"
	_ "onlinedaku/internal/domain/blog"
	_ "onlinedaku/internal/domain/category"
	_ "onlinedaku/internal/domain/coupon"
	_ "onlinedaku/internal/domain/deal"
	_ "onlinedaku/internal/domain/extraction"
	_ "onlinedaku/internal/domain/freebie"
	_ "onlinedaku/internal/domain/newsletter"
	_ "onlinedaku/internal/domain/site"
	_ "onlinedaku/internal/domain/store"

	_ "onlinedaku/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title Online Daku API
// @version 1.0
// @description 优惠聚合站后端 API, 含前台公开接口与后台管理接口
// @BasePath /
func main() {
	// 1. 配置
	config.LoadConfig()
	if err := config.GlobalConfig.Validate(); err != nil {
		panic("invalid configuration: " + err.Error())
	}

	// 2. 日志
	logger.InitLogger(config.GlobalConfig.App.Debug)
	defer logger.Sync()

	// 3. 数据库与缓存
	db := database.InitDatabase()
	redisClient := database.InitRedis()
	cacheService := cache.NewRedisCache(redisClient, "onlinedaku:")

	sqlDB, err := db.DB()
	if err != nil {
		logger.Log.Fatal("failed to get sql.DB from gorm", zap.Error(err))
	}
	sqlxDB := sqlx.NewDb(sqlDB, "postgres")

	// 4. 后台任务池与页面刷新触发器
	pool := worker.NewPool(4, 256)
	pool.Start()
	revalidator := revalidate.NewTrigger(pool)

	// 5. OSS 上传器 (未配置时跳过, 上传接口返回错误)
	if config.GlobalConfig.OSS.AccessKeyID != "" {
		if err := uploader.InitUploader(); err != nil {
			logger.Log.Warn("oss uploader init failed, upload disabled", zap.Error(err))
		}
	}

	// 6. HTTP 引擎
	if config.GlobalConfig.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.MetricsMiddleware())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{config.GlobalConfig.App.PublicURL}
	if config.GlobalConfig.App.Debug {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowOrigins = nil
	}
	corsConfig.AllowCredentials = !corsConfig.AllowAllOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// 7. 模块初始化
	moduleCtx := &registry.ModuleContext{
		DB:          db,
		SQLX:        sqlxDB,
		Redis:       redisClient,
		Cache:       cacheService,
		Router:      router,
		Revalidator: revalidator,
	}
	if err := registry.InitModules(moduleCtx); err != nil {
		logger.Log.Fatal("failed to init modules", zap.Error(err))
	}

	// 8. 运维端点
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 9. 启动与优雅退出
	srv := &http.Server{
		Addr:    ":" + config.GlobalConfig.Server.Port,
		Handler: router,
	}

	go func() {
		logger.Log.Info("server starting", zap.String("port", config.GlobalConfig.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("server shutdown error", zap.Error(err))
	}
}
