package middleware

import (
	"strconv"
	"time"

	"onlinedaku/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware 记录每个请求的 Prometheus 指标
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// 使用路由模板而不是真实路径，避免 :id 造成标签爆炸
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		metrics.Default().RecordHTTPRequest(
			c.Request.Method,
			endpoint,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
		)
	}
}
