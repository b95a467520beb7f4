package middleware

import (
	"net/http"
	"strings"

	"onlinedaku/internal/domain/admin/model"
	"onlinedaku/pkg/response"
	"onlinedaku/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AdminLoader 认证中间件通过它加载发起请求的管理员
type AdminLoader interface {
	GetActiveByID(id string) (*model.Admin, error)
}

var adminLoader AdminLoader

// InitAuth 注入管理员加载器（admin 模块初始化时调用，优先级最高）
func InitAuth(loader AdminLoader) {
	adminLoader = loader
}

// 从 Header 或 httpOnly cookie 中取出 bearer token
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}

	if cookie, err := c.Cookie("admin_token"); err == nil {
		return cookie
	}
	return ""
}

// AuthMiddleware 管理员认证中间件：验签 + 加载管理员 + 检查启用状态
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, response.ErrTokenInvalid, "Authentication required")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, response.ErrTokenInvalid, "Invalid or expired token")
			c.Abort()
			return
		}

		if adminLoader == nil {
			response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Auth not initialized")
			c.Abort()
			return
		}

		admin, err := adminLoader.GetActiveByID(claims.AdminID)
		if err != nil || admin == nil {
			// 不区分"不存在"和"已停用"，避免泄露账号状态
			response.Error(c, http.StatusUnauthorized, response.ErrAccountDisabled, "Account not found or deactivated")
			c.Abort()
			return
		}

		c.Set("adminID", admin.ID)
		c.Set("adminRole", admin.Role)
		c.Set("admin", admin)

		c.Next()
	}
}

// RequirePermission 统一权限检查：super_admin 放行，其余检查权限列表
func RequirePermission(perm model.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, exists := c.Get("admin")
		if !exists {
			response.Error(c, http.StatusUnauthorized, response.ErrTokenInvalid, "Authentication required")
			c.Abort()
			return
		}

		admin, ok := val.(*model.Admin)
		if !ok {
			response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Invalid admin context")
			c.Abort()
			return
		}

		if !admin.HasPermission(perm) {
			response.Error(c, http.StatusForbidden, response.ErrNoPermission, "Permission required: "+string(perm))
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentAdmin 从上下文取出已认证的管理员
func CurrentAdmin(c *gin.Context) *model.Admin {
	val, _ := c.Get("admin")
	if admin, ok := val.(*model.Admin); ok {
		return admin
	}
	return nil
}
