package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	baseModel "onlinedaku/pkg/model"
)

// 管理员角色
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin" // 隐式拥有全部权限
)

// Permission 后台操作权限
type Permission string

const (
	PermissionManageDeals      Permission = "manage_deals"
	PermissionManageCoupons    Permission = "manage_coupons"
	PermissionManageFreebies   Permission = "manage_freebies"
	PermissionManageStores     Permission = "manage_stores"
	PermissionManageCategories Permission = "manage_categories"
	PermissionManageBlogs      Permission = "manage_blogs"
	PermissionManageUsers      Permission = "manage_users"
	PermissionManageNewsletter Permission = "manage_newsletter"
	PermissionManageSettings   Permission = "manage_settings"
	PermissionViewAnalytics    Permission = "view_analytics"
)

// AllPermissions 权限全集，创建管理员时校验输入
var AllPermissions = []Permission{
	PermissionManageDeals,
	PermissionManageCoupons,
	PermissionManageFreebies,
	PermissionManageStores,
	PermissionManageCategories,
	PermissionManageBlogs,
	PermissionManageUsers,
	PermissionManageNewsletter,
	PermissionManageSettings,
	PermissionViewAnalytics,
}

// PermissionList jsonb 存储的权限集合
type PermissionList []Permission

func (p PermissionList) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *PermissionList) Scan(value interface{}) error {
	if value == nil {
		*p = PermissionList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return errors.New("unsupported type for PermissionList")
	}
}

// Contains 检查集合中是否包含指定权限
func (p PermissionList) Contains(perm Permission) bool {
	for _, item := range p {
		if item == perm {
			return true
		}
	}
	return false
}

// Admin 后台管理员
type Admin struct {
	baseModel.BaseModel
	Email        string         `gorm:"unique;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"` // 密码哈希不返回给前端
	Role         string         `gorm:"type:varchar(20);default:'admin'" json:"role"`
	Permissions  PermissionList `gorm:"type:jsonb;default:'[]'" json:"permissions"`
	IsActive     bool           `gorm:"default:true" json:"isActive"`
	LastLogin    *time.Time     `json:"lastLogin,omitempty"`
}

// HasPermission super_admin 无视存储的权限列表
func (a *Admin) HasPermission(perm Permission) bool {
	if a.Role == RoleSuperAdmin {
		return true
	}
	return a.Permissions.Contains(perm)
}

// AdminActivity 管理员操作日志（只追加）
type AdminActivity struct {
	baseModel.BaseModel
	AdminID   string `gorm:"index;not null" json:"adminId"`
	Action    string `gorm:"not null" json:"action"` // login, create_deal, ...
	Detail    string `json:"detail"`
	IP        string `json:"ip"`
	UserAgent string `json:"userAgent"`
}
