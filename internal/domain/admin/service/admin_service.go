package service

import (
	"errors"
	"time"

	"onlinedaku/internal/domain/admin/model"
	"onlinedaku/internal/domain/admin/repository"
	"onlinedaku/pkg/logger"
	"onlinedaku/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AdminService 管理员服务接口
type AdminService interface {
	Login(email, password, ip, userAgent string) (string, *model.Admin, error)
	GetAdmin(id string) (*model.Admin, error)
	GetAdmins(page, limit int) ([]model.Admin, int64, error)
	CreateAdmin(email, password, role string, permissions []model.Permission) (*model.Admin, error)
	UpdateAdmin(id string, role *string, permissions []model.Permission, isActive *bool) (*model.Admin, error)
	DeactivateAdmin(id string) error
	GetActivities(adminID string, page, limit int) ([]model.AdminActivity, int64, error)
	LogAction(adminID, action, detail, ip, userAgent string)
}

// adminService 实现
type adminService struct {
	repo repository.AdminRepository
}

// NewAdminService 创建管理员服务
func NewAdminService(repo repository.AdminRepository) AdminService {
	return &adminService{repo: repo}
}

// Login 邮箱密码登录，成功后更新最近登录时间并记录日志
func (s *adminService) Login(email, password, ip, userAgent string) (string, *model.Admin, error) {
	admin, err := s.repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 统一报错，不暴露邮箱是否注册
			return "", nil, errors.New("invalid email or password")
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", nil, errors.New("invalid email or password")
	}

	if !admin.IsActive {
		return "", nil, errors.New("account is disabled")
	}

	token, _, err := utils.GenerateToken(admin.ID, admin.Role)
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	if err := s.repo.UpdateLastLogin(admin.ID, now); err != nil {
		// 登录时间写失败不阻塞登录
		logger.Log.Warn("Failed to update last login", zap.String("admin", admin.ID), zap.Error(err))
	}
	admin.LastLogin = &now

	s.LogAction(admin.ID, "login", "", ip, userAgent)

	return token, admin, nil
}

// GetAdmin 获取单个管理员
func (s *adminService) GetAdmin(id string) (*model.Admin, error) {
	return s.repo.GetByID(id)
}

// GetAdmins 获取管理员列表（分页）
func (s *adminService) GetAdmins(page, limit int) ([]model.Admin, int64, error) {
	p := utils.Pagination{Page: page, Limit: limit}
	offset, limit := p.GetPageOffset()
	return s.repo.GetList(offset, limit)
}

// validatePermissions 检查权限是否都在已知集合内
func validatePermissions(permissions []model.Permission) error {
	for _, p := range permissions {
		known := false
		for _, allowed := range model.AllPermissions {
			if p == allowed {
				known = true
				break
			}
		}
		if !known {
			return errors.New("unknown permission: " + string(p))
		}
	}
	return nil
}

// CreateAdmin 创建管理员，邮箱重复返回业务错误
func (s *adminService) CreateAdmin(email, password, role string, permissions []model.Permission) (*model.Admin, error) {
	if role != model.RoleAdmin && role != model.RoleSuperAdmin {
		return nil, errors.New("invalid role")
	}
	if err := validatePermissions(permissions); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByEmail(email); err == nil {
		return nil, errors.New("email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &model.Admin{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Permissions:  permissions,
		IsActive:     true,
	}
	if permissions == nil {
		admin.Permissions = model.PermissionList{}
	}

	if err := s.repo.Create(admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// UpdateAdmin 更新角色/权限/启用状态，nil 字段不变
func (s *adminService) UpdateAdmin(id string, role *string, permissions []model.Permission, isActive *bool) (*model.Admin, error) {
	admin, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if role != nil {
		if *role != model.RoleAdmin && *role != model.RoleSuperAdmin {
			return nil, errors.New("invalid role")
		}
		admin.Role = *role
	}
	if permissions != nil {
		if err := validatePermissions(permissions); err != nil {
			return nil, err
		}
		admin.Permissions = permissions
	}
	if isActive != nil {
		admin.IsActive = *isActive
	}

	if err := s.repo.Update(admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// DeactivateAdmin 删除即停用，不做物理删除
func (s *adminService) DeactivateAdmin(id string) error {
	admin, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}

	admin.IsActive = false
	return s.repo.Update(admin)
}

// GetActivities 获取操作日志
func (s *adminService) GetActivities(adminID string, page, limit int) ([]model.AdminActivity, int64, error) {
	p := utils.Pagination{Page: page, Limit: limit}
	offset, limit := p.GetPageOffset()
	return s.repo.GetActivities(adminID, offset, limit)
}

// LogAction 记录操作日志，失败只打日志
func (s *adminService) LogAction(adminID, action, detail, ip, userAgent string) {
	activity := &model.AdminActivity{
		AdminID:   adminID,
		Action:    action,
		Detail:    detail,
		IP:        ip,
		UserAgent: userAgent,
	}
	if err := s.repo.LogActivity(activity); err != nil {
		logger.Log.Warn("Failed to record admin activity",
			zap.String("admin", adminID), zap.String("action", action), zap.Error(err))
	}
}
