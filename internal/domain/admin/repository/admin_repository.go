package repository

import (
	"time"

	"onlinedaku/internal/domain/admin/model"

	"gorm.io/gorm"
)

// AdminRepository 接口定义
type AdminRepository interface {
	Create(admin *model.Admin) error
	GetByID(id string) (*model.Admin, error)
	GetActiveByID(id string) (*model.Admin, error)
	GetByEmail(email string) (*model.Admin, error)
	GetList(offset, limit int) ([]model.Admin, int64, error)
	Update(admin *model.Admin) error
	UpdateLastLogin(id string, at time.Time) error

	LogActivity(activity *model.AdminActivity) error
	GetActivities(adminID string, offset, limit int) ([]model.AdminActivity, int64, error)
}

// adminRepository 实现
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository 创建新的仓库实例
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

// Create 创建管理员
func (r *adminRepository) Create(admin *model.Admin) error {
	return r.db.Create(admin).Error
}

// GetByID 根据ID获取管理员
func (r *adminRepository) GetByID(id string) (*model.Admin, error) {
	var admin model.Admin
	if err := r.db.Where("id = ?", id).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// GetActiveByID 认证中间件使用：只返回启用状态的管理员
func (r *adminRepository) GetActiveByID(id string) (*model.Admin, error) {
	var admin model.Admin
	if err := r.db.Where("id = ? AND is_active = ?", id, true).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// GetByEmail 根据邮箱获取管理员
func (r *adminRepository) GetByEmail(email string) (*model.Admin, error) {
	var admin model.Admin
	if err := r.db.Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// GetList 获取管理员列表（分页）
func (r *adminRepository) GetList(offset, limit int) ([]model.Admin, int64, error) {
	var admins []model.Admin
	var total int64

	if err := r.db.Model(&model.Admin{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Order("created_at desc").Offset(offset).Limit(limit).Find(&admins).Error; err != nil {
		return nil, 0, err
	}
	return admins, total, nil
}

// Update 更新管理员
func (r *adminRepository) Update(admin *model.Admin) error {
	return r.db.Save(admin).Error
}

// UpdateLastLogin 记录最近登录时间
func (r *adminRepository) UpdateLastLogin(id string, at time.Time) error {
	return r.db.Model(&model.Admin{}).Where("id = ?", id).Update("last_login", at).Error
}

// LogActivity 追加操作日志
func (r *adminRepository) LogActivity(activity *model.AdminActivity) error {
	return r.db.Create(activity).Error
}

// GetActivities 获取操作日志（adminID 为空时返回全部）
func (r *adminRepository) GetActivities(adminID string, offset, limit int) ([]model.AdminActivity, int64, error) {
	var activities []model.AdminActivity
	var total int64

	query := r.db.Model(&model.AdminActivity{})
	if adminID != "" {
		query = query.Where("admin_id = ?", adminID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&activities).Error; err != nil {
		return nil, 0, err
	}
	return activities, total, nil
}
