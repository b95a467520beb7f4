package repository

import (
	"time"

	"onlinedaku/internal/domain/deal/model"

	"gorm.io/gorm"
)

// Filter 列表过滤条件，由 service 在查询构建边界组装完成
// （分类 slug 已被解析为 ID 集合，见 category.Service.ResolveIDs）
type Filter struct {
	Search      string   // 标题/描述模糊匹配 (OR 组)
	Store       string   // 店铺名精确匹配
	CategoryIDs []string // 分类 ID 集合 (自身 + 直接子级)
	Status      string   // active / inactive / scheduled / expired
	LiveOnly    bool     // 前台列表强制只看上线中的
	SortBy      string
	SortOrder   string
}

// 排序字段白名单，防止注入
var sortableColumns = map[string]bool{
	"created_at": true,
	"price":      true,
	"end_date":   true,
	"start_date": true,
	"title":      true,
}

type DealRepository interface {
	Create(deal *model.Deal) error
	GetByID(id string) (*model.Deal, error)
	GetList(filter Filter, offset, limit int) ([]model.Deal, int64, error)
	Update(deal *model.Deal) error
	Delete(id string) error
}

type dealRepository struct {
	db *gorm.DB
}

func NewDealRepository(db *gorm.DB) DealRepository {
	return &dealRepository{db: db}
}

func (r *dealRepository) Create(deal *model.Deal) error {
	return r.db.Create(deal).Error
}

func (r *dealRepository) GetByID(id string) (*model.Deal, error) {
	var deal model.Deal
	if err := r.db.Where("id = ?", id).First(&deal).Error; err != nil {
		return nil, err
	}
	return &deal, nil
}

// buildQuery 把过滤条件翻译成 SQL 谓词
func (r *dealRepository) buildQuery(filter Filter) *gorm.DB {
	query := r.db.Model(&model.Deal{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filter.Store != "" {
		query = query.Where("store_name = ?", filter.Store)
	}
	if len(filter.CategoryIDs) > 0 {
		query = query.Where("category_id IN ?", filter.CategoryIDs)
	}

	now := time.Now()
	if filter.LiveOnly {
		query = query.Where("is_active = ? AND start_date <= ? AND end_date > ?", true, now, now)
	} else {
		switch filter.Status {
		case "active":
			query = query.Where("is_active = ? AND start_date <= ? AND end_date > ?", true, now, now)
		case "inactive":
			query = query.Where("is_active = ?", false)
		case "scheduled":
			query = query.Where("is_active = ? AND start_date > ?", true, now)
		case "expired":
			query = query.Where("end_date <= ?", now)
		}
	}

	return query
}

func orderClause(sortBy, sortOrder string) string {
	if !sortableColumns[sortBy] {
		sortBy = "created_at"
	}
	if sortOrder != "asc" {
		sortOrder = "desc"
	}
	return sortBy + " " + sortOrder
}

func (r *dealRepository) GetList(filter Filter, offset, limit int) ([]model.Deal, int64, error) {
	var deals []model.Deal
	var total int64

	query := r.buildQuery(filter)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order(orderClause(filter.SortBy, filter.SortOrder)).
		Offset(offset).Limit(limit).Find(&deals).Error; err != nil {
		return nil, 0, err
	}
	return deals, total, nil
}

func (r *dealRepository) Update(deal *model.Deal) error {
	return r.db.Save(deal).Error
}

func (r *dealRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.Deal{}).Error
}
