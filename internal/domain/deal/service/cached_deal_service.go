package service

import (
	"context"
	"fmt"
	"time"

	"onlinedaku/internal/domain/deal/model"
	"onlinedaku/pkg/cache"
	"onlinedaku/pkg/logger"
	"onlinedaku/pkg/metrics"

	"go.uber.org/zap"
)

// CachedDealService 带缓存的优惠服务：前台读路径走 Redis，后台写路径透传并失效缓存
type CachedDealService struct {
	inner DealService
	cache cache.CacheService
}

func NewCachedDealService(inner DealService, cache cache.CacheService) DealService {
	return &CachedDealService{inner: inner, cache: cache}
}

// 缓存键常量
const (
	DealCacheKeyPrefix     = "deal:"
	DealListCacheKeyPrefix = "deal_list:"
	DealCacheTTL           = time.Minute * 5
	DealListCacheTTL       = time.Minute * 5
)

func dealCacheKey(id string) string {
	return DealCacheKeyPrefix + id
}

func dealListCacheKey(p ListParams) string {
	return fmt.Sprintf("%s%d:%d:%s:%s:%s:%s:%s",
		DealListCacheKeyPrefix, p.Page, p.Limit, p.Search, p.Store, p.Category, p.SortBy, p.SortOrder)
}

// invalidate 清除单条 + 所有列表页缓存
func (s *CachedDealService) invalidate(id string) {
	ctx := context.Background()
	if id != "" {
		if err := s.cache.Delete(ctx, dealCacheKey(id)); err != nil {
			logger.Log.Warn("Failed to invalidate deal cache", zap.String("deal", id), zap.Error(err))
		}
	}
	if err := s.cache.InvalidatePattern(ctx, DealListCacheKeyPrefix+"*"); err != nil {
		logger.Log.Warn("Failed to invalidate deal list cache", zap.Error(err))
	}
}

type cachedDealList struct {
	Deals []model.Deal `json:"deals"`
	Total int64        `json:"total"`
}

// GetLiveDeals 前台列表（带缓存）
func (s *CachedDealService) GetLiveDeals(params ListParams) ([]model.Deal, int64, error) {
	ctx := context.Background()
	key := dealListCacheKey(params)

	var cached cachedDealList
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		metrics.Default().RecordCacheHit("deal_list")
		return cached.Deals, cached.Total, nil
	}
	metrics.Default().RecordCacheMiss("deal_list")

	deals, total, err := s.inner.GetLiveDeals(params)
	if err != nil {
		return nil, 0, err
	}

	cached.Deals = deals
	cached.Total = total
	if err := s.cache.Set(ctx, key, cached, DealListCacheTTL); err != nil {
		// 缓存失败不影响业务逻辑，只记录日志
		logger.Log.Warn("Failed to cache deal list", zap.Error(err))
	}

	return deals, total, nil
}

// GetDeal 单条查询（带缓存）
func (s *CachedDealService) GetDeal(id string) (*model.Deal, error) {
	ctx := context.Background()
	key := dealCacheKey(id)

	var deal model.Deal
	if err := s.cache.Get(ctx, key, &deal); err == nil {
		metrics.Default().RecordCacheHit("deal")
		return &deal, nil
	}
	metrics.Default().RecordCacheMiss("deal")

	result, err := s.inner.GetDeal(id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, result, DealCacheTTL); err != nil {
		logger.Log.Warn("Failed to cache deal", zap.String("deal", id), zap.Error(err))
	}

	return result, nil
}

// GetDeals 后台列表不走缓存，管理员要看到即时数据
func (s *CachedDealService) GetDeals(params ListParams) ([]model.Deal, int64, error) {
	return s.inner.GetDeals(params)
}

func (s *CachedDealService) CreateDeal(input DealInput, adminID string) (*model.Deal, error) {
	deal, err := s.inner.CreateDeal(input, adminID)
	if err != nil {
		return nil, err
	}
	s.invalidate("")
	return deal, nil
}

func (s *CachedDealService) UpdateDeal(id string, input DealInput, adminID string) (*model.Deal, error) {
	deal, err := s.inner.UpdateDeal(id, input, adminID)
	if err != nil {
		return nil, err
	}
	s.invalidate(id)
	return deal, nil
}

func (s *CachedDealService) DeleteDeal(id string) error {
	if err := s.inner.DeleteDeal(id); err != nil {
		return err
	}
	s.invalidate(id)
	return nil
}
