package service

import (
	"context"
	"errors"
	"math"
	"net/url"
	"strings"

	"onlinedaku/pkg/logger"
	"onlinedaku/pkg/metrics"

	"go.uber.org/zap"
)

// Result 抓取结果, 降级失败时携带部分信息
type Result struct {
	Product *ExtractedProduct `json:"product,omitempty"`
	Partial *ExtractedProduct `json:"partial,omitempty"`
	Source  string            `json:"source,omitempty"`
}

type ExtractionService interface {
	ExtractProduct(ctx context.Context, productURL string) (*Result, error)
}

type extractionService struct {
	scrapers []Scraper
}

// NewExtractionService 按优先级组合抓取策略
func NewExtractionService(scrapers ...Scraper) ExtractionService {
	return &extractionService{scrapers: scrapers}
}

var ErrInvalidProductURL = errors.New("invalid product url")

func validateURL(productURL string) error {
	parsed, err := url.Parse(productURL)
	if err != nil {
		return ErrInvalidProductURL
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return ErrInvalidProductURL
	}
	if parsed.Hostname() == "" {
		return ErrInvalidProductURL
	}
	return nil
}

func (s *extractionService) ExtractProduct(ctx context.Context, productURL string) (*Result, error) {
	productURL = strings.TrimSpace(productURL)
	if err := validateURL(productURL); err != nil {
		return nil, err
	}

	var lastErr error
	for _, scraper := range s.scrapers {
		product, err := scraper.Extract(ctx, productURL)
		if err != nil {
			logger.Log.Warn("product extraction failed, trying next strategy",
				zap.String("scraper", scraper.Name()),
				zap.String("url", productURL),
				zap.Error(err))
			metrics.Default().RecordExtraction(scraper.Name(), "failure")
			lastErr = err
			continue
		}

		deriveDiscount(product)
		metrics.Default().RecordExtraction(scraper.Name(), "success")
		return &Result{Product: product, Source: scraper.Name()}, nil
	}

	// 全部策略失败时仍返回可推断的部分信息
	result := &Result{}
	if store := StoreFromURL(productURL); store != "" {
		result.Partial = &ExtractedProduct{Store: store}
	}
	if lastErr == nil {
		lastErr = errors.New("no extraction strategy available")
	}
	return result, lastErr
}

// deriveDiscount 折扣缺失时由原价与现价推导百分比, 已有折扣不覆盖
func deriveDiscount(p *ExtractedProduct) {
	if p.Discount != 0 {
		return
	}
	if p.OriginalPrice > p.CurrentPrice && p.CurrentPrice > 0 {
		p.Discount = int(math.Round((p.OriginalPrice - p.CurrentPrice) / p.OriginalPrice * 100))
	}
}
