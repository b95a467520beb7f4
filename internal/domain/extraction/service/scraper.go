package service

import (
	"context"
)

// ExtractedProduct 抓取到的商品信息
type ExtractedProduct struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Image         string  `json:"image"`
	Store         string  `json:"store"`
	CurrentPrice  float64 `json:"currentPrice"`
	OriginalPrice float64 `json:"originalPrice"`
	Discount      int     `json:"discount"`
}

// Scraper 商品抓取策略
type Scraper interface {
	Name() string
	Extract(ctx context.Context, productURL string) (*ExtractedProduct, error)
}
