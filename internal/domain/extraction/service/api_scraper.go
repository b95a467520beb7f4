package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// apiScraper 调用外部 AI 抓取接口
type apiScraper struct {
	apiURL string
	apiKey string
	client *http.Client
}

func NewAPIScraper(apiURL, apiKey string, timeout time.Duration) Scraper {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &apiScraper{
		apiURL: apiURL,
		apiKey: apiKey,
		client: &http.Client{Timeout: timeout},
	}
}

func (s *apiScraper) Name() string {
	return "api"
}

type apiRequest struct {
	URL    string    `json:"url"`
	Schema apiSchema `json:"schema"`
}

type apiSchema struct {
	Fields []string `json:"fields"`
}

type apiResponse struct {
	Data struct {
		Title         string  `json:"title"`
		Description   string  `json:"description"`
		Image         string  `json:"image"`
		Store         string  `json:"store"`
		CurrentPrice  float64 `json:"currentPrice"`
		OriginalPrice float64 `json:"originalPrice"`
		Discount      int     `json:"discountPercentage"`
	} `json:"data"`
}

func (s *apiScraper) Extract(ctx context.Context, productURL string) (*ExtractedProduct, error) {
	if s.apiURL == "" || s.apiKey == "" {
		return nil, errors.New("extraction api not configured")
	}

	body, err := json.Marshal(apiRequest{
		URL: productURL,
		Schema: apiSchema{
			Fields: []string{"title", "description", "image", "store", "currentPrice", "originalPrice", "discountPercentage"},
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("extraction api request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("extraction api returned status %d", resp.StatusCode)
	}

	var result apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("extraction api response decode failed: %w", err)
	}

	// 没有标题视为抓取失败, 走下一级策略
	if result.Data.Title == "" {
		return nil, errors.New("extraction api returned empty title")
	}

	return &ExtractedProduct{
		Title:         result.Data.Title,
		Description:   result.Data.Description,
		Image:         result.Data.Image,
		Store:         result.Data.Store,
		CurrentPrice:  result.Data.CurrentPrice,
		OriginalPrice: result.Data.OriginalPrice,
		Discount:      result.Data.Discount,
	}, nil
}
