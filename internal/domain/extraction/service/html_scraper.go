package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// htmlScraper 直接抓取页面, 读取 Open Graph / Twitter 元信息
type htmlScraper struct {
	client *http.Client
}

func NewHTMLScraper(timeout time.Duration) Scraper {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &htmlScraper{
		client: &http.Client{Timeout: timeout},
	}
}

func (s *htmlScraper) Name() string {
	return "html"
}

func (s *htmlScraper) Extract(ctx context.Context, productURL string) (*ExtractedProduct, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, productURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("page fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("page parse failed: %w", err)
	}

	product := &ExtractedProduct{
		Title:       firstMeta(doc, "og:title", "twitter:title"),
		Description: firstMeta(doc, "og:description", "twitter:description"),
		Image:       firstMeta(doc, "og:image", "twitter:image"),
		Store:       StoreFromURL(productURL),
	}

	// 元信息缺失时退化到页面标签
	if product.Title == "" {
		product.Title = strings.TrimSpace(doc.Find("h1").First().Text())
	}
	if product.Title == "" {
		product.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	if product.Title == "" {
		return nil, errors.New("no product title found in page")
	}
	return product, nil
}

// firstMeta 返回第一个非空的 meta 内容
func firstMeta(doc *goquery.Document, names ...string) string {
	for _, name := range names {
		selector := fmt.Sprintf(`meta[property="%s"], meta[name="%s"]`, name, name)
		if content, ok := doc.Find(selector).First().Attr("content"); ok {
			content = strings.TrimSpace(content)
			if content != "" {
				return content
			}
		}
	}
	return ""
}

// StoreFromURL 从主机名推断商家名: 去掉 www 前缀, 取第一段并首字母大写
func StoreFromURL(productURL string) string {
	parsed, err := url.Parse(productURL)
	if err != nil || parsed.Hostname() == "" {
		return ""
	}

	host := strings.TrimPrefix(parsed.Hostname(), "www.")
	label := strings.Split(host, ".")[0]
	if label == "" {
		return ""
	}
	return strings.ToUpper(label[:1]) + label[1:]
}
