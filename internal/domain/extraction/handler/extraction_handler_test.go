package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"onlinedaku/internal/domain/extraction/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockExtractionService is a mock of service.ExtractionService
type MockExtractionService struct {
	mock.Mock
}

func (m *MockExtractionService) ExtractProduct(ctx context.Context, productURL string) (*service.Result, error) {
	args := m.Called(ctx, productURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Result), args.Error(1)
}

func performExtract(h *ExtractionHandler, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/admin/extract", h.ExtractProduct)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/extract", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestExtractProduct(t *testing.T) {
	t.Run("upstream failure returns 502 with partial data", func(t *testing.T) {
		mockService := new(MockExtractionService)
		h := NewExtractionHandler(mockService)

		partial := &service.Result{Partial: &service.ExtractedProduct{Store: "Flipkart"}}
		mockService.On("ExtractProduct", mock.Anything, "https://www.flipkart.com/x").
			Return(partial, errors.New("all extraction strategies failed"))

		w := performExtract(h, `{"url":"https://www.flipkart.com/x"}`)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), `"Flipkart"`)
	})

	t.Run("unparseable url returns 400 without partial", func(t *testing.T) {
		mockService := new(MockExtractionService)
		h := NewExtractionHandler(mockService)

		mockService.On("ExtractProduct", mock.Anything, "ftp://weird").
			Return(nil, service.ErrInvalidProductURL)

		w := performExtract(h, `{"url":"ftp://weird"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.NotContains(t, w.Body.String(), "partial")
	})

	t.Run("success returns the extracted product", func(t *testing.T) {
		mockService := new(MockExtractionService)
		h := NewExtractionHandler(mockService)

		result := &service.Result{
			Product: &service.ExtractedProduct{Title: "Gaming Mouse"},
			Source:  "api",
		}
		mockService.On("ExtractProduct", mock.Anything, "https://www.amazon.in/mouse").
			Return(result, nil)

		w := performExtract(h, `{"url":"https://www.amazon.in/mouse"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Gaming Mouse")
	})
}
