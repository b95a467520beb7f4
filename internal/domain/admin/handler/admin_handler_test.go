package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"onlinedaku/internal/domain/admin/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAdminService is a mock of service.AdminService
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) Login(email, password, ip, userAgent string) (string, *model.Admin, error) {
	args := m.Called(email, password, ip, userAgent)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.Admin), args.Error(2)
}

func (m *MockAdminService) GetAdmin(id string) (*model.Admin, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *MockAdminService) GetAdmins(page, limit int) ([]model.Admin, int64, error) {
	args := m.Called(page, limit)
	return args.Get(0).([]model.Admin), args.Get(1).(int64), args.Error(2)
}

func (m *MockAdminService) CreateAdmin(email, password, role string, permissions []model.Permission) (*model.Admin, error) {
	args := m.Called(email, password, role, permissions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *MockAdminService) UpdateAdmin(id string, role *string, permissions []model.Permission, isActive *bool) (*model.Admin, error) {
	args := m.Called(id, role, permissions, isActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *MockAdminService) DeactivateAdmin(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockAdminService) GetActivities(adminID string, page, limit int) ([]model.AdminActivity, int64, error) {
	args := m.Called(adminID, page, limit)
	return args.Get(0).([]model.AdminActivity), args.Get(1).(int64), args.Error(2)
}

func (m *MockAdminService) LogAction(adminID, action, detail, ip, userAgent string) {
	m.Called(adminID, action, detail, ip, userAgent)
}

type pageEnvelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    struct {
		Total      int64 `json:"total"`
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		TotalPages int   `json:"totalPages"`
		HasMore    bool  `json:"hasMore"`
	} `json:"data"`
}

func TestAdminHandler_GetAdmins_Pagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("defaults are normalized before building the page meta", func(t *testing.T) {
		mockService := new(MockAdminService)
		h := NewAdminHandler(mockService, nil)

		// 未传 page/limit 时，规范化后的值同时用于查询和响应
		mockService.On("GetAdmins", 1, 10).Return(make([]model.Admin, 10), int64(30), nil)

		r := gin.New()
		r.GET("/api/admin/admins", h.GetAdmins)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/admin/admins", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var body pageEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, int64(30), body.Data.Total)
		assert.Equal(t, 1, body.Data.Page)
		assert.Equal(t, 10, body.Data.Limit)
		assert.Equal(t, 3, body.Data.TotalPages)
		assert.True(t, body.Data.HasMore)
		mockService.AssertExpectations(t)
	})

	t.Run("last page has no more", func(t *testing.T) {
		mockService := new(MockAdminService)
		h := NewAdminHandler(mockService, nil)

		mockService.On("GetAdmins", 3, 10).Return(make([]model.Admin, 10), int64(30), nil)

		r := gin.New()
		r.GET("/api/admin/admins", h.GetAdmins)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/admin/admins?page=3&limit=10", nil)
		r.ServeHTTP(w, req)

		var body pageEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, 3, body.Data.TotalPages)
		assert.False(t, body.Data.HasMore)
	})

	t.Run("limit is capped at 100", func(t *testing.T) {
		mockService := new(MockAdminService)
		h := NewAdminHandler(mockService, nil)

		mockService.On("GetAdmins", 1, 100).Return([]model.Admin{}, int64(0), nil)

		r := gin.New()
		r.GET("/api/admin/admins", h.GetAdmins)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/admin/admins?limit=500", nil)
		r.ServeHTTP(w, req)

		var body pageEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, 100, body.Data.Limit)
		mockService.AssertExpectations(t)
	})
}

func TestAdminHandler_GetActivities_Pagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockService := new(MockAdminService)
	h := NewAdminHandler(mockService, nil)

	mockService.On("GetActivities", "", 1, 10).Return(make([]model.AdminActivity, 10), int64(25), nil)

	r := gin.New()
	r.GET("/api/admin/activities", h.GetActivities)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/activities", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body pageEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Data.Page)
	assert.Equal(t, 10, body.Data.Limit)
	assert.Equal(t, 3, body.Data.TotalPages)
	assert.True(t, body.Data.HasMore)
	mockService.AssertExpectations(t)
}
