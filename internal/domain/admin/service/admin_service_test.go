package service

import (
	"os"
	"testing"
	"time"

	"onlinedaku/internal/domain/admin/model"
	"onlinedaku/internal/pkg/config"
	"onlinedaku/pkg/logger"
	baseModel "onlinedaku/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	logger.InitLogger(false)
	config.GlobalConfig.JWT.Secret = "unit-test-secret-key-0123456789abcdef"
	config.GlobalConfig.JWT.Expire = 24
	os.Exit(m.Run())
}

// MockAdminRepository is a mock of AdminRepository
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Create(admin *model.Admin) error {
	args := m.Called(admin)
	return args.Error(0)
}

func (m *MockAdminRepository) GetByID(id string) (*model.Admin, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *MockAdminRepository) GetActiveByID(id string) (*model.Admin, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *MockAdminRepository) GetByEmail(email string) (*model.Admin, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *MockAdminRepository) GetList(offset, limit int) ([]model.Admin, int64, error) {
	args := m.Called(offset, limit)
	return args.Get(0).([]model.Admin), args.Get(1).(int64), args.Error(2)
}

func (m *MockAdminRepository) Update(admin *model.Admin) error {
	args := m.Called(admin)
	return args.Error(0)
}

func (m *MockAdminRepository) UpdateLastLogin(id string, at time.Time) error {
	args := m.Called(id, at)
	return args.Error(0)
}

func (m *MockAdminRepository) LogActivity(activity *model.AdminActivity) error {
	args := m.Called(activity)
	return args.Error(0)
}

func (m *MockAdminRepository) GetActivities(adminID string, offset, limit int) ([]model.AdminActivity, int64, error) {
	args := m.Called(adminID, offset, limit)
	return args.Get(0).([]model.AdminActivity), args.Get(1).(int64), args.Error(2)
}

func createTestAdmin(email, password string, active bool) *model.Admin {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &model.Admin{
		BaseModel:    baseModel.BaseModel{ID: "admin-id-1"},
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
		Permissions:  model.PermissionList{model.PermissionManageDeals},
		IsActive:     active,
	}
}

func TestLogin(t *testing.T) {
	t.Run("Login success returns token and logs activity", func(t *testing.T) {
		mockRepo := new(MockAdminRepository)
		service := NewAdminService(mockRepo)

		admin := createTestAdmin("a@b.com", "secret123", true)
		mockRepo.On("GetByEmail", "a@b.com").Return(admin, nil)
		mockRepo.On("UpdateLastLogin", admin.ID, mock.AnythingOfType("time.Time")).Return(nil)
		mockRepo.On("LogActivity", mock.AnythingOfType("*model.AdminActivity")).Return(nil)

		token, loggedIn, err := service.Login("a@b.com", "secret123", "1.2.3.4", "test-agent")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.NotNil(t, loggedIn.LastLogin)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Wrong password", func(t *testing.T) {
		mockRepo := new(MockAdminRepository)
		service := NewAdminService(mockRepo)

		admin := createTestAdmin("a@b.com", "secret123", true)
		mockRepo.On("GetByEmail", "a@b.com").Return(admin, nil)

		token, _, err := service.Login("a@b.com", "wrong", "", "")

		assert.Error(t, err)
		assert.Empty(t, token)
		assert.Equal(t, "invalid email or password", err.Error())
	})

	t.Run("Unknown email gives same error as wrong password", func(t *testing.T) {
		mockRepo := new(MockAdminRepository)
		service := NewAdminService(mockRepo)

		mockRepo.On("GetByEmail", "ghost@b.com").Return(nil, gorm.ErrRecordNotFound)

		token, _, err := service.Login("ghost@b.com", "whatever", "", "")

		assert.Error(t, err)
		assert.Empty(t, token)
		assert.Equal(t, "invalid email or password", err.Error())
	})

	t.Run("Disabled account rejected", func(t *testing.T) {
		mockRepo := new(MockAdminRepository)
		service := NewAdminService(mockRepo)

		admin := createTestAdmin("a@b.com", "secret123", false)
		mockRepo.On("GetByEmail", "a@b.com").Return(admin, nil)

		token, _, err := service.Login("a@b.com", "secret123", "", "")

		assert.Error(t, err)
		assert.Empty(t, token)
		assert.Equal(t, "account is disabled", err.Error())
	})
}

func TestCreateAdmin(t *testing.T) {
	t.Run("Create success hashes password", func(t *testing.T) {
		mockRepo := new(MockAdminRepository)
		service := NewAdminService(mockRepo)

		mockRepo.On("GetByEmail", "new@b.com").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", mock.AnythingOfType("*model.Admin")).Return(nil)

		admin, err := service.CreateAdmin("new@b.com", "secret123", model.RoleAdmin, []model.Permission{model.PermissionManageCoupons})

		assert.NoError(t, err)
		assert.NotEqual(t, "secret123", admin.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("secret123")))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Duplicate email rejected", func(t *testing.T) {
		mockRepo := new(MockAdminRepository)
		service := NewAdminService(mockRepo)

		mockRepo.On("GetByEmail", "a@b.com").Return(createTestAdmin("a@b.com", "x", true), nil)

		admin, err := service.CreateAdmin("a@b.com", "secret123", model.RoleAdmin, nil)

		assert.Error(t, err)
		assert.Nil(t, admin)
		assert.Equal(t, "email already registered", err.Error())
	})

	t.Run("Unknown role rejected", func(t *testing.T) {
		mockRepo := new(MockAdminRepository)
		service := NewAdminService(mockRepo)

		admin, err := service.CreateAdmin("a@b.com", "secret123", "owner", nil)

		assert.Error(t, err)
		assert.Nil(t, admin)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Unknown permission rejected", func(t *testing.T) {
		mockRepo := new(MockAdminRepository)
		service := NewAdminService(mockRepo)

		admin, err := service.CreateAdmin("a@b.com", "secret123", model.RoleAdmin, []model.Permission{"manage_everything"})

		assert.Error(t, err)
		assert.Nil(t, admin)
	})
}

func TestHasPermission(t *testing.T) {
	t.Run("Super admin bypasses stored permissions", func(t *testing.T) {
		admin := &model.Admin{Role: model.RoleSuperAdmin, Permissions: model.PermissionList{}}
		assert.True(t, admin.HasPermission(model.PermissionManageSettings))
	})

	t.Run("Regular admin limited to granted permissions", func(t *testing.T) {
		admin := &model.Admin{Role: model.RoleAdmin, Permissions: model.PermissionList{model.PermissionManageDeals}}
		assert.True(t, admin.HasPermission(model.PermissionManageDeals))
		assert.False(t, admin.HasPermission(model.PermissionManageSettings))
	})
}
