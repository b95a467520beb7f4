package service

import (
	"testing"

	"onlinedaku/internal/domain/category/model"
	baseModel "onlinedaku/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockCategoryRepository is a mock of CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(category *model.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) GetByID(id string) (*model.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetBySlug(slug string) (*model.Category, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetChildren(parentID string) ([]model.Category, error) {
	args := m.Called(parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetTree() ([]model.Category, error) {
	args := m.Called()
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetList(offset, limit int) ([]model.Category, int64, error) {
	args := m.Called(offset, limit)
	return args.Get(0).([]model.Category), args.Get(1).(int64), args.Error(2)
}

func (m *MockCategoryRepository) Update(category *model.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCategoryRepository) HasChildren(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func makeCategory(id, slug string, parentID *string) *model.Category {
	return &model.Category{
		BaseModel: baseModel.BaseModel{ID: id},
		Name:      slug,
		Slug:      slug,
		ParentID:  parentID,
	}
}

func TestResolveIDs(t *testing.T) {
	t.Run("Slug resolves to self plus direct children", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		service := NewCategoryService(mockRepo)

		parent := makeCategory("11111111-1111-1111-1111-111111111111", "electronics", nil)
		child := makeCategory("22222222-2222-2222-2222-222222222222", "phones", &parent.ID)

		mockRepo.On("GetBySlug", "electronics").Return(parent, nil)
		mockRepo.On("GetChildren", parent.ID).Return([]model.Category{*child}, nil)

		ids, err := service.ResolveIDs("electronics")

		assert.NoError(t, err)
		assert.Equal(t, []string{parent.ID, child.ID}, ids)
		mockRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("UUID input looked up by ID", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		service := NewCategoryService(mockRepo)

		category := makeCategory("33333333-3333-3333-3333-333333333333", "fashion", nil)

		mockRepo.On("GetByID", category.ID).Return(category, nil)
		mockRepo.On("GetChildren", category.ID).Return([]model.Category{}, nil)

		ids, err := service.ResolveIDs(category.ID)

		assert.NoError(t, err)
		assert.Equal(t, []string{category.ID}, ids)
		mockRepo.AssertNotCalled(t, "GetBySlug")
	})

	t.Run("Unknown category", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		service := NewCategoryService(mockRepo)

		mockRepo.On("GetBySlug", "nope").Return(nil, gorm.ErrRecordNotFound)

		ids, err := service.ResolveIDs("nope")

		assert.Error(t, err)
		assert.Nil(t, ids)
		assert.Equal(t, "category not found", err.Error())
	})
}

func TestCreateCategory(t *testing.T) {
	t.Run("Slug derived from name", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		service := NewCategoryService(mockRepo)

		mockRepo.On("GetBySlug", "home-kitchen").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", mock.AnythingOfType("*model.Category")).Return(nil)

		category, err := service.CreateCategory("Home & Kitchen", "", nil, 0)

		assert.NoError(t, err)
		assert.Equal(t, "home-kitchen", category.Slug)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Duplicate slug rejected", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		service := NewCategoryService(mockRepo)

		existing := makeCategory("44444444-4444-4444-4444-444444444444", "fashion", nil)
		mockRepo.On("GetBySlug", "fashion").Return(existing, nil)

		category, err := service.CreateCategory("Fashion", "fashion", nil, 0)

		assert.Error(t, err)
		assert.Nil(t, category)
		assert.Equal(t, "slug already exists", err.Error())
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Third level rejected", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		service := NewCategoryService(mockRepo)

		grandparentID := "55555555-5555-5555-5555-555555555555"
		parent := makeCategory("66666666-6666-6666-6666-666666666666", "phones", &grandparentID)

		mockRepo.On("GetBySlug", "android").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("GetByID", parent.ID).Return(parent, nil)

		category, err := service.CreateCategory("Android", "android", &parent.ID, 0)

		assert.Error(t, err)
		assert.Nil(t, category)
		assert.Equal(t, "categories support only two levels", err.Error())
	})
}
