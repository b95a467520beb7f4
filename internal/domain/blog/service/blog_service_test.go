package service

import (
	"testing"

	"onlinedaku/internal/domain/blog/model"
	"onlinedaku/internal/domain/blog/repository"
	"onlinedaku/internal/pkg/revalidate"
	baseModel "onlinedaku/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockBlogRepository is a mock of BlogRepository
type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) Create(blog *model.Blog) error {
	args := m.Called(blog)
	return args.Error(0)
}

func (m *MockBlogRepository) GetByID(id string) (*model.Blog, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Blog), args.Error(1)
}

func (m *MockBlogRepository) GetBySlug(slug string) (*model.Blog, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Blog), args.Error(1)
}

func (m *MockBlogRepository) List(filter repository.Filter, offset, limit int) ([]model.Blog, int64, error) {
	args := m.Called(filter, offset, limit)
	return args.Get(0).([]model.Blog), args.Get(1).(int64), args.Error(2)
}

func (m *MockBlogRepository) Update(blog *model.Blog) error {
	args := m.Called(blog)
	return args.Error(0)
}

func (m *MockBlogRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func newBlogService(repo *MockBlogRepository) BlogService {
	return NewBlogService(repo, revalidate.NewTrigger(nil))
}

func TestCreateBlog(t *testing.T) {
	t.Run("Slug derived and publish time stamped", func(t *testing.T) {
		mockRepo := new(MockBlogRepository)
		service := newBlogService(mockRepo)

		mockRepo.On("GetBySlug", "top-10-diwali-deals").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", mock.AnythingOfType("*model.Blog")).Return(nil)

		blog, err := service.CreateBlog(BlogInput{
			Title:       "Top 10 Diwali Deals",
			Content:     "...",
			IsPublished: true,
		}, "admin-1")

		assert.NoError(t, err)
		assert.Equal(t, "top-10-diwali-deals", blog.Slug)
		assert.Equal(t, "admin-1", blog.AuthorID)
		assert.NotNil(t, blog.PublishedAt)
	})

	t.Run("Draft has no publish time", func(t *testing.T) {
		mockRepo := new(MockBlogRepository)
		service := newBlogService(mockRepo)

		mockRepo.On("GetBySlug", "draft-post").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", mock.AnythingOfType("*model.Blog")).Return(nil)

		blog, err := service.CreateBlog(BlogInput{Title: "Draft Post", Content: "..."}, "admin-1")

		assert.NoError(t, err)
		assert.Nil(t, blog.PublishedAt)
	})

	t.Run("Duplicate slug rejected", func(t *testing.T) {
		mockRepo := new(MockBlogRepository)
		service := newBlogService(mockRepo)

		existing := &model.Blog{BaseModel: baseModel.BaseModel{ID: "b-1"}, Slug: "existing"}
		mockRepo.On("GetBySlug", "existing").Return(existing, nil)

		blog, err := service.CreateBlog(BlogInput{Title: "Existing", Slug: "existing"}, "admin-1")

		assert.Error(t, err)
		assert.Nil(t, blog)
		assert.Equal(t, "slug already exists", err.Error())
		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestGetPublishedBlogBySlug(t *testing.T) {
	t.Run("Unpublished post hidden from public", func(t *testing.T) {
		mockRepo := new(MockBlogRepository)
		service := newBlogService(mockRepo)

		draft := &model.Blog{BaseModel: baseModel.BaseModel{ID: "b-1"}, Slug: "draft", IsPublished: false}
		mockRepo.On("GetBySlug", "draft").Return(draft, nil)

		blog, err := service.GetPublishedBlogBySlug("draft")

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.Nil(t, blog)
	})

	t.Run("Published post returned", func(t *testing.T) {
		mockRepo := new(MockBlogRepository)
		service := newBlogService(mockRepo)

		post := &model.Blog{BaseModel: baseModel.BaseModel{ID: "b-2"}, Slug: "live", IsPublished: true}
		mockRepo.On("GetBySlug", "live").Return(post, nil)

		blog, err := service.GetPublishedBlogBySlug("live")

		assert.NoError(t, err)
		assert.Equal(t, "live", blog.Slug)
	})
}

func TestUpdateBlog(t *testing.T) {
	t.Run("First publish stamps time once", func(t *testing.T) {
		mockRepo := new(MockBlogRepository)
		service := newBlogService(mockRepo)

		draft := &model.Blog{BaseModel: baseModel.BaseModel{ID: "b-1"}, Title: "Post", Slug: "post"}
		mockRepo.On("GetByID", "b-1").Return(draft, nil)
		mockRepo.On("Update", mock.AnythingOfType("*model.Blog")).Return(nil)

		blog, err := service.UpdateBlog("b-1", BlogInput{
			Title:       "Post",
			Slug:        "post",
			IsPublished: true,
		})

		assert.NoError(t, err)
		assert.True(t, blog.IsPublished)
		assert.NotNil(t, blog.PublishedAt)
	})
}
