package service

import (
	"errors"
	"time"

	"onlinedaku/internal/domain/blog/model"
	"onlinedaku/internal/domain/blog/repository"
	"onlinedaku/internal/pkg/revalidate"
	"onlinedaku/pkg/utils"

	"gorm.io/gorm"
)

// ListParams 列表查询参数
type ListParams struct {
	Page   int
	Limit  int
	Search string
	Tag    string
}

// BlogInput 创建/更新输入
type BlogInput struct {
	Title       string
	Slug        string
	Content     string
	Excerpt     string
	CoverImage  string
	Tags        []string
	IsPublished bool
}

type BlogService interface {
	GetPublishedBlogs(params ListParams) ([]model.Blog, int64, error)
	GetPublishedBlogBySlug(slug string) (*model.Blog, error)

	GetBlogs(params ListParams) ([]model.Blog, int64, error)
	GetBlog(id string) (*model.Blog, error)
	CreateBlog(input BlogInput, authorID string) (*model.Blog, error)
	UpdateBlog(id string, input BlogInput) (*model.Blog, error)
	DeleteBlog(id string) error
}

type blogService struct {
	repo    repository.BlogRepository
	trigger *revalidate.Trigger
}

func NewBlogService(repo repository.BlogRepository, trigger *revalidate.Trigger) BlogService {
	return &blogService{repo: repo, trigger: trigger}
}

func (s *blogService) getList(params ListParams, publishedOnly bool) ([]model.Blog, int64, error) {
	offset := (params.Page - 1) * params.Limit
	filter := repository.Filter{
		Search:        params.Search,
		Tag:           params.Tag,
		PublishedOnly: publishedOnly,
	}
	return s.repo.List(filter, offset, params.Limit)
}

func (s *blogService) GetPublishedBlogs(params ListParams) ([]model.Blog, int64, error) {
	return s.getList(params, true)
}

func (s *blogService) GetBlogs(params ListParams) ([]model.Blog, int64, error) {
	return s.getList(params, false)
}

func (s *blogService) GetPublishedBlogBySlug(slug string) (*model.Blog, error) {
	blog, err := s.repo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	// 未发布文章对前台不可见
	if !blog.IsPublished {
		return nil, gorm.ErrRecordNotFound
	}
	return blog, nil
}

func (s *blogService) GetBlog(id string) (*model.Blog, error) {
	return s.repo.GetByID(id)
}

func (s *blogService) CreateBlog(input BlogInput, authorID string) (*model.Blog, error) {
	slug := input.Slug
	if slug == "" {
		slug = utils.Slugify(input.Title)
	}

	if _, err := s.repo.GetBySlug(slug); err == nil {
		return nil, errors.New("slug already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	blog := &model.Blog{
		Title:       input.Title,
		Slug:        slug,
		Content:     input.Content,
		Excerpt:     input.Excerpt,
		CoverImage:  input.CoverImage,
		Tags:        input.Tags,
		IsPublished: input.IsPublished,
		AuthorID:    authorID,
	}
	if input.IsPublished {
		now := time.Now()
		blog.PublishedAt = &now
	}

	if err := s.repo.Create(blog); err != nil {
		return nil, err
	}

	if blog.IsPublished {
		s.trigger.Tag("blog")
		s.trigger.Path("/blog/" + blog.Slug)
	}
	return blog, nil
}

func (s *blogService) UpdateBlog(id string, input BlogInput) (*model.Blog, error) {
	blog, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	slug := input.Slug
	if slug == "" {
		slug = utils.Slugify(input.Title)
	}
	if slug != blog.Slug {
		if _, err := s.repo.GetBySlug(slug); err == nil {
			return nil, errors.New("slug already exists")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	// 首次发布时记录发布时间
	if input.IsPublished && !blog.IsPublished {
		now := time.Now()
		blog.PublishedAt = &now
	}

	blog.Title = input.Title
	blog.Slug = slug
	blog.Content = input.Content
	blog.Excerpt = input.Excerpt
	blog.CoverImage = input.CoverImage
	blog.Tags = input.Tags
	blog.IsPublished = input.IsPublished

	if err := s.repo.Update(blog); err != nil {
		return nil, err
	}

	s.trigger.Tag("blog")
	s.trigger.Path("/blog/" + blog.Slug)
	return blog, nil
}

func (s *blogService) DeleteBlog(id string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("blog not found")
		}
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.trigger.Tag("blog")
	return nil
}
