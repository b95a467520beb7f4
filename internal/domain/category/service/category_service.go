package service

import (
	"errors"

	"onlinedaku/internal/domain/category/model"
	"onlinedaku/internal/domain/category/repository"
	"onlinedaku/pkg/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryService 分类服务接口。
// ResolveIDs 是查询构建的边界：分类过滤参数（slug 或 UUID）在这里一次性
// 解析成分类 ID 集合（自身 + 直接子级），下游仓库只认 ID。
type CategoryService interface {
	CreateCategory(name, slug string, parentID *string, displayOrder int) (*model.Category, error)
	GetCategory(id string) (*model.Category, error)
	GetTree() ([]model.Category, error)
	GetCategories(page, limit int) ([]model.Category, int64, error)
	UpdateCategory(id string, name, slug *string, parentID *string, displayOrder *int) (*model.Category, error)
	DeleteCategory(id string) error
	ResolveIDs(slugOrID string) ([]string, error)
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

// CreateCategory slug 为空时从名称派生；只允许两级树
func (s *categoryService) CreateCategory(name, slug string, parentID *string, displayOrder int) (*model.Category, error) {
	if slug == "" {
		slug = utils.Slugify(name)
	}
	if slug == "" {
		return nil, errors.New("cannot derive slug from name")
	}

	if _, err := s.repo.GetBySlug(slug); err == nil {
		return nil, errors.New("slug already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if parentID != nil {
		parent, err := s.repo.GetByID(*parentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errors.New("parent category not found")
			}
			return nil, err
		}
		if parent.ParentID != nil {
			return nil, errors.New("categories support only two levels")
		}
	}

	category := &model.Category{
		Name:         name,
		Slug:         slug,
		ParentID:     parentID,
		DisplayOrder: displayOrder,
	}
	if err := s.repo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) GetCategory(id string) (*model.Category, error) {
	return s.repo.GetByID(id)
}

func (s *categoryService) GetTree() ([]model.Category, error) {
	return s.repo.GetTree()
}

func (s *categoryService) GetCategories(page, limit int) ([]model.Category, int64, error) {
	p := utils.Pagination{Page: page, Limit: limit}
	offset, limit := p.GetPageOffset()
	return s.repo.GetList(offset, limit)
}

func (s *categoryService) UpdateCategory(id string, name, slug *string, parentID *string, displayOrder *int) (*model.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		category.Name = *name
	}
	if slug != nil && *slug != category.Slug {
		if _, err := s.repo.GetBySlug(*slug); err == nil {
			return nil, errors.New("slug already exists")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		category.Slug = *slug
	}
	if parentID != nil {
		if *parentID == category.ID {
			return nil, errors.New("category cannot be its own parent")
		}
		parent, err := s.repo.GetByID(*parentID)
		if err != nil {
			return nil, errors.New("parent category not found")
		}
		if parent.ParentID != nil {
			return nil, errors.New("categories support only two levels")
		}
		category.ParentID = parentID
	}
	if displayOrder != nil {
		category.DisplayOrder = *displayOrder
	}

	if err := s.repo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(id string) error {
	hasChildren, err := s.repo.HasChildren(id)
	if err != nil {
		return err
	}
	if hasChildren {
		return errors.New("category has children")
	}
	return s.repo.Delete(id)
}

// ResolveIDs 解析分类过滤参数为 ID 集合：自身 + 直接子级。
// 参数是合法 UUID 时按 ID 查，否则按 slug 查（两步查询）。
func (s *categoryService) ResolveIDs(slugOrID string) ([]string, error) {
	var category *model.Category
	var err error

	if _, parseErr := uuid.Parse(slugOrID); parseErr == nil {
		category, err = s.repo.GetByID(slugOrID)
	} else {
		category, err = s.repo.GetBySlug(slugOrID)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("category not found")
		}
		return nil, err
	}

	children, err := s.repo.GetChildren(category.ID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(children)+1)
	ids = append(ids, category.ID)
	for _, child := range children {
		ids = append(ids, child.ID)
	}
	return ids, nil
}
