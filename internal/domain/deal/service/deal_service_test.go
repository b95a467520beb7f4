package service

import (
	"errors"
	"testing"
	"time"

	"onlinedaku/internal/domain/deal/model"
	"onlinedaku/internal/domain/deal/repository"
	"onlinedaku/internal/pkg/revalidate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockDealRepository is a mock of DealRepository
type MockDealRepository struct {
	mock.Mock
}

func (m *MockDealRepository) Create(deal *model.Deal) error {
	args := m.Called(deal)
	return args.Error(0)
}

func (m *MockDealRepository) GetByID(id string) (*model.Deal, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Deal), args.Error(1)
}

func (m *MockDealRepository) GetList(filter repository.Filter, offset, limit int) ([]model.Deal, int64, error) {
	args := m.Called(filter, offset, limit)
	return args.Get(0).([]model.Deal), args.Get(1).(int64), args.Error(2)
}

func (m *MockDealRepository) Update(deal *model.Deal) error {
	args := m.Called(deal)
	return args.Error(0)
}

func (m *MockDealRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockCategoryResolver is a mock of CategoryResolver
type MockCategoryResolver struct {
	mock.Mock
}

func (m *MockCategoryResolver) ResolveIDs(slugOrID string) ([]string, error) {
	args := m.Called(slugOrID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func newTestService(repo *MockDealRepository, resolver *MockCategoryResolver) DealService {
	return NewDealService(repo, resolver, revalidate.NewTrigger(nil))
}

func validInput() DealInput {
	return DealInput{
		Title:        "50% off headphones",
		Store:        "Amazon",
		Link:         "https://amazon.in/deal",
		DiscountType: model.DiscountPercentage,
		StartDate:    time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		IsActive:     true,
	}
}

func TestGetLiveDeals(t *testing.T) {
	t.Run("Category slug resolved once into filter", func(t *testing.T) {
		mockRepo := new(MockDealRepository)
		mockResolver := new(MockCategoryResolver)
		service := newTestService(mockRepo, mockResolver)

		ids := []string{"cat-1", "cat-child-1"}
		mockResolver.On("ResolveIDs", "electronics").Return(ids, nil)
		mockRepo.On("GetList", mock.MatchedBy(func(f repository.Filter) bool {
			return f.LiveOnly && len(f.CategoryIDs) == 2
		}), 0, 10).Return([]model.Deal{}, int64(0), nil)

		_, _, err := service.GetLiveDeals(ListParams{Category: "electronics"})

		assert.NoError(t, err)
		mockResolver.AssertNumberOfCalls(t, "ResolveIDs", 1)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Unknown category fails fast", func(t *testing.T) {
		mockRepo := new(MockDealRepository)
		mockResolver := new(MockCategoryResolver)
		service := newTestService(mockRepo, mockResolver)

		mockResolver.On("ResolveIDs", "nope").Return(nil, errors.New("category not found"))

		_, _, err := service.GetLiveDeals(ListParams{Category: "nope"})

		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "GetList")
	})

	t.Run("No category skips resolver", func(t *testing.T) {
		mockRepo := new(MockDealRepository)
		mockResolver := new(MockCategoryResolver)
		service := newTestService(mockRepo, mockResolver)

		mockRepo.On("GetList", mock.MatchedBy(func(f repository.Filter) bool {
			return f.LiveOnly && f.CategoryIDs == nil
		}), 0, 10).Return([]model.Deal{}, int64(0), nil)

		_, _, err := service.GetLiveDeals(ListParams{})

		assert.NoError(t, err)
		mockResolver.AssertNotCalled(t, "ResolveIDs")
	})
}

func TestCreateDeal(t *testing.T) {
	t.Run("Create success stamps admin", func(t *testing.T) {
		mockRepo := new(MockDealRepository)
		service := newTestService(mockRepo, new(MockCategoryResolver))

		mockRepo.On("Create", mock.AnythingOfType("*model.Deal")).Return(nil)

		deal, err := service.CreateDeal(validInput(), "admin-1")

		assert.NoError(t, err)
		assert.Equal(t, "admin-1", deal.CreatedBy)
		assert.Equal(t, "admin-1", deal.UpdatedBy)
		mockRepo.AssertExpectations(t)
	})

	t.Run("End date must be after start date", func(t *testing.T) {
		mockRepo := new(MockDealRepository)
		service := newTestService(mockRepo, new(MockCategoryResolver))

		input := validInput()
		input.EndDate = input.StartDate

		deal, err := service.CreateDeal(input, "admin-1")

		assert.Error(t, err)
		assert.Nil(t, deal)
		assert.Contains(t, err.Error(), "end date must be after start date")
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Invalid discount type rejected", func(t *testing.T) {
		mockRepo := new(MockDealRepository)
		service := newTestService(mockRepo, new(MockCategoryResolver))

		input := validInput()
		input.DiscountType = "bogus"

		deal, err := service.CreateDeal(input, "admin-1")

		assert.Error(t, err)
		assert.Nil(t, deal)
		assert.Contains(t, err.Error(), "invalid discount type")
	})
}

func TestDeleteDeal(t *testing.T) {
	t.Run("Missing deal reported", func(t *testing.T) {
		mockRepo := new(MockDealRepository)
		service := newTestService(mockRepo, new(MockCategoryResolver))

		mockRepo.On("GetByID", "missing").Return(nil, gorm.ErrRecordNotFound)

		err := service.DeleteDeal("missing")

		assert.Error(t, err)
		assert.Equal(t, "deal not found", err.Error())
		mockRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("Delete success", func(t *testing.T) {
		mockRepo := new(MockDealRepository)
		service := newTestService(mockRepo, new(MockCategoryResolver))

		mockRepo.On("GetByID", "deal-1").Return(&model.Deal{}, nil)
		mockRepo.On("Delete", "deal-1").Return(nil)

		err := service.DeleteDeal("deal-1")

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}
