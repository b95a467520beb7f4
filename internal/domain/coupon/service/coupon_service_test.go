package service

import (
	"testing"
	"time"

	"onlinedaku/internal/domain/coupon/model"
	"onlinedaku/internal/domain/coupon/repository"
	"onlinedaku/internal/pkg/revalidate"
	baseModel "onlinedaku/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockCouponRepository is a mock of CouponRepository
type MockCouponRepository struct {
	mock.Mock
}

func (m *MockCouponRepository) Create(coupon *model.Coupon) error {
	args := m.Called(coupon)
	return args.Error(0)
}

func (m *MockCouponRepository) GetByID(id string) (*model.Coupon, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Coupon), args.Error(1)
}

func (m *MockCouponRepository) GetByOfferID(offerID string) (*model.Coupon, error) {
	args := m.Called(offerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Coupon), args.Error(1)
}

func (m *MockCouponRepository) GetList(filter repository.Filter, offset, limit int) ([]model.Coupon, int64, error) {
	args := m.Called(filter, offset, limit)
	return args.Get(0).([]model.Coupon), args.Get(1).(int64), args.Error(2)
}

func (m *MockCouponRepository) Update(coupon *model.Coupon) error {
	args := m.Called(coupon)
	return args.Error(0)
}

func (m *MockCouponRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func newCouponService(repo *MockCouponRepository) CouponService {
	return NewCouponService(repo, nil, revalidate.NewTrigger(nil))
}

func couponInput(offerID string) CouponInput {
	return CouponInput{
		OfferID:   offerID,
		Title:     "Flat 200 off",
		Code:      "SAVE200",
		Type:      model.TypeCode,
		Store:     "Myntra",
		Status:    "active",
		StartDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		IsActive:  true,
	}
}

func TestCreateCoupon(t *testing.T) {
	t.Run("Create success", func(t *testing.T) {
		mockRepo := new(MockCouponRepository)
		service := newCouponService(mockRepo)

		mockRepo.On("GetByOfferID", "OFFER-1").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", mock.AnythingOfType("*model.Coupon")).Return(nil)

		coupon, err := service.CreateCoupon(couponInput("OFFER-1"), "admin-1")

		assert.NoError(t, err)
		assert.Equal(t, "OFFER-1", coupon.OfferID)
		assert.Equal(t, "admin-1", coupon.CreatedBy)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Duplicate offer id rejected", func(t *testing.T) {
		mockRepo := new(MockCouponRepository)
		service := newCouponService(mockRepo)

		existing := &model.Coupon{BaseModel: baseModel.BaseModel{ID: "c-1"}, OfferID: "OFFER-1"}
		mockRepo.On("GetByOfferID", "OFFER-1").Return(existing, nil)

		coupon, err := service.CreateCoupon(couponInput("OFFER-1"), "admin-1")

		assert.Error(t, err)
		assert.Nil(t, coupon)
		assert.Equal(t, "offer id already exists", err.Error())
		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestUpdateCoupon(t *testing.T) {
	t.Run("Changing offer id to an existing one rejected", func(t *testing.T) {
		mockRepo := new(MockCouponRepository)
		service := newCouponService(mockRepo)

		current := &model.Coupon{BaseModel: baseModel.BaseModel{ID: "c-1"}, OfferID: "OFFER-1"}
		other := &model.Coupon{BaseModel: baseModel.BaseModel{ID: "c-2"}, OfferID: "OFFER-2"}

		mockRepo.On("GetByID", "c-1").Return(current, nil)
		mockRepo.On("GetByOfferID", "OFFER-2").Return(other, nil)

		coupon, err := service.UpdateCoupon("c-1", couponInput("OFFER-2"), "admin-1")

		assert.Error(t, err)
		assert.Nil(t, coupon)
		assert.Equal(t, "offer id already exists", err.Error())
		mockRepo.AssertNotCalled(t, "Update")
	})
}
