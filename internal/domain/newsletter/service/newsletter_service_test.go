package service

import (
	"testing"
	"time"

	"onlinedaku/internal/domain/newsletter/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockSubscriberRepository is a mock of SubscriberRepository
type MockSubscriberRepository struct {
	mock.Mock
}

func (m *MockSubscriberRepository) Create(sub *model.Subscriber) error {
	args := m.Called(sub)
	return args.Error(0)
}

func (m *MockSubscriberRepository) GetByEmail(email string) (*model.Subscriber, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subscriber), args.Error(1)
}

func (m *MockSubscriberRepository) List(activeOnly bool, offset, limit int) ([]model.Subscriber, int64, error) {
	args := m.Called(activeOnly, offset, limit)
	return args.Get(0).([]model.Subscriber), args.Get(1).(int64), args.Error(2)
}

func (m *MockSubscriberRepository) Update(sub *model.Subscriber) error {
	args := m.Called(sub)
	return args.Error(0)
}

func (m *MockSubscriberRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestSubscribe(t *testing.T) {
	t.Run("New email subscribed and normalized", func(t *testing.T) {
		mockRepo := new(MockSubscriberRepository)
		service := NewNewsletterService(mockRepo)

		mockRepo.On("GetByEmail", "user@example.com").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", mock.AnythingOfType("*model.Subscriber")).Return(nil)

		sub, err := service.Subscribe("  User@Example.COM ")

		assert.NoError(t, err)
		assert.Equal(t, "user@example.com", sub.Email)
		assert.True(t, sub.IsActive)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Active duplicate rejected", func(t *testing.T) {
		mockRepo := new(MockSubscriberRepository)
		service := NewNewsletterService(mockRepo)

		mockRepo.On("GetByEmail", "user@example.com").Return(&model.Subscriber{
			Email: "user@example.com", IsActive: true,
		}, nil)

		sub, err := service.Subscribe("user@example.com")

		assert.Error(t, err)
		assert.Nil(t, sub)
		assert.Equal(t, "email already subscribed", err.Error())
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Unsubscribed email reactivated", func(t *testing.T) {
		mockRepo := new(MockSubscriberRepository)
		service := NewNewsletterService(mockRepo)

		past := time.Now().Add(-48 * time.Hour)
		mockRepo.On("GetByEmail", "user@example.com").Return(&model.Subscriber{
			Email: "user@example.com", IsActive: false, UnsubscribedAt: &past,
		}, nil)
		mockRepo.On("Update", mock.AnythingOfType("*model.Subscriber")).Return(nil)

		sub, err := service.Subscribe("user@example.com")

		assert.NoError(t, err)
		assert.True(t, sub.IsActive)
		assert.Nil(t, sub.UnsubscribedAt)
		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestUnsubscribe(t *testing.T) {
	t.Run("Active subscriber deactivated", func(t *testing.T) {
		mockRepo := new(MockSubscriberRepository)
		service := NewNewsletterService(mockRepo)

		mockRepo.On("GetByEmail", "user@example.com").Return(&model.Subscriber{
			Email: "user@example.com", IsActive: true,
		}, nil)
		mockRepo.On("Update", mock.MatchedBy(func(s *model.Subscriber) bool {
			return !s.IsActive && s.UnsubscribedAt != nil
		})).Return(nil)

		err := service.Unsubscribe("user@example.com")

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Unknown email", func(t *testing.T) {
		mockRepo := new(MockSubscriberRepository)
		service := NewNewsletterService(mockRepo)

		mockRepo.On("GetByEmail", "none@example.com").Return(nil, gorm.ErrRecordNotFound)

		err := service.Unsubscribe("none@example.com")

		assert.Error(t, err)
		assert.Equal(t, "subscriber not found", err.Error())
	})

	t.Run("Repeated unsubscribe is idempotent", func(t *testing.T) {
		mockRepo := new(MockSubscriberRepository)
		service := NewNewsletterService(mockRepo)

		mockRepo.On("GetByEmail", "user@example.com").Return(&model.Subscriber{
			Email: "user@example.com", IsActive: false,
		}, nil)

		err := service.Unsubscribe("user@example.com")

		assert.NoError(t, err)
		mockRepo.AssertNotCalled(t, "Update")
	})
}
