package service

import (
	"errors"
	"strings"
	"time"

	"onlinedaku/internal/domain/newsletter/model"
	"onlinedaku/internal/domain/newsletter/repository"

	"gorm.io/gorm"
)

type NewsletterService interface {
	Subscribe(email string) (*model.Subscriber, error)
	Unsubscribe(email string) error
	GetSubscribers(activeOnly bool, page, limit int) ([]model.Subscriber, int64, error)
	DeleteSubscriber(id string) error
}

type newsletterService struct {
	repo repository.SubscriberRepository
}

func NewNewsletterService(repo repository.SubscriberRepository) NewsletterService {
	return &newsletterService{repo: repo}
}

func (s *newsletterService) Subscribe(email string) (*model.Subscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.repo.GetByEmail(email)
	if err == nil {
		// 已退订用户重新订阅时恢复状态
		if !existing.IsActive {
			existing.IsActive = true
			existing.SubscribedAt = time.Now()
			existing.UnsubscribedAt = nil
			if err := s.repo.Update(existing); err != nil {
				return nil, err
			}
			return existing, nil
		}
		return nil, errors.New("email already subscribed")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	sub := &model.Subscriber{
		Email:        email,
		IsActive:     true,
		SubscribedAt: time.Now(),
	}
	if err := s.repo.Create(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *newsletterService) Unsubscribe(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	sub, err := s.repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("subscriber not found")
		}
		return err
	}

	if !sub.IsActive {
		return nil
	}

	now := time.Now()
	sub.IsActive = false
	sub.UnsubscribedAt = &now
	return s.repo.Update(sub)
}

func (s *newsletterService) GetSubscribers(activeOnly bool, page, limit int) ([]model.Subscriber, int64, error) {
	offset := (page - 1) * limit
	return s.repo.List(activeOnly, offset, limit)
}

func (s *newsletterService) DeleteSubscriber(id string) error {
	return s.repo.Delete(id)
}
