package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inkwell/internal/db"
)

var (
	ErrAlreadySubscribed  = errors.New("email already subscribed")
	ErrSubscriberNotFound = errors.New("subscriber not found")
)

// SubscriberService wraps newsletter subscription state.
type SubscriberService struct {
	db *gorm.DB
}

// NewSubscriberService creates a SubscriberService instance.
func NewSubscriberService(gdb *gorm.DB) *SubscriberService {
	return &SubscriberService{db: gdb}
}

// Subscribe 登记订阅。已退订的邮箱重新订阅只翻转标志位，不产生重复记录；
// 仍在订阅中的邮箱重复订阅视为错误。
func (s *SubscriberService) Subscribe(email string) (*db.Subscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(email, "@") {
		return nil, errors.New("invalid email")
	}

	var existing db.Subscriber
	err := s.db.Where("email = ?", email).First(&existing).Error
	switch {
	case err == nil:
		if existing.Subscribed {
			return nil, ErrAlreadySubscribed
		}
		existing.Subscribed = true
		if err := s.db.Save(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		subscriber := db.Subscriber{
			PublicID:   uuid.NewString(),
			Email:      email,
			Subscribed: true,
		}
		if err := s.db.Create(&subscriber).Error; err != nil {
			return nil, err
		}
		return &subscriber, nil
	default:
		return nil, err
	}
}

// Unsubscribe 将邮箱标记为退订。记录保留，便于之后重新订阅。
func (s *SubscriberService) Unsubscribe(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	result := s.db.Model(&db.Subscriber{}).
		Where("email = ?", email).
		Update("subscribed", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSubscriberNotFound
	}
	return nil
}

// List 返回全部订阅记录，后台使用。
func (s *SubscriberService) List() ([]db.Subscriber, error) {
	var subscribers []db.Subscriber
	if err := s.db.Order("created_at desc").Find(&subscribers).Error; err != nil {
		return nil, err
	}
	return subscribers, nil
}

// ActiveEmails 返回所有仍在订阅中的邮箱，供通知扇出使用。
func (s *SubscriberService) ActiveEmails() ([]string, error) {
	var emails []string
	if err := s.db.Model(&db.Subscriber{}).
		Where("subscribed = ?", true).
		Order("created_at asc").
		Pluck("email", &emails).Error; err != nil {
		return nil, err
	}
	return emails, nil
}
