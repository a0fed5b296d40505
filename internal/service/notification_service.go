package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inkwell/internal/db"
)

// ErrNotificationNotFound 表示通知不存在或不属于当前用户。
var ErrNotificationNotFound = errors.New("notification not found")

// notificationPageSize 限制单次返回的通知条数。
const notificationPageSize = 50

// NotificationService wraps per-user in-app notifications.
type NotificationService struct {
	db *gorm.DB
}

// NewNotificationService creates a NotificationService instance.
func NewNotificationService(gdb *gorm.DB) *NotificationService {
	return &NotificationService{db: gdb}
}

// ListForUser 返回用户最近的通知，按时间倒序，最多 50 条。
func (s *NotificationService) ListForUser(userID string) ([]db.Notification, error) {
	var notifications []db.Notification
	if err := s.db.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(notificationPageSize).
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead 将当前用户的一条通知标记为已读。
func (s *NotificationService) MarkRead(userID, publicID string) error {
	now := time.Now()
	result := s.db.Model(&db.Notification{}).
		Where("public_id = ? AND user_id = ?", publicID, userID).
		Updates(map[string]any{"read": true, "read_at": now})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

// AnnouncePost 为全部注册用户写入一条 new_post 站内通知。
// 作为发布转换的副作用调用，作者本人也会收到。
func (s *NotificationService) AnnouncePost(post *db.Post) error {
	var userIDs []string
	if err := s.db.Model(&db.User{}).Pluck("public_id", &userIDs).Error; err != nil {
		return err
	}
	if len(userIDs) == 0 {
		return nil
	}

	notifications := make([]db.Notification, 0, len(userIDs))
	for _, userID := range userIDs {
		notifications = append(notifications, db.Notification{
			PublicID: uuid.NewString(),
			UserID:   userID,
			Type:     db.NotificationTypeNewPost,
			Title:    "New post published",
			Message:  fmt.Sprintf("%q is now live.", post.Title),
			PostID:   post.PublicID,
		})
	}

	return s.db.CreateInBatches(notifications, 100).Error
}
