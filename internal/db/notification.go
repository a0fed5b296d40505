package db

import "time"

// NotificationTypeNewPost 表示文章发布产生的站内通知。
const NotificationTypeNewPost = "new_post"

// Notification 定义了用户站内通知模型。
type Notification struct {
	ID        uint       `gorm:"primaryKey" json:"-"`
	PublicID  string     `gorm:"size:36;uniqueIndex;not null" json:"id"`
	UserID    string     `gorm:"size:36;not null;index" json:"user_id"`
	Type      string     `gorm:"size:50;not null" json:"type"`
	Title     string     `gorm:"size:500;not null" json:"title"`
	Message   string     `gorm:"type:text" json:"message"`
	PostID    string     `gorm:"size:36;index" json:"post_id,omitempty"`
	Read      bool       `gorm:"not null;default:false" json:"read"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
