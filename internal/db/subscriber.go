package db

import "time"

// Subscriber 定义了邮件订阅者模型。
// 退订后再次订阅只翻转 Subscribed 标志，不会产生重复记录。
type Subscriber struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	PublicID   string    `gorm:"size:36;uniqueIndex;not null" json:"id"`
	Email      string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Subscribed bool      `gorm:"not null;default:true" json:"subscribed"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
