package db

import "time"

// 评论审核状态。
const (
	CommentStatusPending  = "pending"
	CommentStatusApproved = "approved"
	CommentStatusRejected = "rejected"
)

// Comment 定义了访客评论模型。
// PostID 是文章的公开 ID，弱引用：文章删除时评论被级联清除。
// Email 仅在后台可见，公开接口永远不会返回。
type Comment struct {
	ID          uint       `gorm:"primaryKey" json:"-"`
	PublicID    string     `gorm:"size:36;uniqueIndex;not null" json:"id"`
	PostID      string     `gorm:"size:36;index;not null" json:"post_id"`
	Name        string     `gorm:"size:255;not null" json:"name"`
	Email       string     `gorm:"size:255;not null" json:"email,omitempty"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	Status      string     `gorm:"size:20;not null;default:pending;index" json:"status"`
	ModeratedAt *time.Time `json:"moderated_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
