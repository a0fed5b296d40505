package db

import "time"

// Bookmark 定义了用户收藏模型。
// PostID 是弱引用：文章删除后收藏成为孤儿，读取时被过滤掉。
type Bookmark struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	PublicID  string    `gorm:"size:36;uniqueIndex;not null" json:"id"`
	UserID    string    `gorm:"size:36;not null;uniqueIndex:idx_bookmarks_user_post" json:"user_id"`
	PostID    string    `gorm:"size:36;not null;uniqueIndex:idx_bookmarks_user_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`

	// 读取时按需附带的文章详情，不落库。
	Post *Post `gorm:"-" json:"post,omitempty"`
}
