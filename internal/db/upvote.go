package db

import "time"

// Upvote 定义了文章点赞模型。
// VisitorID 由客户端生成，匿名去重。(post_id, visitor_id) 唯一索引
// 在存储层挡住并发重复插入。
type Upvote struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	PublicID  string    `gorm:"size:36;uniqueIndex;not null" json:"id"`
	PostID    string    `gorm:"size:36;not null;uniqueIndex:idx_upvotes_post_visitor" json:"post_id"`
	VisitorID string    `gorm:"size:64;not null;uniqueIndex:idx_upvotes_post_visitor" json:"visitor_id"`
	CreatedAt time.Time `json:"created_at"`
}
