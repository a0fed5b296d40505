package db

import "time"

// HighlightDefaultColor 是未指定颜色时的默认高亮色。
const HighlightDefaultColor = "yellow"

// Highlight 定义了用户在文章内的划线高亮模型。
type Highlight struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	PublicID  string    `gorm:"size:36;uniqueIndex;not null" json:"id"`
	UserID    string    `gorm:"size:36;not null;index" json:"user_id"`
	PostID    string    `gorm:"size:36;not null;index" json:"post_id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Color     string    `gorm:"size:20;not null;default:yellow" json:"color"`
	CreatedAt time.Time `json:"created_at"`

	// 读取时附带的文章摘要信息；文章已删除时为 nil。
	Post *HighlightPostRef `gorm:"-" json:"post,omitempty"`
}

// HighlightPostRef 是高亮列表里附带的文章最小引用。
type HighlightPostRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}
