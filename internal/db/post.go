package db

import (
	"time"

	"gorm.io/datatypes"
)

// 文章状态。
const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
)

// 文章正文格式。
const (
	PostFormatHTML     = "html"
	PostFormatMarkdown = "markdown"
)

// Post 定义了文章模型。
// PublishedAt 仅在首次进入 published 状态时写入一次，之后不再清除或覆盖。
type Post struct {
	ID          uint                        `gorm:"primaryKey" json:"-"`
	PublicID    string                      `gorm:"size:36;uniqueIndex;not null" json:"id"`
	Slug        string                      `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Title       string                      `gorm:"size:500;not null" json:"title"`
	Content     string                      `gorm:"type:text" json:"content"`
	Format      string                      `gorm:"size:20;not null;default:html" json:"format"`
	Excerpt     string                      `gorm:"type:text" json:"excerpt"`
	Category    string                      `gorm:"size:255;index" json:"category"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	Status      string                      `gorm:"size:20;not null;default:draft;index" json:"status"`
	ViewCount   int64                       `gorm:"not null;default:0" json:"view_count"`
	PublishedAt *time.Time                  `json:"published_at"`
	AuthorID    string                      `gorm:"size:36;index" json:"author_id"`
	AuthorName  string                      `gorm:"size:255" json:"author_name"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`

	// 派生字段，读取时按需填充，不落库。
	UpvoteCount int64  `gorm:"-" json:"upvote_count"`
	ContentHTML string `gorm:"-" json:"content_html,omitempty"`
}

// Published 判断文章当前是否对外可见。
func (p *Post) Published() bool {
	return p.Status == PostStatusPublished
}
