package db

import "time"

// Category 定义了文章分类模型。
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	PublicID    string    `gorm:"size:36;uniqueIndex;not null" json:"id"`
	Name        string    `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Slug        string    `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Color       string    `gorm:"size:20" json:"color,omitempty"`
	Icon        string    `gorm:"size:50" json:"icon,omitempty"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}

// Tag 定义了标签模型。文章通过字符串集合弱引用标签名。
type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	PublicID  string    `gorm:"size:36;uniqueIndex;not null" json:"id"`
	Name      string    `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Slug      string    `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}
