package db

import "time"

// 用户角色。
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User 定义了注册用户模型。
// Token 是不透明的 Bearer 令牌，每次登录时轮换，直到下次登录前一直有效。
type User struct {
	ID           uint       `gorm:"primaryKey" json:"-"`
	PublicID     string     `gorm:"size:36;uniqueIndex;not null" json:"id"`
	Email        string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Name         string     `gorm:"size:255;not null" json:"name"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	Role         string     `gorm:"size:20;not null;default:user" json:"role"`
	Token        string     `gorm:"size:36;uniqueIndex;not null" json:"-"`
	AvatarURL    string     `gorm:"size:500" json:"avatar_url"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `gorm:"index" json:"-"`
}

// IsAdmin 判断用户是否具有管理员角色。
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
