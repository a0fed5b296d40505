package service

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/inkwell/internal/db"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService wraps user registration, login and bearer token resolution.
type AuthService struct {
	db *gorm.DB
}

// NewAuthService creates an AuthService instance.
func NewAuthService(gdb *gorm.DB) *AuthService {
	return &AuthService{db: gdb}
}

// Register 创建普通用户：校验邮箱唯一，密码以 bcrypt 存储，签发初始令牌。
func (s *AuthService) Register(email, password, name string) (*db.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	if email == "" || password == "" || name == "" {
		return nil, errors.New("email, password and name are required")
	}
	if !strings.Contains(email, "@") {
		return nil, errors.New("invalid email")
	}

	var existing db.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := db.User{
		PublicID:     uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hashed),
		Role:         db.RoleUser,
		Token:        uuid.NewString(),
		AvatarURL:    fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random", url.QueryEscape(name)),
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// Login 校验邮箱密码，成功后轮换令牌。旧令牌随即失效。
func (s *AuthService) Login(email, password string) (*db.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user db.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	user.Token = uuid.NewString()
	if err := s.db.Model(&db.User{}).Where("id = ?", user.ID).Update("token", user.Token).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// ResolveToken 将 Bearer 令牌解析为用户。
// 令牌缺失或无匹配返回 (nil, nil)：未认证不是错误，由调用方决定是否放行。
func (s *AuthService) ResolveToken(token string) (*db.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, nil
	}

	var user db.User
	if err := s.db.Where("token = ?", token).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

// EnsureAdmin 存在性检查：若提供的邮箱与密码均非空且不存在对应账号，
// 则创建一个管理员用户。用于启动时引导后台账号。
func (s *AuthService) EnsureAdmin(email, password, name string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return nil
	}
	if name == "" {
		name = "Admin"
	}

	var existing db.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hashed, hashErr := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if hashErr != nil {
			return hashErr
		}

		return s.db.Create(&db.User{
			PublicID:     uuid.NewString(),
			Email:        email,
			Name:         name,
			PasswordHash: string(hashed),
			Role:         db.RoleAdmin,
			Token:        uuid.NewString(),
		}).Error
	}

	return nil
}
