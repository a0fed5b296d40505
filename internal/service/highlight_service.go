package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inkwell/internal/db"
)

// ErrHighlightNotFound 表示高亮不存在或不属于当前用户。
var ErrHighlightNotFound = errors.New("highlight not found")

// HighlightService wraps per-user in-post text highlights.
type HighlightService struct {
	db *gorm.DB
}

// NewHighlightService creates a HighlightService instance.
func NewHighlightService(gdb *gorm.DB) *HighlightService {
	return &HighlightService{db: gdb}
}

// ListForUser 返回用户的全部高亮，附带文章最小引用，按时间倒序。
// 文章已删除的高亮保留，但 post 字段为 nil。
func (s *HighlightService) ListForUser(userID string) ([]db.Highlight, error) {
	var highlights []db.Highlight
	if err := s.db.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&highlights).Error; err != nil {
		return nil, err
	}
	if len(highlights) == 0 {
		return []db.Highlight{}, nil
	}

	postIDs := make([]string, 0, len(highlights))
	seen := make(map[string]struct{}, len(highlights))
	for _, h := range highlights {
		if _, ok := seen[h.PostID]; ok {
			continue
		}
		seen[h.PostID] = struct{}{}
		postIDs = append(postIDs, h.PostID)
	}

	var posts []db.Post
	if err := s.db.Where("public_id IN ?", postIDs).Find(&posts).Error; err != nil {
		return nil, err
	}

	refs := make(map[string]*db.HighlightPostRef, len(posts))
	for _, post := range posts {
		refs[post.PublicID] = &db.HighlightPostRef{
			ID:    post.PublicID,
			Title: post.Title,
			Slug:  post.Slug,
		}
	}
	for i := range highlights {
		highlights[i].Post = refs[highlights[i].PostID]
	}

	return highlights, nil
}

// ListForPost 返回用户在单篇文章内的高亮，按时间倒序。
func (s *HighlightService) ListForPost(userID, postID string) ([]db.Highlight, error) {
	var highlights []db.Highlight
	if err := s.db.
		Where("user_id = ? AND post_id = ?", userID, postID).
		Order("created_at desc").
		Find(&highlights).Error; err != nil {
		return nil, err
	}
	return highlights, nil
}

// Add 记录一条高亮，颜色缺省为黄色。
func (s *HighlightService) Add(userID, postID, text, color string) (*db.Highlight, error) {
	text = strings.TrimSpace(text)
	if postID == "" || text == "" {
		return nil, errors.New("post_id and text are required")
	}
	if color = strings.TrimSpace(color); color == "" {
		color = db.HighlightDefaultColor
	}

	highlight := db.Highlight{
		PublicID: uuid.NewString(),
		UserID:   userID,
		PostID:   postID,
		Text:     text,
		Color:    color,
	}
	if err := s.db.Create(&highlight).Error; err != nil {
		return nil, err
	}

	return &highlight, nil
}

// Remove 删除当前用户的一条高亮。
func (s *HighlightService) Remove(userID, publicID string) error {
	result := s.db.Where("public_id = ? AND user_id = ?", publicID, userID).Delete(&db.Highlight{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrHighlightNotFound
	}
	return nil
}
