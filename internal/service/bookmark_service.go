package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inkwell/internal/db"
)

var (
	ErrAlreadyBookmarked = errors.New("post already bookmarked")
	ErrBookmarkNotFound  = errors.New("bookmark not found")
)

// BookmarkService wraps per-user post bookmarks.
type BookmarkService struct {
	db *gorm.DB
}

// NewBookmarkService creates a BookmarkService instance.
func NewBookmarkService(gdb *gorm.DB) *BookmarkService {
	return &BookmarkService{db: gdb}
}

// List 返回用户的收藏，附带文章详情，按时间倒序。
// 文章已删除或未发布的收藏是孤儿，直接过滤掉。
func (s *BookmarkService) List(userID string) ([]db.Bookmark, error) {
	var bookmarks []db.Bookmark
	if err := s.db.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&bookmarks).Error; err != nil {
		return nil, err
	}
	if len(bookmarks) == 0 {
		return []db.Bookmark{}, nil
	}

	postIDs := make([]string, 0, len(bookmarks))
	for _, bookmark := range bookmarks {
		postIDs = append(postIDs, bookmark.PostID)
	}

	var posts []db.Post
	if err := s.db.
		Where("public_id IN ? AND status = ?", postIDs, db.PostStatusPublished).
		Find(&posts).Error; err != nil {
		return nil, err
	}

	byID := make(map[string]*db.Post, len(posts))
	for i := range posts {
		byID[posts[i].PublicID] = &posts[i]
	}

	out := make([]db.Bookmark, 0, len(bookmarks))
	for _, bookmark := range bookmarks {
		post, ok := byID[bookmark.PostID]
		if !ok {
			continue
		}
		bookmark.Post = post
		out = append(out, bookmark)
	}

	return out, nil
}

// Add 收藏文章，重复收藏视为错误。
func (s *BookmarkService) Add(userID, postID string) (*db.Bookmark, error) {
	var existing db.Bookmark
	if err := s.db.Where("user_id = ? AND post_id = ?", userID, postID).First(&existing).Error; err == nil {
		return nil, ErrAlreadyBookmarked
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	bookmark := db.Bookmark{
		PublicID: uuid.NewString(),
		UserID:   userID,
		PostID:   postID,
	}
	if err := s.db.Create(&bookmark).Error; err != nil {
		return nil, err
	}

	return &bookmark, nil
}

// Remove 按文章 ID 取消当前用户的收藏。
func (s *BookmarkService) Remove(userID, postID string) error {
	result := s.db.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&db.Bookmark{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookmarkNotFound
	}
	return nil
}
