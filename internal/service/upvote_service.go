package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inkwell/internal/db"
)

// UpvoteService wraps the anonymous upvote toggle.
type UpvoteService struct {
	db *gorm.DB
}

// UpvoteStatus 描述某个访客对某篇文章的点赞状态与总数。
type UpvoteStatus struct {
	Upvoted bool  `json:"upvoted"`
	Count   int64 `json:"count"`
}

// NewUpvoteService creates an UpvoteService instance.
func NewUpvoteService(gdb *gorm.DB) *UpvoteService {
	return &UpvoteService{db: gdb}
}

// Toggle 切换 (post_id, visitor_id) 的点赞状态：存在则删除，不存在则插入。
// 幂等切换而非计数递增；唯一索引兜底并发下的重复插入。
// postID 是文章公开 ID，存在性由调用方保证。
func (s *UpvoteService) Toggle(postID, visitorID string) (*UpvoteStatus, error) {
	visitorID = strings.TrimSpace(visitorID)
	if visitorID == "" {
		return nil, errors.New("visitor_id is required")
	}

	var existing db.Upvote
	err := s.db.Where("post_id = ? AND visitor_id = ?", postID, visitorID).First(&existing).Error
	switch {
	case err == nil:
		if err := s.db.Delete(&existing).Error; err != nil {
			return nil, err
		}
		return s.Status(postID, visitorID)
	case errors.Is(err, gorm.ErrRecordNotFound):
		upvote := db.Upvote{
			PublicID:  uuid.NewString(),
			PostID:    postID,
			VisitorID: visitorID,
		}
		if err := s.db.Create(&upvote).Error; err != nil {
			return nil, err
		}
		return s.Status(postID, visitorID)
	default:
		return nil, err
	}
}

// Status 返回访客点赞状态与文章点赞总数。
func (s *UpvoteService) Status(postID, visitorID string) (*UpvoteStatus, error) {
	var count int64
	if err := s.db.Model(&db.Upvote{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return nil, err
	}

	status := UpvoteStatus{Count: count}
	if visitorID = strings.TrimSpace(visitorID); visitorID != "" {
		var mine int64
		if err := s.db.Model(&db.Upvote{}).
			Where("post_id = ? AND visitor_id = ?", postID, visitorID).
			Count(&mine).Error; err != nil {
			return nil, err
		}
		status.Upvoted = mine > 0
	}

	return &status, nil
}
