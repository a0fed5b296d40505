package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inkwell/internal/db"
)

var (
	ErrCommentNotFound      = errors.New("comment not found")
	ErrInvalidCommentStatus = errors.New("invalid comment status")
)

// CommentService wraps comment submission and moderation.
type CommentService struct {
	db *gorm.DB
}

// CommentInput represents fields accepted when a visitor submits a comment.
type CommentInput struct {
	Name    string
	Email   string
	Content string
}

// NewCommentService creates a CommentService instance.
func NewCommentService(gdb *gorm.DB) *CommentService {
	return &CommentService{db: gdb}
}

// SubmitForPost 受理访客评论：初始状态恒为 pending。
// postID 是文章公开 ID，存在性由调用方保证。
// 校验是最小化的：字段存在性加上邮箱包含 "@"。
func (s *CommentService) SubmitForPost(postID string, input CommentInput) (*db.Comment, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	content := strings.TrimSpace(input.Content)

	if name == "" || content == "" {
		return nil, errors.New("name and content are required")
	}
	if !strings.Contains(email, "@") {
		return nil, errors.New("invalid email")
	}

	comment := db.Comment{
		PublicID: uuid.NewString(),
		PostID:   postID,
		Name:     name,
		Email:    email,
		Content:  content,
		Status:   db.CommentStatusPending,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}

	return &comment, nil
}

// ListApproved 返回文章下已通过审核的评论，按时间正序。
// 调用方负责在公开响应中隐藏邮箱。
func (s *CommentService) ListApproved(postID string) ([]db.Comment, error) {
	var comments []db.Comment
	if err := s.db.
		Where("post_id = ? AND status = ?", postID, db.CommentStatusApproved).
		Order("created_at asc").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// ListForAdmin 返回后台评论列表，可按状态过滤，按时间倒序。
func (s *CommentService) ListForAdmin(status string) ([]db.Comment, error) {
	query := s.db.Model(&db.Comment{})
	if status = strings.TrimSpace(status); status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}

	var comments []db.Comment
	if err := query.Order("created_at desc").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// Moderate 变更评论状态并记录审核时间。只接受合法状态值。
func (s *CommentService) Moderate(publicID, status string) (*db.Comment, error) {
	switch status {
	case db.CommentStatusPending, db.CommentStatusApproved, db.CommentStatusRejected:
	default:
		return nil, ErrInvalidCommentStatus
	}

	var comment db.Comment
	if err := s.db.Where("public_id = ?", publicID).First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	now := time.Now()
	comment.Status = status
	comment.ModeratedAt = &now
	if err := s.db.Save(&comment).Error; err != nil {
		return nil, err
	}

	return &comment, nil
}

// Delete 删除单条评论。
func (s *CommentService) Delete(publicID string) error {
	result := s.db.Where("public_id = ?", publicID).Delete(&db.Comment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}
