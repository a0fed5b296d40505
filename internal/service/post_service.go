package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/inkwell/internal/db"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrSlugTaken    = errors.New("post slug already in use")
)

// PostService wraps post related database operations.
type PostService struct {
	db *gorm.DB
}

// PostFilter describes filters for listing posts.
type PostFilter struct {
	Category string
	Status   string
	All      bool
	Limit    int
	Skip     int
}

// PostListResult aggregates paginated list data and the total count.
type PostListResult struct {
	Posts []db.Post
	Total int64
	Limit int
	Skip  int
}

// PostInput represents fields accepted when creating or updating a post.
type PostInput struct {
	Title    string
	Slug     string
	Content  string
	Format   string
	Excerpt  string
	Category string
	Tags     []string
	Status   string
}

// NewPostService creates a PostService instance.
func NewPostService(gdb *gorm.DB) *PostService {
	return &PostService{db: gdb}
}

// List 按过滤条件分页返回文章，按发布时间倒序。
// 未显式指定状态时默认只返回 published，除非 All 为真。
func (s *PostService) List(filter PostFilter) (*PostListResult, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	skip := filter.Skip
	if skip < 0 {
		skip = 0
	}

	query := s.db.Model(&db.Post{})
	if !filter.All {
		status := strings.TrimSpace(filter.Status)
		if status == "" {
			status = db.PostStatusPublished
		}
		query = query.Where("status = ?", status)
	}
	if category := strings.TrimSpace(filter.Category); category != "" {
		query = query.Where("category = ?", category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var posts []db.Post
	if err := query.
		Order("published_at desc").
		Order("created_at desc").
		Limit(limit).
		Offset(skip).
		Find(&posts).Error; err != nil {
		return nil, err
	}

	if err := s.attachUpvoteCounts(posts); err != nil {
		return nil, err
	}

	return &PostListResult{Posts: posts, Total: total, Limit: limit, Skip: skip}, nil
}

// GetBySlug 按 slug 返回单篇文章，附带点赞数与渲染后的正文。
func (s *PostService) GetBySlug(slug string) (*db.Post, error) {
	var post db.Post
	if err := s.db.Where("slug = ?", slug).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	count, err := s.upvoteCount(post.PublicID)
	if err != nil {
		return nil, err
	}
	post.UpvoteCount = count

	rendered, err := RenderContent(post.Format, post.Content)
	if err != nil {
		return nil, err
	}
	post.ContentHTML = rendered

	return &post, nil
}

// Get 按公开 ID 返回单篇文章。
func (s *PostService) Get(publicID string) (*db.Post, error) {
	var post db.Post
	if err := s.db.Where("public_id = ?", publicID).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Resolve 按 slug 或公开 ID 定位文章。
// 公开接口以 slug 寻址，后台与点赞接口以公开 ID 寻址，统一走这里。
func (s *PostService) Resolve(ref string) (*db.Post, error) {
	var post db.Post
	if err := s.db.Where("slug = ? OR public_id = ?", ref, ref).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// IncrementViews 以单条原子 UPDATE 递增浏览计数。
// 按 slug 读取是公开接口，GET 因此带有副作用，这是刻意的产品行为。
func (s *PostService) IncrementViews(slug string) error {
	return s.db.Model(&db.Post{}).
		Where("slug = ?", slug).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

// Create 持久化新文章。slug 缺省时从标题派生；
// 以 published 状态创建时立即写入 published_at。
func (s *PostService) Create(input PostInput, author *db.User) (*db.Post, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, errors.New("title is required")
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = Slugify(title)
	}
	if slug == "" {
		return nil, errors.New("cannot derive slug from title")
	}

	var existing db.Post
	if err := s.db.Where("slug = ?", slug).First(&existing).Error; err == nil {
		return nil, ErrSlugTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = db.PostStatusDraft
	}

	format := strings.TrimSpace(input.Format)
	if format == "" {
		format = db.PostFormatHTML
	}

	post := db.Post{
		PublicID: uuid.NewString(),
		Slug:     slug,
		Title:    title,
		Content:  input.Content,
		Format:   format,
		Excerpt:  strings.TrimSpace(input.Excerpt),
		Category: strings.TrimSpace(input.Category),
		Tags:     datatypes.NewJSONSlice(normalizeTags(input.Tags)),
		Status:   status,
	}
	if author != nil {
		post.AuthorID = author.PublicID
		post.AuthorName = author.Name
	}
	if post.Published() {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}

	return &post, nil
}

// Update 按公开 ID 更新文章。
// becamePublished 标记本次调用是否完成了 draft→published 转换，
// 用于触发订阅者通知。published_at 只在首次发布时写入，之后不变。
func (s *PostService) Update(publicID string, input PostInput) (post *db.Post, becamePublished bool, err error) {
	var existing db.Post
	if err := s.db.Where("public_id = ?", publicID).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrPostNotFound
		}
		return nil, false, err
	}

	if title := strings.TrimSpace(input.Title); title != "" {
		existing.Title = title
	}
	if slug := strings.TrimSpace(input.Slug); slug != "" && slug != existing.Slug {
		var conflict db.Post
		if err := s.db.Where("slug = ? AND id <> ?", slug, existing.ID).First(&conflict).Error; err == nil {
			return nil, false, ErrSlugTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, err
		}
		existing.Slug = slug
	}
	if input.Content != "" {
		existing.Content = input.Content
	}
	if format := strings.TrimSpace(input.Format); format != "" {
		existing.Format = format
	}
	if input.Excerpt != "" {
		existing.Excerpt = strings.TrimSpace(input.Excerpt)
	}
	if category := strings.TrimSpace(input.Category); category != "" {
		existing.Category = category
	}
	if input.Tags != nil {
		existing.Tags = datatypes.NewJSONSlice(normalizeTags(input.Tags))
	}

	if status := strings.TrimSpace(input.Status); status != "" && status != existing.Status {
		if status == db.PostStatusPublished && existing.PublishedAt == nil {
			now := time.Now()
			existing.PublishedAt = &now
			becamePublished = true
		}
		existing.Status = status
	}

	if err := s.db.Save(&existing).Error; err != nil {
		return nil, false, err
	}

	return &existing, becamePublished, nil
}

// Delete 删除文章并级联清除其评论与点赞。
func (s *PostService) Delete(publicID string) error {
	var post db.Post
	if err := s.db.Where("public_id = ?", publicID).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.PublicID).Delete(&db.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", post.PublicID).Delete(&db.Upvote{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
}

func (s *PostService) upvoteCount(postID string) (int64, error) {
	var count int64
	if err := s.db.Model(&db.Upvote{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *PostService) attachUpvoteCounts(posts []db.Post) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]string, 0, len(posts))
	for _, post := range posts {
		ids = append(ids, post.PublicID)
	}

	var rows []struct {
		PostID string
		Count  int64
	}
	if err := s.db.Model(&db.Upvote{}).
		Select("post_id, COUNT(*) AS count").
		Where("post_id IN ?", ids).
		Group("post_id").
		Scan(&rows).Error; err != nil {
		return err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.PostID] = row.Count
	}
	for i := range posts {
		posts[i].UpvoteCount = counts[posts[i].PublicID]
	}

	return nil
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
