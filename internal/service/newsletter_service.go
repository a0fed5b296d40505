package service

import (
	"fmt"
	"html"
	"strings"

	"github.com/rs/zerolog"

	"github.com/inkwell/internal/db"
)

// NewsletterService 负责发布转换时对订阅者的邮件扇出。
// 尽力而为、至多一次：单个收件人失败只记日志，不中断批次，也不重试。
type NewsletterService struct {
	subscribers *SubscriberService
	mailer      Mailer
	baseURL     string
	logger      zerolog.Logger
}

// FanOutResult 汇总一次扇出的投递情况，便于观测与测试。
type FanOutResult struct {
	Sent   int
	Failed int
}

// NewNewsletterService creates a NewsletterService instance.
func NewNewsletterService(subscribers *SubscriberService, mailer Mailer, baseURL string, logger zerolog.Logger) *NewsletterService {
	return &NewsletterService{
		subscribers: subscribers,
		mailer:      mailer,
		baseURL:     strings.TrimRight(baseURL, "/"),
		logger:      logger,
	}
}

// FanOut 给所有仍在订阅中的邮箱各发一封新文章邮件。
// 调用方通常在独立 goroutine 中执行，HTTP 响应不等待投递完成。
func (s *NewsletterService) FanOut(post *db.Post) FanOutResult {
	var result FanOutResult

	emails, err := s.subscribers.ActiveEmails()
	if err != nil {
		s.logger.Error().Err(err).Str("post", post.Slug).Msg("newsletter: failed to load subscribers")
		return result
	}
	if len(emails) == 0 {
		return result
	}

	subject := fmt.Sprintf("New post: %s", post.Title)
	body := s.renderBody(post)

	for _, email := range emails {
		if err := s.mailer.Send(email, subject, body); err != nil {
			result.Failed++
			s.logger.Error().Err(err).
				Str("post", post.Slug).
				Str("recipient", email).
				Msg("newsletter: delivery failed")
			continue
		}
		result.Sent++
	}

	s.logger.Info().
		Str("post", post.Slug).
		Int("sent", result.Sent).
		Int("failed", result.Failed).
		Msg("newsletter: fan-out finished")

	return result
}

func (s *NewsletterService) renderBody(post *db.Post) string {
	title := html.EscapeString(post.Title)
	excerpt := html.EscapeString(post.Excerpt)
	link := fmt.Sprintf("%s/blog/%s", s.baseURL, post.Slug)

	return fmt.Sprintf(
		`<h2>%s</h2><p>%s</p><p><a href="%s">Read the full post</a></p>`,
		title, excerpt, link,
	)
}
