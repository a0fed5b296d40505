package handler

import (
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/inkwell/internal/service"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db            *gorm.DB
	auth          *service.AuthService
	posts         *service.PostService
	comments      *service.CommentService
	subscribers   *service.SubscriberService
	upvotes       *service.UpvoteService
	taxonomy      *service.TaxonomyService
	bookmarks     *service.BookmarkService
	highlights    *service.HighlightService
	notifications *service.NotificationService
	newsletter    *service.NewsletterService
	logger        zerolog.Logger
}

// NewAPI constructs a handler set with shared services.
// mailer 与 baseURL 用于发布时的订阅者邮件扇出。
func NewAPI(gdb *gorm.DB, mailer service.Mailer, baseURL string, logger zerolog.Logger) *API {
	subscriberService := service.NewSubscriberService(gdb)

	return &API{
		db:            gdb,
		auth:          service.NewAuthService(gdb),
		posts:         service.NewPostService(gdb),
		comments:      service.NewCommentService(gdb),
		subscribers:   subscriberService,
		upvotes:       service.NewUpvoteService(gdb),
		taxonomy:      service.NewTaxonomyService(gdb),
		bookmarks:     service.NewBookmarkService(gdb),
		highlights:    service.NewHighlightService(gdb),
		notifications: service.NewNotificationService(gdb),
		newsletter:    service.NewNewsletterService(subscriberService, mailer, baseURL, logger),
		logger:        logger,
	}
}

// DB exposes the underlying gorm instance for startup helpers.
func (a *API) DB() *gorm.DB {
	return a.db
}

// Auth exposes the auth service for middleware wiring.
func (a *API) Auth() *service.AuthService {
	return a.auth
}
