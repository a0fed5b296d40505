package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/inkwell/internal/config"
	"github.com/inkwell/internal/db"
	"github.com/inkwell/internal/handler"
	"github.com/inkwell/internal/router"
	"github.com/inkwell/internal/service"
)

func main() {
	// .env 若存在则加载，缺失不算错误。
	_ = godotenv.Load()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	gdb, err := db.Open(cfg.DatabasePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize database")
	}

	mailer := service.NewResendMailer(cfg.ResendAPIKey, cfg.MailFrom)
	api := handler.NewAPI(gdb, mailer, cfg.SiteBaseURL, logger)

	// 引导后台管理员账号（仅当配置了凭证且账号不存在时）。
	if err := api.Auth().EnsureAdmin(cfg.AdminEmail, cfg.AdminPassword, cfg.AdminName); err != nil {
		logger.Fatal().Err(err).Msg("failed to ensure admin user")
	}

	r := router.Setup(api, cfg.CORSOrigins, logger)

	logger.Info().Str("addr", cfg.ListenAddr).Msg("starting server")
	if err := r.Run(cfg.ListenAddr); err != nil {
		logger.Fatal().Err(err).Msg("failed to run server")
	}
}
