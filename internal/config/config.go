package config

import (
	"fmt"
	"os"
	"strings"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr    string
	Port          string
	DatabasePath  string
	GinMode       string
	CORSOrigins   string
	SiteBaseURL   string
	ResendAPIKey  string
	MailFrom      string
	AdminEmail    string
	AdminPassword string
	AdminName     string
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "inkwell.db"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	corsOrigins := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if corsOrigins == "" {
		corsOrigins = "*"
	}

	siteBaseURL := strings.TrimSpace(os.Getenv("SITE_BASE_URL"))
	if siteBaseURL == "" {
		siteBaseURL = "http://localhost:3000"
	}

	mailFrom := strings.TrimSpace(os.Getenv("MAIL_FROM"))
	if mailFrom == "" {
		mailFrom = "Inkwell <[email protected]>"
	}

	return AppConfig{
		ListenAddr:    listenAddr,
		Port:          port,
		DatabasePath:  databasePath,
		GinMode:       ginMode,
		CORSOrigins:   corsOrigins,
		SiteBaseURL:   siteBaseURL,
		ResendAPIKey:  strings.TrimSpace(os.Getenv("RESEND_API_KEY")),
		MailFrom:      mailFrom,
		AdminEmail:    strings.TrimSpace(os.Getenv("ADMIN_EMAIL")),
		AdminPassword: strings.TrimSpace(os.Getenv("ADMIN_PASSWORD")),
		AdminName:     strings.TrimSpace(os.Getenv("ADMIN_NAME")),
	}
}
