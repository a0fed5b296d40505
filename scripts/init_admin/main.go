package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/inkwell/internal/config"
	"github.com/inkwell/internal/db"
	"github.com/inkwell/internal/service"
)

// 引导后台管理员账号的一次性脚本。
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	gdb, err := db.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("数据库初始化失败")
	}

	email := cfg.AdminEmail
	password := cfg.AdminPassword
	if email == "" {
		email = "[email protected]"
	}
	if password == "" {
		password = "admin123"
	}

	auth := service.NewAuthService(gdb)
	if err := auth.EnsureAdmin(email, password, cfg.AdminName); err != nil {
		log.Fatal().Err(err).Msg("创建管理员失败")
	}

	fmt.Println("管理员账号就绪")
	fmt.Println("邮箱:", email)
}
