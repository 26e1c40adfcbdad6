package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	ServerAddr  string
	MysqlDSN    string
	JWTSecret   string
	CORSOrigins []string

	SMTPHost  string
	SMTPPort  int
	EmailUser string
	EmailPass string

	DigestCron string
}

func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("MYSQL_DSN", "root:root@tcp(localhost:3306)/birthday?charset=utf8mb4&parseTime=True&loc=Local")
	v.SetDefault("JWT_SECRET", "birthday-secret-key-change-in-production")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "https://hiyashree.github.io,http://localhost:5173,http://localhost:3000")
	v.SetDefault("SMTP_HOST", "smtp.gmail.com")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("DIGEST_CRON", "0 0 * * *")

	origins := strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	return &Config{
		ServerAddr:  ":" + v.GetString("PORT"),
		MysqlDSN:    v.GetString("MYSQL_DSN"),
		JWTSecret:   v.GetString("JWT_SECRET"),
		CORSOrigins: origins,
		SMTPHost:    v.GetString("SMTP_HOST"),
		SMTPPort:    v.GetInt("SMTP_PORT"),
		EmailUser:   v.GetString("EMAIL_USER"),
		EmailPass:   v.GetString("EMAIL_PASS"),
		DigestCron:  v.GetString("DIGEST_CRON"),
	}
}
