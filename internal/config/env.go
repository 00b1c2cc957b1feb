package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr   string
	GinMode   string
	JWTSecret string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	SMTPHost   string
	SMTPPort   string
	SMTPUser   string
	SMTPPass   string
	AdminEmail string
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func LoadEnv() Env {
	return Env{
		AppAddr:   getenv("APP_ADDR", ":8080"),
		GinMode:   getenv("GIN_MODE", ""),
		JWTSecret: getenv("JWT_SECRET", "super-secret-key-change-me"),

		DBUser: getenv("DB_USER", "root"),
		DBPass: getenv("DB_PASS", ""),
		DBHost: getenv("DB_HOST", "127.0.0.1:3306"),
		DBName: getenv("DB_NAME", "tour_office"),

		SMTPHost:   getenv("SMTP_HOST", ""),
		SMTPPort:   getenv("SMTP_PORT", "587"),
		SMTPUser:   getenv("SMTP_USERNAME", ""),
		SMTPPass:   getenv("SMTP_PASSWORD", ""),
		AdminEmail: getenv("ADMIN_EMAIL", ""),
	}
}
