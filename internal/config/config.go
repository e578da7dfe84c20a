package config

import (
	"os"
	"strconv"
	"time"
)

type TaniPintarConfig struct {
	Port        string
	LogDir      string
	PostgresCfg PostgresConfig
	RedisCfg    RedisConfig
	MinioCfg    MinioConfig
	RabbitMQCfg RabbitMQConfig
	AuthCfg     AuthConfig
	MailCfg     MailConfig
	CORSCfg     CORSConfig
	CacheCfg    CacheConfig
}

type PostgresConfig struct {
	DBname   string
	Username string
	Password string
	Host     string
	Port     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type MinioConfig struct {
	MinioURL         string
	MinioAccessKey   string
	MinioSecretKey   string
	MinioLocation    string
	MinioSecure      string
	MinioResourceURL string
}

type RabbitMQConfig struct {
	Host     string
	Username string
	Password string
	Port     string
}

type AuthConfig struct {
	JWTSecret     string
	TokenTTL      time.Duration
	AdminUsername string
	AdminPassword string
}

type MailConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	From      string
	Recipient string
}

type CORSConfig struct {
	AllowedOrigin string
}

type CacheConfig struct {
	RecordTTL time.Duration
}

func New() *TaniPintarConfig {
	return &TaniPintarConfig{
		Port:   getEnvOrDefault("PORT", "3001"),
		LogDir: getEnvOrDefault("LOG_DIR", "/tanipintar/log/api"),
		PostgresCfg: PostgresConfig{
			DBname:   getEnvOrDefault("POSTGRES_DB", "tanipintar"),
			Username: getEnvOrDefault("POSTGRES_USER", "postgres"),
			Password: getEnvOrDefault("POSTGRES_PASSWORD", "postgres"),
			Host:     getEnvOrDefault("POSTGRES_HOST", "localhost"),
			Port:     getEnvOrDefault("POSTGRES_PORT", "5432"),
		},
		RedisCfg: RedisConfig{
			Host:     getEnvOrDefault("REDIS_HOST", "localhost"),
			Port:     getEnvOrDefault("REDIS_PORT", "6379"),
			Password: getEnvOrDefault("REDIS_PASSWORD", ""),
			DB:       getIntEnvOrDefault("REDIS_DB", 0),
		},
		MinioCfg: MinioConfig{
			MinioURL:         getEnvOrDefault("MINIO_ENDPOINT", "http://localhost:9000"),
			MinioAccessKey:   getEnvOrDefault("MINIO_ACCESS_KEY", "minio"),
			MinioSecretKey:   getEnvOrDefault("MINIO_SECRET_KEY", "minio123"),
			MinioLocation:    getEnvOrDefault("MINIO_LOCATION", "us-east-1"),
			MinioSecure:      getEnvOrDefault("MINIO_SECURE", "false"),
			MinioResourceURL: getEnvOrDefault("MINIO_RESOURCE_URL", "http://localhost:9000/"),
		},
		RabbitMQCfg: RabbitMQConfig{
			Host:     getEnvOrDefault("RABBITMQ_HOST", "localhost"),
			Username: getEnvOrDefault("RABBITMQ_USER", "admin"),
			Password: getEnvOrDefault("RABBITMQ_PWD", "admin"),
			Port:     getEnvOrDefault("RABBITMQ_PORT", "5672"),
		},
		AuthCfg: AuthConfig{
			JWTSecret:     getEnvOrDefault("JWT_SECRET", ""),
			TokenTTL:      time.Duration(getIntEnvOrDefault("JWT_TTL_HOURS", 24)) * time.Hour,
			AdminUsername: getEnvOrDefault("ADMIN_USERNAME", "admin"),
			AdminPassword: getEnvOrDefault("ADMIN_PASSWORD", ""),
		},
		MailCfg: MailConfig{
			Host:      getEnvOrDefault("SMTP_HOST", "smtp.gmail.com"),
			Port:      getIntEnvOrDefault("SMTP_PORT", 587),
			Username:  getEnvOrDefault("SMTP_USERNAME", ""),
			Password:  getEnvOrDefault("SMTP_PASSWORD", ""),
			From:      getEnvOrDefault("MAIL_FROM", "TaniPintar <no-reply@tanipintar.id>"),
			Recipient: getEnvOrDefault("CONTACT_RECIPIENT", "admin@tanipintar.id"),
		},
		CORSCfg: CORSConfig{
			AllowedOrigin: getEnvOrDefault("CORS_ALLOWED_ORIGIN", "http://localhost:3000"),
		},
		CacheCfg: CacheConfig{
			RecordTTL: time.Duration(getIntEnvOrDefault("RECORD_CACHE_TTL_SECONDS", 60)) * time.Second,
		},
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnvOrDefault(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
