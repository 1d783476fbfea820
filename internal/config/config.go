package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	LogLevel string

	// Filesystem roots. Every job namespaces its storage beneath these.
	UploadDir    string
	OutputDir    string
	DatabasePath string

	// Upload limits
	MaxFileSize int64

	// Optional S3-compatible archive publication. Disabled when the
	// endpoint is empty.
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3BucketName      string
	S3UseSSL          bool
}

func Load() (*Config, error) {
	// A missing .env file is fine; plain environment variables still apply.
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		UploadDir:         getEnv("UPLOAD_DIR", "uploads"),
		OutputDir:         getEnv("OUTPUT_DIR", "outputs"),
		DatabasePath:      getEnv("DATABASE_PATH", "data/papers.db"),
		MaxFileSize:       getEnvInt64("MAX_FILE_SIZE", 20*1024*1024),
		S3Endpoint:        getEnv("S3_ENDPOINT", ""),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3BucketName:      getEnv("S3_BUCKET_NAME", "paper-archives"),
		S3UseSSL:          getEnv("S3_USE_SSL", "false") == "true",
	}

	return cfg, nil
}

// ArchivePublishingEnabled reports whether finished archives should also be
// pushed to object storage.
func (c *Config) ArchivePublishingEnabled() bool {
	return c.S3Endpoint != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}
