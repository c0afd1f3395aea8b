package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	StagingDir   string
	ReportDir    string
	Storage      string // "local" or "s3"
	MaxUploadMB  int64
	JWTSecret    string
	AwsAccessKey string
	AwsSecretKey string
	AwsRegion    string
	BucketName   string
}

// LoadConfig loads the environment variables and returns the config.
// Defaults are chosen so a bare local run works without a .env file.
func LoadConfig() *Config {

	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		StagingDir:   getEnv("STAGING_DIR", "uploaded_pdfs"),
		ReportDir:    getEnv("REPORT_DIR", "reports"),
		Storage:      getEnv("STORAGE", "local"),
		MaxUploadMB:  int64(getEnvInt("MAX_UPLOAD_MB", 50)),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		AwsAccessKey: getEnv("AWS_ACCESS_KEY", ""),
		AwsSecretKey: getEnv("AWS_SECRET_KEY", ""),
		AwsRegion:    getEnv("AWS_REGION", "us-east-2"),
		BucketName:   getEnv("BUCKET_NAME", "artmatch-reports"),
	}

	if cfg.Storage != "local" && cfg.Storage != "s3" {
		log.Fatalf("STORAGE=%q not supported, use local or s3", cfg.Storage)
	}

	return cfg
}

// Helper to read environment variables with a default fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, def int) int {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("WARN: %s=%q not an int, using default %d", key, v, def)
		return def
	}
	return n
}
