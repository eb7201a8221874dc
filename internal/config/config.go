package config

import (
	"os"
	"strconv"
	"strings"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	ApplicationName    string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
// PublicBaseURL, when set, is used to build permanent image links instead of presigned ones.
type MinIOConfig struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	UseSSL        bool
	PublicBaseURL string
}

// RedisConfig holds the connection for the token revocation store.
// An empty Addr disables revocation.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// JWTConfig controls the API access tokens.
type JWTConfig struct {
	Secret   string
	TTLHours int
}

// IdentityConfig points at the external identity provider whose ID tokens
// are exchanged for API tokens.
type IdentityConfig struct {
	FirebaseProjectID string
	CertsURL          string
}

// PaymentConfig holds payment gateway settings.
type PaymentConfig struct {
	StripeSecretKey string
	Currency        string
	VerifyIntents   bool
}

// UploadConfig limits image uploads.
type UploadConfig struct {
	MaxBytes    int
	URLTTLHours int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost          string
	Port             string
	Timezone         string
	CORSAllowOrigins string
	CoverageFile     string
	Database         DatabaseConfig
	MinIO            MinIOConfig
	Redis            RedisConfig
	JWT              JWTConfig
	Identity         IdentityConfig
	Payment          PaymentConfig
	Upload           UploadConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:          getEnv("APP_HOST", "localhost:8080"),
		Port:             getEnv("PORT", "8080"), // default only for non-sensitive value
		Timezone:         getEnv("APP_TIMEZONE", "Asia/Dhaka"),
		CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173"),
		CoverageFile:     getEnv("COVERAGE_FILE", ""),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			ApplicationName:    getEnv("DB_APPLICATION_NAME", "zoomboom-api"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:      getEnv("MINIO_ENDPOINT", ""),
			AccessKey:     getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey:     getEnv("MINIO_SECRET_KEY", ""),
			Bucket:        getEnv("MINIO_BUCKET", ""),
			UseSSL:        getEnvBool("MINIO_USE_SSL", false),
			PublicBaseURL: strings.TrimRight(getEnv("MINIO_PUBLIC_BASE_URL", ""), "/"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:   getEnv("JWT_SECRET", ""),
			TTLHours: getEnvInt("JWT_TTL_HOURS", 24),
		},
		Identity: IdentityConfig{
			FirebaseProjectID: getEnv("FIREBASE_PROJECT_ID", ""),
			CertsURL:          getEnv("FIREBASE_CERTS_URL", "https://www.googleapis.com/robot/v1/metadata/x509/securetoken@system.gserviceaccount.com"),
		},
		Payment: PaymentConfig{
			StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),
			Currency:        strings.ToLower(getEnv("PAYMENT_CURRENCY", "bdt")),
			VerifyIntents:   getEnvBool("PAYMENT_VERIFY_INTENTS", true),
		},
		Upload: UploadConfig{
			MaxBytes:    getEnvInt("UPLOAD_MAX_BYTES", 5<<20),
			URLTTLHours: getEnvInt("IMAGE_URL_TTL_HOURS", 168),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
