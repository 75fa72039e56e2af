package config

import (
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	Host     string
	Port     string
	BaseURL  string
	LogLevel string
	LogMode  string
	LogFile  string

	RedisURL       string
	UploadDir      string
	UploadMaxWidth uint

	AdminEmails []string
	JWTSecret   string
	JWTTTL      time.Duration
	// JWTSecretGenerated is set when no JWT_SECRET was configured and tokens
	// will not survive a restart.
	JWTSecretGenerated bool
}

// LoadConfig reads the process environment, after merging a .env file from
// the working directory when one exists.
func LoadConfig() *Config {
	_ = godotenv.Load()

	port := getEnv("PORT", "5002")
	cfg := &Config{
		Host:           getEnv("HOST", "0.0.0.0"),
		Port:           port,
		BaseURL:        strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:"+port), "/"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogMode:        getEnv("LOG_MODE", "development"),
		LogFile:        getEnv("LOG_FILE", ""),
		RedisURL:       getEnv("REDIS_URL", ""),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		UploadMaxWidth: cast.ToUint(getEnv("UPLOAD_MAX_WIDTH", "1200")),
		AdminEmails:    splitList(getEnv("ADMIN_EMAILS", "admin@gmail.com")),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		JWTTTL:         getDuration("JWT_TTL", 24*time.Hour),
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
		cfg.JWTSecretGenerated = true
	}
	return cfg
}

func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return strings.TrimSpace(value)
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := cast.ToDurationE(getEnv(key, ""))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
