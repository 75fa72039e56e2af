package config

import (
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"HOST", "PORT", "PUBLIC_BASE_URL", "UPLOAD_MAX_WIDTH", "ADMIN_EMAILS", "JWT_SECRET", "JWT_TTL"} {
		t.Setenv(key, "")
	}
	cfg := LoadConfig()

	if cfg.Addr() != "0.0.0.0:5002" {
		t.Errorf("Addr = %q", cfg.Addr())
	}
	if cfg.BaseURL != "http://localhost:5002" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.UploadMaxWidth != 1200 {
		t.Errorf("UploadMaxWidth = %d", cfg.UploadMaxWidth)
	}
	if len(cfg.AdminEmails) != 1 || cfg.AdminEmails[0] != "admin@gmail.com" {
		t.Errorf("AdminEmails = %v", cfg.AdminEmails)
	}
	if cfg.JWTTTL != 24*time.Hour {
		t.Errorf("JWTTTL = %v", cfg.JWTTTL)
	}
	if !cfg.JWTSecretGenerated || len(cfg.JWTSecret) < 32 {
		t.Errorf("generated secret = %q (%v)", cfg.JWTSecret, cfg.JWTSecretGenerated)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("PUBLIC_BASE_URL", "https://cafe.example.com/")
	t.Setenv("ADMIN_EMAILS", "a@x.io, b@x.io ,")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_TTL", "90m")
	t.Setenv("UPLOAD_MAX_WIDTH", "800")

	cfg := LoadConfig()
	if cfg.BaseURL != "https://cafe.example.com" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if len(cfg.AdminEmails) != 2 || cfg.AdminEmails[1] != "b@x.io" {
		t.Errorf("AdminEmails = %v", cfg.AdminEmails)
	}
	if cfg.JWTSecret != "s3cret" || cfg.JWTSecretGenerated {
		t.Errorf("JWT secret = %q generated=%v", cfg.JWTSecret, cfg.JWTSecretGenerated)
	}
	if cfg.JWTTTL != 90*time.Minute {
		t.Errorf("JWTTTL = %v", cfg.JWTTTL)
	}
	if cfg.UploadMaxWidth != 800 {
		t.Errorf("UploadMaxWidth = %d", cfg.UploadMaxWidth)
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want zapcore.Level
	}{
		{"debug console", Config{LogLevel: "debug", LogMode: "development"}, zapcore.DebugLevel},
		{"bad level falls back", Config{LogLevel: "loud", LogMode: "production"}, zapcore.InfoLevel},
		{"rotating file", Config{LogLevel: "warn", LogFile: filepath.Join(t.TempDir(), "cafe.log")}, zapcore.WarnLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(&tt.cfg)
			if err != nil {
				t.Fatalf("NewLogger: %v", err)
			}
			if !logger.Core().Enabled(tt.want) {
				t.Errorf("level %v not enabled", tt.want)
			}
			if tt.want > zapcore.DebugLevel && logger.Core().Enabled(tt.want-1) {
				t.Errorf("level below %v enabled", tt.want)
			}
		})
	}
}
