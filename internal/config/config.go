package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 서비스 전역 설정
type Config struct {
	Port        string
	Development bool
	LogLevel    string
	DataDir     string

	// Google Sheets (주문 원장 + 백업 대상)
	GoogleSheetID      string
	GoogleClientEmail  string
	GooglePrivateKey   string
	GoogleProjectID    string

	// 원장 백엔드: sheets | sqlite | postgres
	LedgerDriver string
	LedgerDSN    string

	// 결제 (Toss Payments V2)
	TossSecretKey  string
	TossAPIBaseURL string

	JWTSecret string

	NotionAPIKey   string
	NotionCacheTTL time.Duration
	RedisAddr      string

	SentryDSN   string
	OTelEnabled bool
}

// Load 환경변수 우선, config.yaml 보조
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("PORT", "3000")
	v.SetDefault("DEVELOPMENT", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DATA_DIR", "data")
	v.SetDefault("LEDGER_DRIVER", "sheets")
	v.SetDefault("TOSS_API_BASE_URL", "https://api.tosspayments.com")
	v.SetDefault("JWT_SECRET", "your-secret-key")
	v.SetDefault("NOTION_CACHE_TTL", "10m")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("OTEL_ENABLED", false)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{
		Port:              v.GetString("PORT"),
		Development:       v.GetBool("DEVELOPMENT"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		DataDir:           v.GetString("DATA_DIR"),
		GoogleSheetID:     v.GetString("GOOGLE_SHEET_ID"),
		GoogleClientEmail: v.GetString("GOOGLE_CLIENT_EMAIL"),
		GooglePrivateKey:  v.GetString("GOOGLE_PRIVATE_KEY"),
		GoogleProjectID:   v.GetString("GOOGLE_PROJECT_ID"),
		LedgerDriver:      v.GetString("LEDGER_DRIVER"),
		LedgerDSN:         v.GetString("LEDGER_DSN"),
		TossSecretKey:     v.GetString("TOSS_SECRET_KEY"),
		TossAPIBaseURL:    v.GetString("TOSS_API_BASE_URL"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		NotionAPIKey:      v.GetString("NOTION_API_KEY"),
		NotionCacheTTL:    v.GetDuration("NOTION_CACHE_TTL"),
		RedisAddr:         v.GetString("REDIS_ADDR"),
		SentryDSN:         v.GetString("SENTRY_DSN"),
		OTelEnabled:       v.GetBool("OTEL_ENABLED"),
	}

	// 환경변수로 넘어온 개인키는 개행이 이스케이프되어 있음
	cfg.GooglePrivateKey = strings.ReplaceAll(cfg.GooglePrivateKey, `\n`, "\n")

	return cfg, nil
}
