package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/jackyeh168/product_store/src/internal/infrastructure/logging"
)

// Config 由環境變數載入的執行設定
type Config struct {
	SeedFile string // 空字串表示使用內建目錄
	LogLevel string
	Verbose  bool
}

// LoadConfig 讀取環境變數並套用預設值
func LoadConfig() (Config, error) {
	cfg := Config{
		SeedFile: strings.TrimSpace(os.Getenv("STORE_SEED_FILE")),
		LogLevel: envDefault("STORE_LOG_LEVEL", "info"),
		Verbose:  isTruthy(os.Getenv("STORE_DEMO_VERBOSE")),
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("STORE_LOG_LEVEL: %w", err)
	}
	return cfg, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
