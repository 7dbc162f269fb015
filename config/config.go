package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries every credential and knob the assistant needs. It is built
// once in main and injected into each component; nothing reads the
// environment after startup.
type Config struct {
	DataDir      string `json:"data_dir"`
	DataCacheDir string `json:"data_cache_dir"`

	// Chat model (OpenAI-compatible backend).
	BackendURL   string `json:"backend_url"`
	OpenAIAPIKey string `json:"openai_api_key"`
	ChatModel    string `json:"chat_model"`
	MaxTokens    int    `json:"max_tokens"`

	// Data providers.
	NewsAPIKey    string `json:"news_api_key"`
	FinnhubAPIKey string `json:"finnhub_api_key"`

	// Trend lookback window: one of "1y", "3y", "5y".
	TrendLookback string `json:"trend_lookback"`

	CacheEnabled bool `json:"cache_enabled"`
	Debug        bool `json:"debug"`
}

func DefaultConfig() *Config {
	currentDir, _ := os.Getwd()

	cfg := &Config{
		DataDir:      filepath.Join(currentDir, "data"),
		DataCacheDir: filepath.Join(currentDir, "data", "cache"),

		BackendURL: "https://api.openai.com/v1",
		ChatModel:  "gpt-4",
		MaxTokens:  4096,

		TrendLookback: "1y",
		CacheEnabled:  true,
		Debug:         false,
	}

	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg.loadFromEnv()

	return cfg
}

func (c *Config) loadFromEnv() {
	if val := os.Getenv("DATA_DIR"); val != "" {
		c.DataDir = val
	}
	if val := os.Getenv("DATA_CACHE_DIR"); val != "" {
		c.DataCacheDir = val
	}

	if val := os.Getenv("BACKEND_URL"); val != "" {
		c.BackendURL = val
	}
	if val := os.Getenv("OPENAI_API_KEY"); val != "" {
		c.OpenAIAPIKey = val
	}
	if val := os.Getenv("CHAT_MODEL"); val != "" {
		c.ChatModel = val
	}
	if val := os.Getenv("MAX_TOKENS"); val != "" {
		if v, err := strconv.Atoi(val); err == nil {
			c.MaxTokens = v
		}
	}

	if val := os.Getenv("NEWS_API_KEY"); val != "" {
		c.NewsAPIKey = val
	}
	if val := os.Getenv("FINNHUB_API_KEY"); val != "" {
		c.FinnhubAPIKey = val
	}

	if val := os.Getenv("TREND_LOOKBACK"); val != "" {
		c.TrendLookback = val
	}

	if val := os.Getenv("CACHE_ENABLED"); val != "" {
		if enabled, err := strconv.ParseBool(val); err == nil {
			c.CacheEnabled = enabled
		}
	}
	if val := os.Getenv("FINADVISOR_DEBUG"); val != "" {
		if enabled, err := strconv.ParseBool(val); err == nil {
			c.Debug = enabled
		}
	}
}

// Validate reports configuration problems that would make every request
// fail. Provider keys for optional paths (news, earnings) are checked at
// call time instead, so a user without a NewsAPI key can still ask general
// questions.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OpenAIAPIKey) == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	switch c.TrendLookback {
	case "1y", "3y", "5y":
	default:
		return fmt.Errorf("invalid trend lookback %q: must be 1y, 3y or 5y", c.TrendLookback)
	}
	return nil
}

func (c *Config) EnsureDirectories() error {
	dirs := []string{c.DataDir, c.DataCacheDir}
	for _, dir := range dirs {
		path := strings.TrimSpace(dir)
		if path == "" {
			continue
		}
		if err := os.MkdirAll(path, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", path, err)
		}
	}
	return nil
}

// LookbackDays converts the configured lookback window into a day count.
func (c *Config) LookbackDays() int {
	switch c.TrendLookback {
	case "3y":
		return 3 * 365
	case "5y":
		return 5 * 365
	default:
		return 365
	}
}
