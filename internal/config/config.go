package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken    string `yaml:"bot_token"`
		AdminChatID string `yaml:"admin_chat_id"`
	} `yaml:"telegram"`
	SMTP struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		From     string `yaml:"from"`
	} `yaml:"smtp"`
	Scan struct {
		Cron           string  `yaml:"cron"`
		LookbackDays   int     `yaml:"lookback_days"`
		MinBars        int     `yaml:"min_bars"`
		MaxUniverse    int     `yaml:"max_universe"`
		PaceMillis     int     `yaml:"pace_millis"`
		ProgressEvery  int     `yaml:"progress_every"`
		EMAShortSpan   int     `yaml:"ema_short_span"`
		EMALongSpan    int     `yaml:"ema_long_span"`
		RSIPeriod      int     `yaml:"rsi_period"`
		RSIMin         float64 `yaml:"rsi_min"`
		RSIMax         float64 `yaml:"rsi_max"`
		VolumeWindow   int     `yaml:"volume_window"`
		VolumeMultiple float64 `yaml:"volume_multiple"`
		HighWindow     int     `yaml:"high_window"`
		ProximityRatio float64 `yaml:"proximity_ratio"`
	} `yaml:"scan"`
	Universe struct {
		BulkListURL string `yaml:"bulk_list_url"`
		IndexAPIURL string `yaml:"index_api_url"`
	} `yaml:"universe"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A .env file in the working directory is honored if present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_ADMIN_CHAT_ID"); v != "" {
		cfg.Telegram.AdminChatID = v
	}
	if v := os.Getenv("SMTP_HOST"); v != "" {
		cfg.SMTP.Host = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.SMTP.Port = p
		}
	}
	if v := os.Getenv("SMTP_USER"); v != "" {
		cfg.SMTP.User = v
	}
	if v := os.Getenv("SMTP_PASS"); v != "" {
		cfg.SMTP.Password = v
	}
	if v := os.Getenv("FROM_EMAIL"); v != "" {
		cfg.SMTP.From = v
	}
	if v := os.Getenv("SCAN_CRON"); v != "" {
		cfg.Scan.Cron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Scan.Cron == "" {
		c.Scan.Cron = "0 30 16 * * 1-5" // weekday market close
	}
	if c.Scan.LookbackDays == 0 {
		c.Scan.LookbackDays = 365
	}
	if c.Scan.MinBars == 0 {
		c.Scan.MinBars = 60
	}
	if c.Scan.MaxUniverse == 0 {
		c.Scan.MaxUniverse = 2500
	}
	if c.Scan.PaceMillis == 0 {
		c.Scan.PaceMillis = 100
	}
	if c.Scan.ProgressEvery == 0 {
		c.Scan.ProgressEvery = 50
	}
	if c.Scan.EMAShortSpan == 0 {
		c.Scan.EMAShortSpan = 20
	}
	if c.Scan.EMALongSpan == 0 {
		c.Scan.EMALongSpan = 50
	}
	if c.Scan.RSIPeriod == 0 {
		c.Scan.RSIPeriod = 14
	}
	if c.Scan.RSIMin == 0 {
		c.Scan.RSIMin = 45
	}
	if c.Scan.RSIMax == 0 {
		c.Scan.RSIMax = 68
	}
	if c.Scan.VolumeWindow == 0 {
		c.Scan.VolumeWindow = 20
	}
	if c.Scan.VolumeMultiple == 0 {
		c.Scan.VolumeMultiple = 1.5
	}
	if c.Scan.HighWindow == 0 {
		c.Scan.HighWindow = 252
	}
	if c.Scan.ProximityRatio == 0 {
		c.Scan.ProximityRatio = 0.70
	}
	if c.Universe.BulkListURL == "" {
		c.Universe.BulkListURL = "https://archives.nseindia.com/content/equities/EQUITY_L.csv"
	}
	if c.Universe.IndexAPIURL == "" {
		c.Universe.IndexAPIURL = "https://www.nseindia.com/api/equity-stockIndices?index=NIFTY%20500"
	}
	if c.SMTP.Host == "" {
		c.SMTP.Host = "smtp.gmail.com"
	}
	if c.SMTP.Port == 0 {
		c.SMTP.Port = 587
	}
	if c.SMTP.From == "" {
		c.SMTP.From = c.SMTP.User
	}
	if c.Database.SQLitePath == "" {
		c.Database.SQLitePath = "data/swingscout.db"
	}
}

// Validate checks that all required fields are set and consistent.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Scan.MinBars <= c.Scan.RSIPeriod {
		return fmt.Errorf("scan.min_bars must exceed scan.rsi_period")
	}
	if c.Scan.RSIMin > c.Scan.RSIMax {
		return fmt.Errorf("scan.rsi_min must not exceed scan.rsi_max")
	}
	if c.Scan.VolumeMultiple <= 0 {
		return fmt.Errorf("scan.volume_multiple must be positive")
	}
	if c.Scan.ProximityRatio <= 0 || c.Scan.ProximityRatio > 1 {
		return fmt.Errorf("scan.proximity_ratio must be in (0, 1]")
	}
	if c.Scan.MaxUniverse <= 0 {
		return fmt.Errorf("scan.max_universe must be positive")
	}
	return nil
}
