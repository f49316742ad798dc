package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Search  SearchConfig  `mapstructure:"search"`
	News    NewsConfig    `mapstructure:"news"`
	Session SessionConfig `mapstructure:"session"`
	Log     LogConfig     `mapstructure:"log"`
	UI      UIConfig      `mapstructure:"ui"`
}

type APIConfig struct {
	// BaseURL is the dashboard backend root, e.g. http://localhost:5000.
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type SearchConfig struct {
	DefaultOrder  string `mapstructure:"default_order"`
	DefaultRegion string `mapstructure:"default_region"`
}

type NewsConfig struct {
	PageSize int `mapstructure:"page_size"`
}

type SessionConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type UIConfig struct {
	Colors UIColors `mapstructure:"colors"`
}

type UIColors struct {
	Primary   string `mapstructure:"primary"`
	Secondary string `mapstructure:"secondary"`
	Accent    string `mapstructure:"accent"`
	Text      string `mapstructure:"text"`
	Muted     string `mapstructure:"muted"`
	Error     string `mapstructure:"error"`
	Success   string `mapstructure:"success"`
}

func defaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	stateDir := filepath.Join(homeDir, ".apdetax")

	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:5000",
			// Summarization calls sit on an LLM; give them room.
			Timeout: 90 * time.Second,
		},
		Search: SearchConfig{
			DefaultOrder:  "relevance",
			DefaultRegion: "",
		},
		News: NewsConfig{
			PageSize: 20,
		},
		Session: SessionConfig{
			Path: filepath.Join(stateDir, "session.db"),
		},
		Log: LogConfig{
			Level: "off",
			File:  filepath.Join(stateDir, "apdetax.log"),
		},
		UI: UIConfig{
			Colors: UIColors{
				Primary:   "#FF6B6B",
				Secondary: "#4ECDC4",
				Accent:    "#95E1D3",
				Text:      "#EAEAEA",
				Muted:     "#94A3B8",
				Error:     "#EF4444",
				Success:   "#10B981",
			},
		},
	}
}

func Load(configPath string) (*Config, error) {
	v := viper.New()

	cfg := defaultConfig()
	v.SetDefault("api", cfg.API)
	v.SetDefault("search", cfg.Search)
	v.SetDefault("news", cfg.News)
	v.SetDefault("session", cfg.Session)
	v.SetDefault("log", cfg.Log)
	v.SetDefault("ui", cfg.UI)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		homeDir, _ := os.UserHomeDir()
		configDir := filepath.Join(homeDir, ".config", "apdetax")

		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("APDETAX")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	expandPaths(&config)

	if config.News.PageSize <= 0 {
		config.News.PageSize = cfg.News.PageSize
	}

	return &config, nil
}

// expandPath expands ~ to the home directory and makes the path absolute.
func expandPath(path string) string {
	if path == "" {
		return path
	}

	if len(path) >= 2 && path[:2] == "~/" {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}

	if !filepath.IsAbs(path) {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}

	return path
}

func expandPaths(cfg *Config) {
	cfg.Session.Path = expandPath(cfg.Session.Path)
	cfg.Log.File = expandPath(cfg.Log.File)
}

func Save(config *Config, path string) error {
	v := viper.New()

	// Sections are written as maps keyed the way Unmarshal reads them;
	// durations as strings for TOML readability.
	v.Set("api", map[string]interface{}{
		"base_url": config.API.BaseURL,
		"timeout":  config.API.Timeout.String(),
	})
	v.Set("search", map[string]interface{}{
		"default_order":  config.Search.DefaultOrder,
		"default_region": config.Search.DefaultRegion,
	})
	v.Set("news", map[string]interface{}{
		"page_size": config.News.PageSize,
	})
	v.Set("session", map[string]interface{}{
		"path": config.Session.Path,
	})
	v.Set("log", map[string]interface{}{
		"level": config.Log.Level,
		"file":  config.Log.File,
	})
	v.Set("ui", map[string]interface{}{
		"colors": map[string]interface{}{
			"primary":   config.UI.Colors.Primary,
			"secondary": config.UI.Colors.Secondary,
			"accent":    config.UI.Colors.Accent,
			"text":      config.UI.Colors.Text,
			"muted":     config.UI.Colors.Muted,
			"error":     config.UI.Colors.Error,
			"success":   config.UI.Colors.Success,
		},
	})

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return v.WriteConfigAs(path)
}

func GenerateDefaultConfig(path string) error {
	return Save(defaultConfig(), path)
}
