package config

import "time"

// TestConfig returns a config suitable for testing
func TestConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:5000",
			Timeout: 5 * time.Second,
		},
		Search: SearchConfig{
			DefaultOrder: "relevance",
		},
		News: NewsConfig{
			PageSize: 20,
		},
		Log: LogConfig{
			Level: "off",
		},
		UI: defaultConfig().UI,
	}
}
