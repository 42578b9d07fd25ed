// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/ps-vitor/ss-monitor/internal/domain"
)

type Config struct {
	App       AppConfig         `yaml:"app"`
	Monitor   MonitorConfig     `yaml:"monitor"`
	Locations []domain.Location `yaml:"locations"`
	Telegram  TelegramConfig    `yaml:"-"`
}

type AppConfig struct {
	Name  string `yaml:"name"`
	Debug bool   `yaml:"debug"`
	Port  int    `yaml:"port"`
}

type MonitorConfig struct {
	MaxPrice          int    `yaml:"max_price"`
	PlausibilityFloor int    `yaml:"plausibility_floor"`
	UserAgent         string `yaml:"user_agent"`
	AcceptLanguage    string `yaml:"accept_language"`
	FetchTimeoutSecs  int    `yaml:"fetch_timeout_seconds"`
	StateFile         string `yaml:"state_file"`
}

// TelegramConfig holds credentials; they come from the environment, never
// from the YAML file.
type TelegramConfig struct {
	BotToken string
	ChatID   string
}

func (m MonitorConfig) FetchTimeout() time.Duration {
	return time.Duration(m.FetchTimeoutSecs) * time.Second
}

// Load reads the YAML config file and overlays Telegram credentials from the
// BOT_TOKEN and CHAT_ID environment variables.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(yamlFile, cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	cfg.Telegram.BotToken = os.Getenv("BOT_TOKEN")
	cfg.Telegram.ChatID = os.Getenv("CHAT_ID")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.App.Port == 0 {
		c.App.Port = 8080
	}
	if c.Monitor.PlausibilityFloor == 0 {
		c.Monitor.PlausibilityFloor = 10000
	}
	if c.Monitor.UserAgent == "" {
		c.Monitor.UserAgent = "Mozilla/5.0"
	}
	if c.Monitor.AcceptLanguage == "" {
		c.Monitor.AcceptLanguage = "lv-LV,lv;q=0.9,en-US;q=0.8,en;q=0.7"
	}
	if c.Monitor.FetchTimeoutSecs == 0 {
		c.Monitor.FetchTimeoutSecs = 30
	}
	if c.Monitor.StateFile == "" {
		c.Monitor.StateFile = "seen.json"
	}
}

func (c *Config) validate() error {
	if c.Monitor.MaxPrice <= 0 {
		return fmt.Errorf("config: monitor.max_price must be positive")
	}
	if len(c.Locations) == 0 {
		return fmt.Errorf("config: at least one location is required")
	}
	for _, loc := range c.Locations {
		if loc.URL == "" {
			return fmt.Errorf("config: location %q has no url", loc.Name)
		}
		switch loc.Format {
		case domain.FormatRSS, domain.FormatHTML, domain.FormatHTMLMobile:
		default:
			return fmt.Errorf("config: location %q has unknown format %q", loc.Name, loc.Format)
		}
	}
	return nil
}
