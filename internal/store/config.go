package store

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"smartsignals/internal/types"
)

type Config struct {
	Name   string `yaml:"name"`
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		CORS bool   `yaml:"cors"`
	} `yaml:"server"`
	DataSource   string             `yaml:"data_source"`
	PollSeconds  int                `yaml:"poll_seconds"`
	LookbackDays int                `yaml:"lookback_days"`
	Interval     string             `yaml:"interval"`
	Underlyings  []types.Underlying `yaml:"underlyings"`
	News         struct {
		MaxHeadlines   int          `yaml:"max_headlines"`
		TimeoutSeconds int          `yaml:"timeout_seconds"`
		Sources        []NewsSource `yaml:"sources"`
	} `yaml:"news"`
}

// NewsSource describes one headline page to scrape.
type NewsSource struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	Selector string `yaml:"selector"`
}

func (c *Config) Validate() error {
	switch c.DataSource {
	case "STATIC", "YAHOO", "KITE":
	default:
		return fmt.Errorf("invalid data_source '%s': must be 'STATIC', 'YAHOO' or 'KITE'", c.DataSource)
	}
	if len(c.Underlyings) == 0 {
		return errors.New("underlyings cannot be empty")
	}
	for _, u := range c.Underlyings {
		if u.Symbol == "" {
			return errors.New("underlying symbol cannot be empty")
		}
		if u.Step <= 0 {
			return fmt.Errorf("underlying %s: step must be positive, got %d", u.Symbol, u.Step)
		}
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1-65535, got %d", c.Server.Port)
	}
	if c.PollSeconds < 0 {
		return fmt.Errorf("poll_seconds cannot be negative, got %d", c.PollSeconds)
	}
	return nil
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	applyDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}

func applyDefaults(c *Config) {
	if c.Name == "" {
		c.Name = "GF SmartSignals"
	}
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}
	if c.DataSource == "" {
		c.DataSource = "STATIC"
	}
	if c.LookbackDays == 0 {
		c.LookbackDays = 10
	}
	if c.Interval == "" {
		c.Interval = "15m"
	}
	if c.News.MaxHeadlines == 0 {
		c.News.MaxHeadlines = 10
	}
	if c.News.TimeoutSeconds == 0 {
		c.News.TimeoutSeconds = 15
	}
	if len(c.News.Sources) == 0 {
		c.News.Sources = DefaultNewsSources()
	}
}

// DefaultNewsSources returns the market-news pages scraped when the config
// does not name its own.
func DefaultNewsSources() []NewsSource {
	return []NewsSource{
		{
			Name:     "MoneyControl",
			URL:      "https://www.moneycontrol.com/news/business/markets/",
			Selector: "li.clearfix h2",
		},
		{
			Name:     "EconomicTimes",
			URL:      "https://economictimes.indiatimes.com/markets/stocks/news",
			Selector: "div.eachStory h3",
		},
	}
}
