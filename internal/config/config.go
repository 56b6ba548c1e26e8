package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Admuad/concero-quiz/internal/domain"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		TTL      string `yaml:"ttl"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Quiz struct {
		Questions        int    `yaml:"questions"`
		QuestionTime     int    `yaml:"questionTime"`
		AutoAdvanceDelay string `yaml:"autoAdvanceDelay"`
		BankTTL          string `yaml:"bankTTL"`
	} `yaml:"quiz"`
	Tournament struct {
		Start string `yaml:"start"` // RFC3339
		End   string `yaml:"end"`   // RFC3339, defaults to start + 7 days
	} `yaml:"tournament"`
	Sink struct {
		BaseURL string `yaml:"baseURL"`
		Retries int    `yaml:"retries"`
		Backoff string `yaml:"backoff"`
	} `yaml:"sink"`
	Auth struct {
		JWTSecret string `yaml:"jwtSecret"`
	} `yaml:"auth"`
}

// Load reads YAML config from path.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// TTLDuration parses a duration string or returns the fallback if empty
// or malformed.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}

// TournamentWindow parses the configured window instants. Empty start yields
// the zero window (tournament always active).
func (c Config) TournamentWindow() (domain.Window, error) {
	var w domain.Window
	if c.Tournament.Start == "" {
		return w, nil
	}
	start, err := time.Parse(time.RFC3339, c.Tournament.Start)
	if err != nil {
		return w, fmt.Errorf("tournament start: %w", err)
	}
	w.Start = start
	if c.Tournament.End != "" {
		end, err := time.Parse(time.RFC3339, c.Tournament.End)
		if err != nil {
			return w, fmt.Errorf("tournament end: %w", err)
		}
		w.End = end
	}
	return w, nil
}
