package core

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

func MustLoadBaseConfig(path string) CoreConfig {
	if path == "" {
		return LoadBaseConfigFromENV()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	conf := &CoreConfig{}
	if err = toml.Unmarshal(raw, conf); err != nil {
		panic(err)
	}
	conf.applyDefaults()

	return *conf
}

func LoadBaseConfigFromENV() CoreConfig {
	var c CoreConfig
	c.FromENV()
	return c
}

type CoreConfig struct {
	Addr string    `toml:"addr"`
	Log  Log       `toml:"log"`
	NLP  NLPConfig `toml:"nlp"`
}

type NLPConfig struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

func (c NLPConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return time.Second * 30
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// FromENV 环境变量兼容原部署方式：PORT 与 NLP_SERVICE_URL
func (c *CoreConfig) FromENV() {
	if port := os.Getenv("PORT"); port != "" {
		c.Addr = ":" + port
	}
	c.NLP.BaseURL = os.Getenv("NLP_SERVICE_URL")
	c.Log.FromENV()
	c.applyDefaults()
}

func (c *CoreConfig) applyDefaults() {
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.NLP.BaseURL == "" {
		c.NLP.BaseURL = "http://127.0.0.1:8001"
	}
	c.NLP.BaseURL = strings.TrimSuffix(c.NLP.BaseURL, "/")
}

type Log struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

func (l *Log) FromENV() {
	l.Level = os.Getenv("CAMPUS_ASSIST_LOG_LEVEL")
	l.Path = os.Getenv("CAMPUS_ASSIST_LOG_PATH")
}

func (l *Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
