// Package config loads the settings of newsmunger: built in defaults, then
// an optional YAML file, then NEWSMUNGER_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	SinkFile   = "file"
	SinkSqlite = "sqlite"
	SinkS3     = "s3"
)

type Redis struct {
	Addr     string        `yaml:"addr" envconfig:"NEWSMUNGER_REDIS_ADDR"`
	Password string        `yaml:"password" envconfig:"NEWSMUNGER_REDIS_PASSWORD"`
	DB       int           `yaml:"db" envconfig:"NEWSMUNGER_REDIS_DB"`
	TTL      time.Duration `yaml:"ttl" envconfig:"NEWSMUNGER_REDIS_TTL"`
}

type Sink struct {
	Kind string `yaml:"kind" envconfig:"NEWSMUNGER_SINK_KIND"`

	// file
	Dir string `yaml:"dir" envconfig:"NEWSMUNGER_SINK_DIR"`

	// sqlite
	Path string `yaml:"path" envconfig:"NEWSMUNGER_SINK_PATH"`

	// s3
	Bucket string `yaml:"bucket" envconfig:"NEWSMUNGER_SINK_BUCKET"`
	Region string `yaml:"region" envconfig:"NEWSMUNGER_SINK_REGION"`
	Prefix string `yaml:"prefix" envconfig:"NEWSMUNGER_SINK_PREFIX"`
}

type Config struct {
	DocPath       string        `yaml:"doc_path" envconfig:"NEWSMUNGER_DOC_PATH"`
	ParserURL     string        `yaml:"parser_url" envconfig:"NEWSMUNGER_PARSER_URL"`
	ParserTimeout time.Duration `yaml:"parser_timeout" envconfig:"NEWSMUNGER_PARSER_TIMEOUT"`
	VerbClassPath string        `yaml:"verb_class_path" envconfig:"NEWSMUNGER_VERB_CLASS_PATH"`

	MaxRetries      int `yaml:"max_retries" envconfig:"NEWSMUNGER_MAX_RETRIES"`
	MaxQuoteRepairs int `yaml:"max_quote_repairs" envconfig:"NEWSMUNGER_MAX_QUOTE_REPAIRS"`
	MaxDepth        int `yaml:"max_depth" envconfig:"NEWSMUNGER_MAX_DEPTH"`

	Redis Redis `yaml:"redis"`
	Sink  Sink  `yaml:"sink"`
}

// Default returns the built in settings.
func Default() Config {
	return Config{
		ParserURL:       "http://localhost:8080/parse",
		ParserTimeout:   10 * time.Second,
		MaxRetries:      5,
		MaxQuoteRepairs: 2,
		MaxDepth:        2,
		Redis: Redis{
			TTL: 24 * time.Hour,
		},
		Sink: Sink{
			Kind: SinkFile,
			Dir:  ".",
		},
	}
}

// Load reads the YAML file at path over the defaults, then the environment.
// An empty path or a missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("IO error: %w", err)
		default:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("YAML decoding error: %w", err)
			}
		}
	}

	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, fmt.Errorf("environment error: %w", err)
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Sink.Kind {
	case SinkFile, SinkSqlite, SinkS3:
	default:
		return fmt.Errorf("unknown sink kind %q", c.Sink.Kind)
	}

	if c.MaxRetries < 1 {
		return errors.New("max_retries must be at least 1")
	}

	if c.MaxQuoteRepairs < 0 || c.MaxDepth < 0 {
		return errors.New("max_quote_repairs and max_depth can not be negative")
	}

	return nil
}
