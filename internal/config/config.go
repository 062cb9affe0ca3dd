// Package config loads the service configuration from an optional YAML file
// and environment variables, with defaults that keep the lookup pipeline
// functional when nothing is configured.
package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Dictionary    DictionaryConfig    `mapstructure:"dictionary"`
	Pronunciation PronunciationConfig `mapstructure:"pronunciation"`
	Morphology    RemoteServiceConfig `mapstructure:"morphology"`
	Corpus        CorpusConfig        `mapstructure:"corpus"`
}

type ServerConfig struct {
	Address string `mapstructure:"address" validate:"required"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port" validate:"gt=0"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	Database        string            `mapstructure:"database"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime"`
}

type DictionaryConfig struct {
	Path      string `mapstructure:"path"`
	FreeLimit int    `mapstructure:"free_limit" validate:"gte=0"`
}

type PronunciationConfig struct {
	LexiconPath string `mapstructure:"lexicon_path"`
}

// RemoteServiceConfig configures one outbound linguistic service.
type RemoteServiceConfig struct {
	Endpoint        string `mapstructure:"endpoint" validate:"url"`
	TimeoutSeconds  int    `mapstructure:"timeout_seconds" validate:"gt=0"`
	CacheTTLMinutes int    `mapstructure:"cache_ttl_minutes" validate:"gt=0"`
}

func (c RemoteServiceConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c RemoteServiceConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMinutes) * time.Minute
}

type CorpusConfig struct {
	RemoteServiceConfig `mapstructure:",squash"`
	Corpora             string `mapstructure:"corpora" validate:"required"`
	MaxExamples         int    `mapstructure:"max_examples" validate:"gt=0"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/enorett")
	}

	v.SetDefault("server.address", ":8080")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "enorett")
	v.SetDefault("dictionary.path", filepath.Join("data", "dictionary.yaml"))
	v.SetDefault("dictionary.free_limit", 100)
	v.SetDefault("pronunciation.lexicon_path", filepath.Join("data", "lexicon.tsv"))
	v.SetDefault("morphology.endpoint", "https://ws.spraakbanken.gu.se/ws/sparv/v2/")
	v.SetDefault("morphology.timeout_seconds", 7)
	v.SetDefault("morphology.cache_ttl_minutes", 12*60)
	v.SetDefault("corpus.endpoint", "https://ws.spraakbanken.gu.se/ws/korp/v8/query")
	v.SetDefault("corpus.corpora", "rom99")
	v.SetDefault("corpus.timeout_seconds", 7)
	v.SetDefault("corpus.cache_ttl_minutes", 6*60)
	v.SetDefault("corpus.max_examples", 5)

	envBindings := map[string]string{
		"morphology.endpoint":   "SPARV_ENDPOINT",
		"corpus.endpoint":       "KORP_ENDPOINT",
		"dictionary.free_limit": "FREE_DICTIONARY_LIMIT",
		"database.host":         "DB_HOST",
		"database.username":     "DB_USERNAME",
		"database.password":     "DB_PASSWORD",
	}
	for key, envName := range envBindings {
		if err := v.BindEnv(key, envName); err != nil {
			return nil, fmt.Errorf("failed to bind %s environment variable: %w", envName, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
