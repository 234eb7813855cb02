package config

import (
	"fmt"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	SchemaStrategyHeuristic = "heuristic"
	SchemaStrategyExplicit  = "explicit"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Examples   ExamplesConfig   `mapstructure:"examples"`
	News       NewsConfig       `mapstructure:"news"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Port            int        `mapstructure:"port" validate:"min=1,max=65535"`
	StaticDirectory string     `mapstructure:"static_directory" validate:"omitempty,readabledir"`
	CORS            CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type DictionaryConfig struct {
	Path            string        `mapstructure:"path" validate:"required"`
	ArchiveURL      string        `mapstructure:"archive_url" validate:"omitempty,url"`
	AutoDownload    bool          `mapstructure:"auto_download"`
	DownloadTimeout time.Duration `mapstructure:"download_timeout" validate:"gt=0"`
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=0"`
	FoldWidth       bool          `mapstructure:"fold_width"`
	Schema          SchemaConfig  `mapstructure:"schema"`
}

// SchemaConfig selects how the dictionary table and its columns are resolved.
// With the explicit strategy all three names must be given.
type SchemaConfig struct {
	Strategy          string `mapstructure:"strategy" validate:"oneof=heuristic explicit"`
	Table             string `mapstructure:"table" validate:"required_if=Strategy explicit"`
	HeadwordColumn    string `mapstructure:"headword_column" validate:"required_if=Strategy explicit"`
	TranslationColumn string `mapstructure:"translation_column" validate:"required_if=Strategy explicit"`
}

type ExamplesConfig struct {
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

type NewsConfig struct {
	BaseURL string          `mapstructure:"base_url" validate:"required,url"`
	APIKey  string          `mapstructure:"api_key"`
	PerPage int             `mapstructure:"per_page" validate:"min=1"`
	Timeout time.Duration   `mapstructure:"timeout" validate:"gt=0"`
	Cache   NewsCacheConfig `mapstructure:"cache"`
}

// NewsCacheConfig enables a Redis cache of news pages shared by every
// process pointing at the same Redis. A cached page is served until TTL
// expires, so articles published in the meantime are not shown until then.
// The cache is off while RedisAddr is empty.
type NewsCacheConfig struct {
	RedisAddr string        `mapstructure:"redis_addr"`
	TTL       time.Duration `mapstructure:"ttl" validate:"gt=0"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/wordlens")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("server.port", 8000)
	v.SetDefault("server.static_directory", "")
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("dictionary.path", "stardict.db")
	v.SetDefault("dictionary.archive_url", "https://github.com/skywind3000/ECDICT/releases/download/1.0.28/ecdict-sqlite-28.zip")
	v.SetDefault("dictionary.auto_download", true)
	v.SetDefault("dictionary.download_timeout", 10*time.Minute)
	v.SetDefault("dictionary.max_open_conns", 4)
	v.SetDefault("dictionary.fold_width", false)
	v.SetDefault("dictionary.schema.strategy", SchemaStrategyHeuristic)
	v.SetDefault("dictionary.schema.table", "")
	v.SetDefault("dictionary.schema.headword_column", "")
	v.SetDefault("dictionary.schema.translation_column", "")
	v.SetDefault("examples.base_url", "https://api.dictionaryapi.dev/api/v2/entries/en")
	v.SetDefault("examples.timeout", 5*time.Second)
	v.SetDefault("news.base_url", "https://api.apitube.io/v1/news/everything")
	v.SetDefault("news.per_page", 5)
	v.SetDefault("news.timeout", 5*time.Second)
	v.SetDefault("news.cache.ttl", 10*time.Minute)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Secrets and deployment-specific addresses come from the environment only
	if err := v.BindEnv("news.api_key", "NEWS_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind NEWS_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("news.cache.redis_addr", "REDIS_ADDR"); err != nil {
		return nil, fmt.Errorf("failed to bind REDIS_ADDR environment variable: %w", err)
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

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, fmt.Errorf("validator.Struct > %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

// Load reads the configuration from configFile, or from the default search
// paths when configFile is empty.
func Load(configFile string) (*Config, error) {
	loader, err := NewConfigLoader(configFile)
	if err != nil {
		return nil, err
	}
	return loader.Load()
}
