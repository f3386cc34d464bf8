// Package config loads and validates application configuration from a YAML
// file, defaults, and environment variables.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	locale "github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/spf13/viper"
)

type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Data         DataConfig         `mapstructure:"data"`
	Dictionaries DictionariesConfig `mapstructure:"dictionaries"`
	Translator   TranslatorConfig   `mapstructure:"translator"`
	Bible        BibleConfig        `mapstructure:"bible"`
}

type ServerConfig struct {
	Port int        `mapstructure:"port" validate:"gte=0,lte=65535"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type DataConfig struct {
	Directory            string `mapstructure:"directory"`
	CustomDictionaryFile string `mapstructure:"custom_dictionary_file"`
}

type DictionariesConfig struct {
	Reference ReferenceConfig `mapstructure:"reference"`
}

type ReferenceConfig struct {
	Path string `mapstructure:"path"`
	URL  string `mapstructure:"url" validate:"omitempty,url"`
}

type TranslatorConfig struct {
	Endpoint       string `mapstructure:"endpoint" validate:"omitempty,url"`
	Key            string `mapstructure:"key"`
	Region         string `mapstructure:"region"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=0"`
}

// Timeout returns the translation request deadline.
func (c TranslatorConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type BibleConfig struct {
	Directory string `mapstructure:"directory"`
	BooksFile string `mapstructure:"books_file"`
}

// CustomDictionaryPath returns the full path of the custom dictionary file.
func (c *Config) CustomDictionaryPath() string {
	return filepath.Join(c.Data.Directory, c.Data.CustomDictionaryFile)
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
		v.AddConfigPath("$HOME/.config/tohitapu")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("data.directory", "data")
	v.SetDefault("data.custom_dictionary_file", "my_tongan_dictionary.csv")
	v.SetDefault("dictionaries.reference.path", filepath.Join("public", "tongan_dictionary.csv"))
	v.SetDefault("translator.timeout_seconds", 10)
	v.SetDefault("bible.directory", "public")
	v.SetDefault("bible.books_file", filepath.Join("public", "books.yml"))

	// Azure credentials come from the environment only, never the config file.
	if err := v.BindEnv("translator.endpoint", "AZURE_TRANSLATOR_ENDPOINT"); err != nil {
		return nil, fmt.Errorf("failed to bind AZURE_TRANSLATOR_ENDPOINT environment variable: %w", err)
	}
	if err := v.BindEnv("translator.key", "AZURE_TRANSLATOR_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind AZURE_TRANSLATOR_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("translator.region", "AZURE_TRANSLATOR_LOCATION"); err != nil {
		return nil, fmt.Errorf("failed to bind AZURE_TRANSLATOR_LOCATION environment variable: %w", err)
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
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	english := locale.New()
	uni := ut.New(english, english)
	trans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, nil, fmt.Errorf("english translator not found")
	}

	if err := entranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("entranslations.RegisterDefaultTranslations > %w", err)
	}
	return validate, trans, nil
}
