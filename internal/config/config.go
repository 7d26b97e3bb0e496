package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/rbmartins/secretaria/internal/store/jsonstore"
)

// Config is the process configuration: where data lives and how to
// reach the remote secretary.
type Config struct {
	DataDir          string
	PerplexityAPIKey string
	PerplexityModel  string
}

// Load reads ~/.secretaria/config.yaml when present, then applies
// SECRETARIA_* environment overrides. PERPLEXITY_API_KEY is also
// honoured directly since that is what the API vendor documents.
func Load() (Config, error) {
	dir, err := jsonstore.DefaultDir()
	if err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetDefault("data_dir", dir)
	v.SetDefault("perplexity.model", "llama-3.1-sonar-small-128k-online")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("SECRETARIA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("perplexity.api_key", "PERPLEXITY_API_KEY", "SECRETARIA_PERPLEXITY_API_KEY"); err != nil {
		return Config{}, fmt.Errorf("bind env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	return Config{
		DataDir:          v.GetString("data_dir"),
		PerplexityAPIKey: v.GetString("perplexity.api_key"),
		PerplexityModel:  v.GetString("perplexity.model"),
	}, nil
}
