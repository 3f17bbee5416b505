package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API   *APIConfig   `mapstructure:"api"`
	Gin   *GinConfig   `mapstructure:"gin"`
	Store *StoreConfig `mapstructure:"store"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	BaseURL            string   `mapstructure:"base_url"`
	Port               string   `mapstructure:"port"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type StoreConfig struct {
	// Path is the location of the sqlite file backing the blob store.
	Path string `mapstructure:"path"`
}

// Load reads the YAML config file, applies MACHIKASA_* environment
// overrides and watches the file for changes.
func Load(configFile string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetEnvPrefix("MACHIKASA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("config file changed", zap.String("file", e.Name))
	})
	v.WatchConfig()

	return conf, nil
}
