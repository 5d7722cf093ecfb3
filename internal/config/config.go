package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".config/nova"
	envPrefix  = "NOVA"
)

type Config struct {
	Assistant AssistantConfig `mapstructure:"assistant"`
	Listen    ListenConfig    `mapstructure:"listen"`
	Poller    PollerConfig    `mapstructure:"poller"`
	Features  FeaturesConfig  `mapstructure:"features"`
	Log       LogConfig       `mapstructure:"log"`
	Weather   WeatherConfig   `mapstructure:"weather"`
	Search    SearchConfig    `mapstructure:"search"`
	Secrets   SecretsConfig   `mapstructure:"secrets"`
	Speech    SpeechConfig    `mapstructure:"speech"`
}

type AssistantConfig struct {
	Name      string `mapstructure:"name"`
	Addressee string `mapstructure:"addressee"`
}

type ListenConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

type PollerConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

type FeaturesConfig struct {
	Manifest string `mapstructure:"manifest"`
}

type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

type WeatherConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

type SearchConfig struct {
	BaseURL string `mapstructure:"base_url"`
	CX      string `mapstructure:"cx"`
}

type SecretsConfig struct {
	Dir string `mapstructure:"dir"`
}

type SpeechConfig struct {
	Espeak bool   `mapstructure:"espeak"`
	Voice  string `mapstructure:"voice"`
}

// Load reads ~/.config/nova/config.toml, then NOVA_* environment overrides,
// into cfg. A missing config file is not an error.
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	dir := filepath.Join(homeDir, configDir)

	setDefaults(cfg, dir)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(dir)
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var out Config
	if err := cfg.Unmarshal(&out); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := out.Validate(); err != nil {
		return Config{}, err
	}

	return out, nil
}

func setDefaults(cfg *viper.Viper, dir string) {
	cfg.SetDefault("assistant.name", "NOVA")
	cfg.SetDefault("assistant.addressee", "sir")
	cfg.SetDefault("listen.timeout", "60s")
	cfg.SetDefault("poller.interval", "10s")
	cfg.SetDefault("features.manifest", filepath.Join(dir, "features.toml"))
	cfg.SetDefault("log.file", filepath.Join(dir, "nova_log.txt"))
	cfg.SetDefault("log.level", "info")
	cfg.SetDefault("weather.base_url", "https://api.openweathermap.org")
	cfg.SetDefault("search.base_url", "https://www.googleapis.com")
	cfg.SetDefault("search.cx", "")
	cfg.SetDefault("secrets.dir", filepath.Join(dir, "secrets"))
	cfg.SetDefault("speech.espeak", false)
	cfg.SetDefault("speech.voice", "")
}

func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Assistant.Name) == "" {
		errs = append(errs, errors.New("assistant.name is empty"))
	}
	if c.Listen.Timeout < 0 {
		errs = append(errs, fmt.Errorf("listen.timeout %s is negative", c.Listen.Timeout))
	}
	if c.Poller.Interval <= 0 {
		errs = append(errs, fmt.Errorf("poller.interval %s must be positive", c.Poller.Interval))
	}
	if c.Features.Manifest == "" {
		errs = append(errs, errors.New("features.manifest is empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
