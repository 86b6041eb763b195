package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const envPrefix = "BRCODE"

type Config struct {
	HTTP struct {
		Addr string `mapstructure:"addr" validate:"required"`
	} `mapstructure:"http"`
	GRPC struct {
		Addr string `mapstructure:"addr" validate:"required"`
	} `mapstructure:"grpc"`
	QR struct {
		Size     int    `mapstructure:"size"     validate:"gte=64,lte=2048"`
		Recovery string `mapstructure:"recovery" validate:"oneof=low medium high highest"`
	} `mapstructure:"qr"`
	Log struct {
		Level  string `mapstructure:"level"  validate:"oneof=debug info warn error"`
		Format string `mapstructure:"format" validate:"oneof=human json"`
	} `mapstructure:"log"`
	Shutdown struct {
		Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
	} `mapstructure:"shutdown"`
}

// Load reads defaults, an optional config file and BRCODE_* environment
// variables, in increasing precedence. An empty path looks for config.yaml in
// the working directory and tolerates its absence.
func Load(path string) (*Config, error) {
	return LoadViper(viper.New(), path)
}

// LoadViper is Load over a caller-owned viper instance, so command-line flags
// bound to it take part in the precedence chain.
func LoadViper(v *viper.Viper, path string) (*Config, error) {
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.QR.Recovery = strings.ToLower(cfg.QR.Recovery)
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("grpc.addr", ":50051")
	v.SetDefault("qr.size", 256)
	v.SetDefault("qr.recovery", "medium")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("shutdown.timeout", 5*time.Second)
}
