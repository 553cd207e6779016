package config

import (
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/openexp/hubconfig/internal/device"
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

const DefaultTipLocale = "en"

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

type TipsConfig struct {
	Locale string `mapstructure:"locale"`
}

type ExperimentConfig struct {
	Logging LoggingConfig             `mapstructure:"logging"`
	Tips    TipsConfig                `mapstructure:"tips"`
	Devices map[string]map[string]any `mapstructure:"devices"`
}

type Config struct {
	Experiment ExperimentConfig `mapstructure:"experiment"`
}

func Load() (*Config, error) {
	viper.SetDefault("experiment.logging.level", LogLevelInfo)
	viper.SetDefault("experiment.tips.locale", DefaultTipLocale)

	viper.SetConfigName("experiment")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Error("failed to read experiment file", slog.String("error", err.Error()))
			return nil, err
		}
		slog.Info("experiment file not found, using defaults and environment variables")
	} else {
		slog.Info("loaded experiment file", slog.String("file", viper.ConfigFileUsed()))
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		slog.Error("failed to unmarshal experiment config", slog.String("error", err.Error()))
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid experiment configuration", slog.String("error", err.Error()))
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the hub-level settings and every device block. Device
// blocks are validated wholesale through the device loader so that a
// malformed document is rejected before any device is initialized.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Experiment,
			validation.Required,
			validation.By(func(value interface{}) error {
				ec, ok := value.(ExperimentConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be an ExperimentConfig")
				}
				return validation.ValidateStruct(&ec,
					validation.Field(&ec.Logging,
						validation.Required,
						validation.By(func(value interface{}) error {
							lc, ok := value.(LoggingConfig)
							if !ok {
								return validation.NewError("validation_invalid_type", "must be a LoggingConfig")
							}
							return validation.ValidateStruct(&lc,
								validation.Field(&lc.Level,
									validation.Required,
									validation.In(LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError),
								),
							)
						}),
					),
					validation.Field(&ec.Tips,
						validation.Required,
						validation.By(func(value interface{}) error {
							tc, ok := value.(TipsConfig)
							if !ok {
								return validation.NewError("validation_invalid_type", "must be a TipsConfig")
							}
							return validation.ValidateStruct(&tc,
								validation.Field(&tc.Locale,
									validation.Required,
									validation.By(validateLocale),
								),
							)
						}),
					),
				)
			}),
		),
	)
	if err != nil {
		return err
	}

	_, err = c.DeviceSettings()
	return err
}

// DeviceSettings resolves every device block into a validated, fully
// populated settings record. A block without an explicit name takes its
// map key as the device name.
func (c *Config) DeviceSettings() (map[string]*device.Settings, error) {
	settings := make(map[string]*device.Settings, len(c.Experiment.Devices))
	errs := validation.Errors{}

	for key, block := range c.Experiment.Devices {
		doc := make(map[string]any, len(block)+1)
		for k, v := range block {
			doc[k] = v
		}
		if _, named := doc["name"]; !named {
			doc["name"] = key
		}

		loaded, err := device.Load(doc)
		if err != nil {
			errs[key] = err
			continue
		}
		settings[key] = loaded
	}

	if err := errs.Filter(); err != nil {
		return nil, err
	}
	return settings, nil
}

func validateLocale(value interface{}) error {
	locale, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}

	if _, err := language.Parse(locale); err != nil {
		return validation.NewError("validation_invalid_locale", "must be a valid BCP 47 language tag")
	}

	return nil
}
