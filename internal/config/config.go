package config

import (
	"os"
	"time"

	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultPort    = 443
	DefaultTimeout = 30 // seconds

	configName = "tyrone-redfish"
	configType = "toml"
	envConfig  = "TYRONE_REDFISH_CONFIG"
)

// Config holds the connection settings shared by every subcommand.
// A value is immutable after Load returns.
type Config struct {
	Host      string
	Username  string
	Password  string
	Port      int
	VerifySSL bool
	Timeout   int
	Verbose   bool
	Debug     bool
}

// Load merges the optional config file with the given command-line flags.
// Flags that were set explicitly win over file values.
func Load(flags *pflag.FlagSet) (*Config, error) {
	errFactory := errors.New()

	v := viper.New()
	v.SetDefault("port", DefaultPort)
	v.SetDefault("timeout", DefaultTimeout)

	if path := os.Getenv(envConfig); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath("/etc")
		v.AddConfigPath("$HOME/.config")
	}

	if err := v.ReadInConfig(); err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !notFound && !os.IsNotExist(err) {
			return nil, errFactory.Wrap(errors.ErrReadConfig, err)
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, errFactory.Wrap(errors.ErrBindFlags, err)
		}
	}

	cfg := &Config{
		Host:      v.GetString("host"),
		Username:  v.GetString("username"),
		Password:  v.GetString("password"),
		Port:      v.GetInt("port"),
		VerifySSL: v.GetBool("verify-ssl"),
		Timeout:   v.GetInt("timeout"),
		Verbose:   v.GetBool("verbose"),
		Debug:     v.GetBool("debug"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the connection settings are complete.
func (c *Config) Validate() error {
	errFactory := errors.New()

	if c.Host == "" {
		return errFactory.WithMessage(errors.ErrMissingConfig, "host is required")
	}
	if c.Username == "" {
		return errFactory.WithMessage(errors.ErrMissingConfig, "username is required")
	}
	if c.Password == "" {
		return errFactory.WithMessage(errors.ErrMissingConfig, "password is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return errFactory.WithData(errors.ErrInvalidConfig, struct {
			Field string
			Value int
		}{
			Field: "port",
			Value: c.Port,
		})
	}
	if c.Timeout <= 0 {
		return errFactory.WithData(errors.ErrInvalidConfig, struct {
			Field string
			Value int
		}{
			Field: "timeout",
			Value: c.Timeout,
		})
	}

	return nil
}

// RequestTimeout returns the per-request timeout as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}
