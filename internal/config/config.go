package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	configFileName = "tmodal"
	appDir         = "tmodal"

	// MaxSlots is bounded by the 1-9 digit shortcuts of the panel.
	MaxSlots = 9

	defaultSlots          = 4
	defaultMessageTimeout = 3 * time.Second
	defaultHistoryLimit   = 100
)

// Flag names registered by BindFlags.
const (
	FlagSlots          = "slots"
	FlagMessageTimeout = "message-timeout"
	FlagHistory        = "history"
	FlagHistoryLimit   = "history-limit"
	FlagLog            = "log"
	FlagDebug          = "debug"
)

// Config holds the configuration options for the application.
type Config struct {
	Slots          int            `yaml:"slots,omitempty"`
	MessageTimeout time.Duration  `yaml:"messageTimeout,omitempty"`
	LogFile        string         `yaml:"log,omitempty"`
	Debug          bool           `yaml:"debug,omitempty"`
	History        *HistoryConfig `yaml:"history,omitempty"`
}

// HistoryConfig holds the dialog history options.
type HistoryConfig struct {
	Path  string `yaml:"path,omitempty"`
	Limit int    `yaml:"limit,omitempty"`
}

// Path returns the location of the configuration file.
func Path() string {
	return filepath.Join(xdg.ConfigHome, configFileName)
}

// GetConfig reads the configuration file and returns a Config struct.
// If the configuration file does not exist, it uses default configuration
// but still applies the flags that were set on fs. fs may be nil.
func GetConfig(fs *pflag.FlagSet) (*Config, error) {
	defaults := DefaultConfig()

	var cfg Config

	b, err := os.ReadFile(Path())
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	if len(b) > 0 {
		err = yaml.Unmarshal(b, &cfg)
		if err != nil {
			return nil, err
		}
	}

	historyCfg := zeroOr(cfg.History, defaults.History)

	conf := Config{
		Slots:          zeroOr(cfg.Slots, defaults.Slots),
		MessageTimeout: zeroOr(cfg.MessageTimeout, defaults.MessageTimeout),
		LogFile:        zeroOr(cfg.LogFile, defaults.LogFile),
		Debug:          cfg.Debug,
		History: &HistoryConfig{
			Path:  zeroOr(historyCfg.Path, defaults.History.Path),
			Limit: zeroOr(historyCfg.Limit, defaults.History.Limit),
		},
	}

	if err := conf.applyFlags(fs); err != nil {
		return nil, err
	}

	if err := conf.validate(); err != nil {
		return nil, err
	}

	return &conf, nil
}

func DefaultConfig() Config {
	return Config{
		Slots:          defaultSlots,
		MessageTimeout: defaultMessageTimeout,
		LogFile:        filepath.Join(xdg.StateHome, appDir, "tmodal.log"),
		History: &HistoryConfig{
			Path:  filepath.Join(xdg.DataHome, appDir, "history.db"),
			Limit: defaultHistoryLimit,
		},
	}
}

// zeroOr returns def if v is the zero value for its type.
func zeroOr[T any](v, def T) T {
	if reflect.ValueOf(v).IsZero() {
		return def
	}

	return v
}

// BindFlags registers the configuration flags on fs.
func BindFlags(fs *pflag.FlagSet) {
	d := DefaultConfig()

	fs.IntP(FlagSlots, "n", d.Slots, "number of button slots in the modal panel")
	fs.Duration(FlagMessageTimeout, d.MessageTimeout, "how long notifications stay on screen")
	fs.String(FlagHistory, d.History.Path, "path to the dialog history database")
	fs.Int(FlagHistoryLimit, d.History.Limit, "number of history entries shown")
	fs.String(FlagLog, d.LogFile, "path to the log file")
	fs.BoolP(FlagDebug, "d", false, "enable debug logging")
}

// applyFlags overrides the config with every flag explicitly set on fs.
func (c *Config) applyFlags(fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}

	var err error

	if fs.Changed(FlagSlots) {
		if c.Slots, err = fs.GetInt(FlagSlots); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	if fs.Changed(FlagMessageTimeout) {
		if c.MessageTimeout, err = fs.GetDuration(FlagMessageTimeout); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	if fs.Changed(FlagHistory) {
		if c.History.Path, err = fs.GetString(FlagHistory); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	if fs.Changed(FlagHistoryLimit) {
		if c.History.Limit, err = fs.GetInt(FlagHistoryLimit); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	if fs.Changed(FlagLog) {
		if c.LogFile, err = fs.GetString(FlagLog); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	if fs.Changed(FlagDebug) {
		if c.Debug, err = fs.GetBool(FlagDebug); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	return nil
}

func (c *Config) validate() error {
	switch {
	case c.Slots <= 0 || c.Slots > MaxSlots:
		return fmt.Errorf("%w: slots must be 1..%d, got %d", ErrInvalidConfig, MaxSlots, c.Slots)
	case c.MessageTimeout <= 0:
		return fmt.Errorf("%w: messageTimeout must be positive, got %v", ErrInvalidConfig, c.MessageTimeout)
	case c.LogFile == "":
		return fmt.Errorf("%w: log path is empty", ErrInvalidConfig)
	}

	return c.History.validate()
}

func (h *HistoryConfig) validate() error {
	if h.Path == "" {
		return fmt.Errorf("%w: history path is empty", ErrInvalidConfig)
	}

	if h.Limit < 0 {
		return fmt.Errorf("%w: history limit must not be negative, got %d", ErrInvalidConfig, h.Limit)
	}

	return nil
}
