package logger

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/philipp01105/lazylog/formatter"
	"github.com/philipp01105/lazylog/handler/consolehandler"
	"github.com/philipp01105/lazylog/template"
)

var (
	// ErrUnknownFormat is returned for an output format other than
	// "text" or "json".
	ErrUnknownFormat = errors.New("logger: unknown format")
	// ErrUnknownLevel is returned for a level name ParseLevel does not know.
	ErrUnknownLevel = errors.New("logger: unknown level")
	// ErrUnknownColor is returned for a color mode other than "auto",
	// "always" or "never".
	ErrUnknownColor = errors.New("logger: unknown color mode")
)

// Config describes a console logger. The zero value is an info-level
// text logger.
//
//	level: debug
//	format: json
//	caller: true
//	locale: de-DE
//	fields:
//	  service: api
type Config struct {
	Level           string            `yaml:"level"`
	Format          string            `yaml:"format"`
	Color           string            `yaml:"color"`
	Caller          bool              `yaml:"caller"`
	Template        bool              `yaml:"template"`
	TimestampFormat string            `yaml:"timestamp_format"`
	CoarseClock     bool              `yaml:"coarse_clock"`
	Locale          string            `yaml:"locale"`
	Fields          map[string]string `yaml:"fields"`
}

// ParseConfig decodes a YAML document into a Config and validates it.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("logger: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Level != "" {
		if _, ok := lookupLevel(c.Level); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownLevel, c.Level)
		}
	}
	if _, err := c.newFormatter(); err != nil {
		return err
	}
	if _, err := c.colorMode(); err != nil {
		return err
	}
	if _, err := c.provider(); err != nil {
		return err
	}
	return nil
}

// Build creates a Logger writing to w (os.Stdout when nil) through a
// console handler.
func (c Config) Build(w io.Writer) (*Logger, error) {
	f, err := c.newFormatter()
	if err != nil {
		return nil, err
	}
	color, err := c.colorMode()
	if err != nil {
		return nil, err
	}
	p, err := c.provider()
	if err != nil {
		return nil, err
	}
	level := InfoLevel
	if c.Level != "" {
		var ok bool
		if level, ok = lookupLevel(c.Level); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLevel, c.Level)
		}
	}

	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    w,
		Formatter: f,
		Color:     color,
	})

	b := NewBuilder().
		WithHandler(h).
		WithLevel(level).
		WithCaller(c.Caller).
		WithCoarseClock(c.CoarseClock).
		WithProvider(p)
	for _, key := range slices.Sorted(maps.Keys(c.Fields)) {
		b.WithFields(String(key, c.Fields[key]))
	}
	return b.Build(), nil
}

func (c Config) newFormatter() (formatter.Formatter, error) {
	f, ok := formatter.ByName(c.Format, formatter.Config{
		IncludeCaller:   c.Caller,
		TimestampFormat: c.TimestampFormat,
		IncludeTemplate: c.Template,
	})
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}
	return f, nil
}

func (c Config) colorMode() (consolehandler.ColorMode, error) {
	switch strings.ToLower(c.Color) {
	case "", "auto":
		return consolehandler.ColorAuto, nil
	case "always":
		return consolehandler.ColorAlways, nil
	case "never":
		return consolehandler.ColorNever, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownColor, c.Color)
	}
}

func (c Config) provider() (template.Provider, error) {
	if c.Locale == "" {
		return template.Invariant, nil
	}
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return nil, fmt.Errorf("logger: locale %q: %w", c.Locale, err)
	}
	return template.Locale(tag), nil
}
