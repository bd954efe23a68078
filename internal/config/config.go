// Package config loads halftone settings from defaults, a TOML file and
// HALFTONE_* environment variables, in that order of precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/jmylchreest/halftone/internal/colour"
	"github.com/jmylchreest/halftone/internal/halftone"
)

// ErrInvalidConfig is returned when a file or variable holds a bad value.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix prefixes every environment variable read by WithEnvConfig.
const EnvPrefix = "HALFTONE_"

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Preview modes.
const (
	PreviewAuto   = "auto"
	PreviewAlways = "always"
	PreviewNever  = "never"
)

// DarkHalf as the dark tone means the light tone at half lightness.
const DarkHalf = "half"

// Config holds user preferences.
type Config struct {
	// Primaries names the RGB primaries: "srgb" or "p3".
	Primaries string `toml:"primaries"`
	// Format is the output format: table, json or yaml.
	Format string `toml:"format"`
	// Preview controls colour swatches: auto, always or never.
	Preview string `toml:"preview"`
	Ramp    Ramp   `toml:"ramp"`
}

// Ramp holds the default generate settings. Light and Dark are colour
// expressions; Dark may also be "half".
type Ramp struct {
	Light    string  `toml:"light"`
	Dark     string  `toml:"dark"`
	K        float64 `toml:"k"`
	Count    int     `toml:"count"`
	Cos      bool    `toml:"cos"`
	Exponent float64 `toml:"exponent"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Primaries: "srgb",
		Format:    FormatTable,
		Preview:   PreviewAuto,
		Ramp: Ramp{
			Light:    "oklch(0.5 0 0)",
			Dark:     "oklch(0.25 0 0)",
			K:        halftone.DefaultK,
			Count:    halftone.DefaultCount,
			Cos:      halftone.DefaultCos,
			Exponent: halftone.DefaultExponent,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/halftone/config.toml, falling back
// to ~/.config/halftone/config.toml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "halftone", "config.toml"), nil
	}
	return homedir.Expand("~/.config/halftone/config.toml")
}

// Validate checks the enumerated fields. Ramp colours depend on the
// primaries in use and are resolved by Ramp.Settings.
func (c Config) Validate() error {
	if _, err := colour.PrimariesByName(c.Primaries); err != nil {
		return fmt.Errorf("primaries: %v: %w", err, ErrInvalidConfig)
	}
	switch c.Format {
	case FormatTable, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("format %q (available: table, json, yaml): %w", c.Format, ErrInvalidConfig)
	}
	switch c.Preview {
	case PreviewAuto, PreviewAlways, PreviewNever:
	default:
		return fmt.Errorf("preview %q (available: auto, always, never): %w", c.Preview, ErrInvalidConfig)
	}
	return nil
}

// Settings resolves the ramp into Oklch halftone settings using conv.
func (r Ramp) Settings(conv *colour.Converter) (halftone.Settings, error) {
	light, err := toOklch(r.Light, conv)
	if err != nil {
		return halftone.Settings{}, fmt.Errorf("ramp light: %v: %w", err, ErrInvalidConfig)
	}
	var dark colour.Vec3
	if strings.EqualFold(r.Dark, DarkHalf) {
		dark = halftone.HalfLight(light)
	} else if dark, err = toOklch(r.Dark, conv); err != nil {
		return halftone.Settings{}, fmt.Errorf("ramp dark: %v: %w", err, ErrInvalidConfig)
	}

	s := halftone.Settings{
		Light:    light,
		Dark:     dark,
		K:        r.K,
		Count:    r.Count,
		Cos:      r.Cos,
		Exponent: r.Exponent,
	}
	if err := s.Validate(); err != nil {
		return halftone.Settings{}, fmt.Errorf("ramp: %v: %w", err, ErrInvalidConfig)
	}
	return s, nil
}

func toOklch(expr string, conv *colour.Converter) (colour.Vec3, error) {
	v, err := colour.Parse(expr)
	if err != nil {
		return colour.Vec3{}, err
	}
	out, err := conv.Convert(v, colour.Oklch)
	if err != nil {
		return colour.Vec3{}, err
	}
	return out.Vec, nil
}

// Marshal encodes c as TOML.
func (c Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes c to path, creating parent directories.
func (c Config) Save(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Builder assembles a Config from layered sources.
type Builder struct {
	config   Config
	path     string
	required bool
	useEnv   bool
	lookup   func(string) (string, bool)
}

// NewBuilder starts from Default.
func NewBuilder() *Builder {
	return &Builder{
		config: Default(),
		lookup: os.LookupEnv,
	}
}

// WithFile merges the TOML file at path over the base. A missing file is
// an error only when required is set.
func (b *Builder) WithFile(path string, required bool) *Builder {
	b.path = path
	b.required = required
	return b
}

// WithEnvConfig applies HALFTONE_* variables over the file.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// WithLookup replaces os.LookupEnv.
func (b *Builder) WithLookup(lookup func(string) (string, bool)) *Builder {
	b.lookup = lookup
	return b
}

// Build loads every source and validates the result.
func (b *Builder) Build() (Config, error) {
	c := b.config

	if b.path != "" {
		path, err := homedir.Expand(b.path)
		if err != nil {
			return Config{}, fmt.Errorf("expand %s: %w", b.path, err)
		}
		if err := decodeFile(path, &c); err != nil {
			if !errors.Is(err, fs.ErrNotExist) || b.required {
				return Config{}, err
			}
		}
	}

	if b.useEnv {
		if err := applyEnv(&c, b.lookup); err != nil {
			return Config{}, err
		}
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func decodeFile(path string, c *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return fmt.Errorf("%s:%d:%d: %v: %w", path, row, col, derr, ErrInvalidConfig)
		}
		return fmt.Errorf("%s: %v: %w", path, err, ErrInvalidConfig)
	}
	return nil
}

// applyEnv overrides fields from HALFTONE_PRIMARIES, HALFTONE_FORMAT,
// HALFTONE_PREVIEW, HALFTONE_LIGHT, HALFTONE_DARK, HALFTONE_K,
// HALFTONE_COUNT, HALFTONE_COS and HALFTONE_EXPONENT.
func applyEnv(c *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok && v != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	str("PRIMARIES", &c.Primaries)
	str("FORMAT", &c.Format)
	str("PREVIEW", &c.Preview)
	str("LIGHT", &c.Ramp.Light)
	str("DARK", &c.Ramp.Dark)

	if v, ok := lookup(EnvPrefix + "K"); ok && v != "" {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("%sK=%q: %w", EnvPrefix, v, ErrInvalidConfig)
		}
		c.Ramp.K = f
	}
	if v, ok := lookup(EnvPrefix + "EXPONENT"); ok && v != "" {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("%sEXPONENT=%q: %w", EnvPrefix, v, ErrInvalidConfig)
		}
		c.Ramp.Exponent = f
	}
	if v, ok := lookup(EnvPrefix + "COUNT"); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%sCOUNT=%q: %w", EnvPrefix, v, ErrInvalidConfig)
		}
		c.Ramp.Count = n
	}
	if v, ok := lookup(EnvPrefix + "COS"); ok && v != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%sCOS=%q: %w", EnvPrefix, v, ErrInvalidConfig)
		}
		c.Ramp.Cos = b
	}
	return nil
}
