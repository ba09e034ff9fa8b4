package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/pbscope/internal/input"
	"github.com/danmuck/pbscope/internal/render"
)

// Config is the resolved CLI configuration.
type Config struct {
	Encoding      input.Encoding
	Decompress    input.Compression
	Format        render.Format
	Pretty        bool
	VarintLengths bool
	Workers       int
	MaxInputBytes int64
	LogLevel      string
}

type fileConfig struct {
	Encoding      string `toml:"encoding"`
	Decompress    string `toml:"decompress"`
	Format        string `toml:"format"`
	Pretty        bool   `toml:"pretty"`
	VarintLengths bool   `toml:"varint_lengths"`
	Workers       int    `toml:"workers"`
	MaxInputBytes int64  `toml:"max_input_bytes"`
	Log           struct {
		Level string `toml:"level"`
	} `toml:"log"`
}

func Default() Config {
	in := input.DefaultOptions()
	return Config{
		Encoding:      in.Encoding,
		Decompress:    in.Compression,
		Format:        render.FormatJSON,
		Pretty:        true,
		Workers:       4,
		MaxInputBytes: in.MaxBytes,
		LogLevel:      "info",
	}
}

// Load overlays the keys defined in the TOML file at path onto Default.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}

	if meta.IsDefined("encoding") {
		enc, err := input.ParseEncoding(raw.Encoding)
		if err != nil {
			return Config{}, err
		}
		cfg.Encoding = enc
	}
	if meta.IsDefined("decompress") {
		c, err := input.ParseCompression(raw.Decompress)
		if err != nil {
			return Config{}, err
		}
		cfg.Decompress = c
	}
	if meta.IsDefined("format") {
		f, err := render.ParseFormat(raw.Format)
		if err != nil {
			return Config{}, err
		}
		cfg.Format = f
	}
	if meta.IsDefined("pretty") {
		cfg.Pretty = raw.Pretty
	}
	if meta.IsDefined("varint_lengths") {
		cfg.VarintLengths = raw.VarintLengths
	}
	if meta.IsDefined("workers") {
		cfg.Workers = raw.Workers
	}
	if meta.IsDefined("max_input_bytes") {
		cfg.MaxInputBytes = raw.MaxInputBytes
	}
	if meta.IsDefined("log", "level") {
		cfg.LogLevel = strings.TrimSpace(raw.Log.Level)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// InputOptions returns the input settings of cfg.
func (c Config) InputOptions() input.Options {
	return input.Options{
		Encoding:    c.Encoding,
		Compression: c.Decompress,
		MaxBytes:    c.MaxInputBytes,
	}
}

func Validate(cfg Config) error {
	if err := cfg.InputOptions().Validate(); err != nil {
		return err
	}
	if _, err := render.ParseFormat(string(cfg.Format)); err != nil {
		return err
	}
	if cfg.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", cfg.Workers)
	}
	return nil
}
