package main

import (
	"fmt"
	"io"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/danmuck/pbscope/internal/config"
	"github.com/danmuck/pbscope/internal/input"
	"github.com/danmuck/pbscope/internal/logging"
	"github.com/danmuck/pbscope/internal/observability"
	"github.com/danmuck/pbscope/internal/protocol"
	"github.com/danmuck/pbscope/internal/render"
)

type decodeCommand struct {
	configPath    string
	encoding      string
	decompress    string
	format        string
	pretty        bool
	varintLengths bool
	workers       int
	metricsFile   string
	files         []string

	set struct {
		encoding, decompress, format, pretty, varintLengths, workers bool
	}
}

func (d *decodeCommand) register(cmd *kingpin.CmdClause) {
	cmd.Flag("config", "TOML configuration file.").Short('c').StringVar(&d.configPath)
	cmd.Flag("encoding", "Input text encoding: raw, hex, base64, auto.").Short('e').
		IsSetByUser(&d.set.encoding).StringVar(&d.encoding)
	cmd.Flag("decompress", "Input compression: auto, none, gzip, zstd, snappy.").Short('z').
		IsSetByUser(&d.set.decompress).StringVar(&d.decompress)
	cmd.Flag("format", "Output format: json, tree.").Short('f').
		IsSetByUser(&d.set.format).StringVar(&d.format)
	cmd.Flag("pretty", "Indent JSON output.").
		IsSetByUser(&d.set.pretty).BoolVar(&d.pretty)
	cmd.Flag("varint-lengths", "Read length prefixes as full varints.").
		IsSetByUser(&d.set.varintLengths).BoolVar(&d.varintLengths)
	cmd.Flag("workers", "Inputs decoded in parallel.").Short('w').
		IsSetByUser(&d.set.workers).IntVar(&d.workers)
	cmd.Flag("metrics-file", "Write decode metrics in Prometheus text format to this path.").
		StringVar(&d.metricsFile)
	cmd.Arg("file", "Input files; '-' or none reads stdin.").StringsVar(&d.files)
}

// resolve merges defaults, the config file and explicitly set flags.
func (d *decodeCommand) resolve() (config.Config, error) {
	cfg := config.Default()
	if d.configPath != "" {
		loaded, err := config.Load(d.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if d.set.encoding {
		enc, err := input.ParseEncoding(d.encoding)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Encoding = enc
	}
	if d.set.decompress {
		c, err := input.ParseCompression(d.decompress)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Decompress = c
	}
	if d.set.format {
		f, err := render.ParseFormat(d.format)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Format = f
	}
	if d.set.pretty {
		cfg.Pretty = d.pretty
	}
	if d.set.varintLengths {
		cfg.VarintLengths = d.varintLengths
	}
	if d.set.workers {
		cfg.Workers = d.workers
	}
	if err := config.Validate(cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func (d *decodeCommand) run(stdout io.Writer) error {
	cfg, err := d.resolve()
	if err != nil {
		return err
	}
	if d.configPath != "" && !logging.SetLevel(cfg.LogLevel) {
		log.Warn().Str("level", cfg.LogLevel).Msg("ignoring unknown log level")
	}

	files := d.files
	if len(files) == 0 {
		files = []string{"-"}
	}

	docs, err := decodeAll(files, cfg)
	if d.metricsFile != "" {
		if werr := observability.WriteTextfile(d.metricsFile); werr != nil {
			log.Warn().Err(werr).Str("path", d.metricsFile).Msg("metrics textfile not written")
		}
	}
	if err != nil {
		return err
	}
	return render.Write(stdout, docs, render.Options{Format: cfg.Format, Pretty: cfg.Pretty})
}

// decodeAll decodes every file with at most cfg.Workers in flight and keeps
// argument order in the result.
func decodeAll(files []string, cfg config.Config) ([]render.Document, error) {
	dec := protocol.NewDecoder(protocol.Options{VarintLengths: cfg.VarintLengths}, log.Logger)
	opts := cfg.InputOptions()

	docs := make([]render.Document, len(files))
	var g errgroup.Group
	g.SetLimit(cfg.Workers)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			data, err := input.Load(path, opts)
			if err != nil {
				return err
			}
			start := time.Now()
			fields, err := dec.Decode(data)
			observability.RecordDecode(len(data), len(fields), time.Since(start), err)
			if err != nil {
				return fmt.Errorf("%s: %w", sourceName(path), err)
			}
			log.Debug().Str("source", sourceName(path)).Int("bytes", len(data)).Int("fields", len(fields)).Msg("decoded")
			docs[i] = render.Document{Source: sourceName(path), Fields: fields}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

func sourceName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}
