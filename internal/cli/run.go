package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// Main parses args on top of the config file and runs. It returns the
// process exit code: 0 = at least one value rendered, 1 = no value
// rendered, 2 = usage, config or input error.
func Main(args []string) int {
	cfg, err := parseArgs(args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "pktfmt: %v\n", err)
		return 2
	}
	return Run(cfg)
}

// parseArgs builds the Config for one invocation. The config file is
// applied first so that flags win over it. Remaining arguments are the
// values to render; with none, values are read from -f or stdin.
func parseArgs(args []string) (Config, error) {
	cfg := Config{BitLen: 8}
	if err := LoadConfigFile(&cfg); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("pktfmt", flag.ContinueOnError)
	kind := fs.String("kind", cfg.Kind.String(), "value kind: bytes, u32, u64, i32, i64, ipv4, ipv6, guid, eui64, time, reltime, bits")
	punct := fs.String("punct", "", "separator between byte pairs, one character")
	timeMode := fs.String("time", "", "absolute time mode: utc, doy, ntp, local")
	color := fs.String("color", "", "when to style output: auto, always, never")
	fs.BoolVar(&cfg.ShowZone, "zone", cfg.ShowZone, "append the time zone to absolute times")
	fs.UintVar(&cfg.BitOffset, "bit-offset", cfg.BitOffset, "bit offset of the field within its first byte")
	fs.IntVar(&cfg.BitLen, "bit-len", cfg.BitLen, "width of the bit field")
	fs.BoolVar(&cfg.JSONOutput, "json", cfg.JSONOutput, "emit JSON lines instead of text")
	fs.StringVar(&cfg.InputPath, "f", cfg.InputPath, "read values from this file (- is stdin, .gz is decompressed)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	k, err := ParseKind(*kind)
	if err != nil {
		return Config{}, err
	}
	cfg.Kind = k
	if *punct != "" {
		if len(*punct) != 1 {
			return Config{}, fmt.Errorf("punct must be one character, got %q", *punct)
		}
		cfg.Punct = (*punct)[0]
	}
	if *timeMode != "" {
		m, err := ParseTimeMode(*timeMode)
		if err != nil {
			return Config{}, err
		}
		cfg.TimeMode = m
	}
	if *color != "" {
		c, err := ParseColorMode(*color)
		if err != nil {
			return Config{}, err
		}
		cfg.Color = c
	}
	cfg.Values = fs.Args()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run renders every input value with the given config.
// Returns exit code: 0 = value rendered, 1 = no values, 2 = error.
func Run(cfg Config) int {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level: log.WarnLevel,
	})

	// Determine color mode
	useColor := false
	switch cfg.Color {
	case ColorAlways:
		useColor = true
	case ColorNever:
		useColor = false
	case ColorAuto:
		useColor = StdoutIsTerminal()
	}

	// Create formatter and writer
	w := NewWriter()
	var formatter Formatter
	if cfg.JSONOutput {
		formatter = NewJSONFormatter()
	} else {
		var styles Styles
		if useColor {
			styles = NewStyles()
		} else {
			styles = NoStyles()
		}
		formatter = NewTextFormatter(styles, useColor)
	}

	r := NewRenderer(cfg)

	if len(cfg.Values) > 0 {
		return runValues(r, cfg.Values, formatter, w, logger)
	}
	return runStream(r, cfg, formatter, w, logger)
}

func runValues(r *Renderer, values []string, formatter Formatter, w *Writer, logger *log.Logger) int {
	showInput := len(values) > 1
	rendered := 0
	var buf []byte

	for _, v := range values {
		res, err := r.Render(v)
		if err != nil {
			logger.Warn("skipping value", "value", v, "err", err)
			continue
		}
		rendered++
		buf = formatter.Format(buf[:0], res, showInput)
		w.Write(buf)
	}

	if rendered > 0 {
		return 0
	}
	return 1
}

func runStream(r *Renderer, cfg Config, formatter Formatter, w *Writer, logger *log.Logger) int {
	in, err := openInput(cfg)
	if err != nil {
		logger.Error("open input", "err", err)
		return 2
	}
	defer in.Close()

	rendered := 0
	var buf []byte
	scanErr := scanTokens(in, func(tok string) bool {
		res, rerr := r.Render(tok)
		if rerr != nil {
			logger.Warn("skipping value", "value", tok, "err", rerr)
			return true
		}
		rendered++
		buf = formatter.Format(buf[:0], res, true)
		w.Write(buf)
		return true
	})
	if scanErr != nil {
		logger.Error("read input", "err", scanErr)
		return 2
	}

	if rendered > 0 {
		return 0
	}
	return 1
}
