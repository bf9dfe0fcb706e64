package cli

import (
	"fmt"

	"github.com/dl/pktfmt/timefmt"
)

// ColorMode controls when styled output is used.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // style when stdout is a terminal
	ColorAlways                  // always style
	ColorNever                   // never style
)

// Kind identifies the wire type of an input value.
type Kind int

const (
	KindBytes Kind = iota
	KindU32
	KindU64
	KindI32
	KindI64
	KindIPv4
	KindIPv6
	KindGUID
	KindEUI64
	KindTime
	KindRelTime
	KindBits
)

var kindNames = map[string]Kind{
	"bytes":   KindBytes,
	"u32":     KindU32,
	"u64":     KindU64,
	"i32":     KindI32,
	"i64":     KindI64,
	"ipv4":    KindIPv4,
	"ipv6":    KindIPv6,
	"guid":    KindGUID,
	"eui64":   KindEUI64,
	"time":    KindTime,
	"reltime": KindRelTime,
	"bits":    KindBits,
}

// ParseKind maps a flag or config-file value to a Kind.
func ParseKind(s string) (Kind, error) {
	k, ok := kindNames[s]
	if !ok {
		return 0, fmt.Errorf("unknown value kind %q", s)
	}
	return k, nil
}

func (k Kind) String() string {
	for name, v := range kindNames {
		if v == k {
			return name
		}
	}
	return "unknown"
}

// ParseTimeMode maps a flag or config-file value to a timefmt.Mode.
func ParseTimeMode(s string) (timefmt.Mode, error) {
	switch s {
	case "utc":
		return timefmt.ModeUTC, nil
	case "doy":
		return timefmt.ModeDOYUTC, nil
	case "ntp":
		return timefmt.ModeNTPUTC, nil
	case "local":
		return timefmt.ModeLocal, nil
	}
	return 0, fmt.Errorf("unknown time mode %q (want utc, doy, ntp or local)", s)
}

// ParseColorMode maps a flag or config-file value to a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "auto", "":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return 0, fmt.Errorf("unknown color mode %q (want auto, always or never)", s)
}

// Config holds all configuration for one pktfmt invocation.
type Config struct {
	Kind       Kind
	Punct      byte // 0 means unpunctuated byte strings
	TimeMode   timefmt.Mode
	ShowZone   bool
	BitOffset  uint
	BitLen     int
	JSONOutput bool
	Color      ColorMode
	InputPath  string   // file to read values from; "" or "-" is stdin
	Values     []string // literal values from the command line
}

// Validate checks that the config is valid and returns an error if not.
func (c *Config) Validate() error {
	if c.Kind == KindBits {
		if c.BitLen < 1 || c.BitLen > 64 {
			return fmt.Errorf("invalid bit length: %d", c.BitLen)
		}
		if c.BitOffset > 7 {
			return fmt.Errorf("invalid bit offset: %d (0 to 7 within the first byte)", c.BitOffset)
		}
	}
	if c.Punct != 0 && (c.Punct < ' ' || c.Punct > '~') {
		return fmt.Errorf("punctuation %q is not printable", c.Punct)
	}
	return nil
}
