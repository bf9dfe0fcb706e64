package cli

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dl/pktfmt"
	"github.com/dl/pktfmt/addrfmt"
	"github.com/dl/pktfmt/arena"
	"github.com/dl/pktfmt/bitfield"
	"github.com/dl/pktfmt/bytefmt"
	"github.com/dl/pktfmt/diag"
	"github.com/dl/pktfmt/digits"
	"github.com/dl/pktfmt/timefmt"
)

// Renderer turns hex-encoded input tokens into display text. It owns a
// private allocation scope that is reset at the start of every Render
// call, so the Text of a Result is only valid until the next call.
type Renderer struct {
	cfg   Config
	scope *arena.Scope
}

// NewRenderer creates a Renderer for the given config.
func NewRenderer(cfg Config) *Renderer {
	return &Renderer{cfg: cfg, scope: arena.New()}
}

// Render decodes one hex token and renders it according to the
// configured kind.
func (r *Renderer) Render(token string) (res Result, err error) {
	defer diag.Catch(&err)

	r.scope.Reset()
	res.Kind = r.cfg.Kind
	res.Input = token

	data, derr := hex.DecodeString(token)
	if derr != nil {
		return Result{}, fmt.Errorf("bad hex value %q: %w", token, derr)
	}

	switch r.cfg.Kind {
	case KindBytes:
		if r.cfg.Punct != 0 {
			res.Text = bytefmt.BytesPunct(r.scope, data, r.cfg.Punct)
		} else {
			res.Text = bytefmt.Bytes(r.scope, data)
		}
		res.Truncated = strings.HasSuffix(res.Text, pktfmt.Ellipsis)

	case KindU32:
		if err := needBytes(r.cfg.Kind, data, 4); err != nil {
			return Result{}, err
		}
		buf := r.scope.Alloc(10)
		n := digits.Uint32ToBuf(buf, binary.BigEndian.Uint32(data))
		res.Text = arena.String(buf[:n])

	case KindU64:
		if err := needBytes(r.cfg.Kind, data, 8); err != nil {
			return Result{}, err
		}
		buf := r.scope.Alloc(20)
		n := digits.Uint64ToBuf(buf, binary.BigEndian.Uint64(data))
		res.Text = arena.String(buf[:n])

	case KindI32:
		if err := needBytes(r.cfg.Kind, data, 4); err != nil {
			return Result{}, err
		}
		buf := r.scope.Alloc(11)
		start := digits.IntBack(buf, len(buf), int32(binary.BigEndian.Uint32(data)))
		res.Text = arena.String(buf[start:])

	case KindI64:
		if err := needBytes(r.cfg.Kind, data, 8); err != nil {
			return Result{}, err
		}
		buf := r.scope.Alloc(20)
		start := digits.Int64Back(buf, len(buf), int64(binary.BigEndian.Uint64(data)))
		res.Text = arena.String(buf[start:])

	case KindIPv4:
		if err := needBytes(r.cfg.Kind, data, 4); err != nil {
			return Result{}, err
		}
		res.Text = addrfmt.IPv4String(r.scope, data)

	case KindIPv6:
		if err := needBytes(r.cfg.Kind, data, 16); err != nil {
			return Result{}, err
		}
		res.Text = addrfmt.IPv6String(r.scope, [16]byte(data))

	case KindGUID:
		u, uerr := uuid.FromBytes(data)
		if uerr != nil {
			return Result{}, fmt.Errorf("guid value: %w", uerr)
		}
		res.Text = addrfmt.GUIDString(r.scope, addrfmt.GUIDFromUUID(u))

	case KindEUI64:
		if err := needBytes(r.cfg.Kind, data, 8); err != nil {
			return Result{}, err
		}
		res.Text = addrfmt.EUI64String(r.scope, binary.BigEndian.Uint64(data))

	case KindTime:
		ts, terr := stampOf(r.cfg.Kind, data)
		if terr != nil {
			return Result{}, terr
		}
		res.Text = timefmt.AbsTime(r.scope, ts, r.cfg.TimeMode, r.cfg.ShowZone)

	case KindRelTime:
		ts, terr := stampOf(r.cfg.Kind, data)
		if terr != nil {
			return Result{}, terr
		}
		res.Text = timefmt.RelTime(r.scope, ts)

	case KindBits:
		if len(data) < 1 || len(data) > 8 {
			return Result{}, fmt.Errorf("bits value needs 1 to 8 bytes, got %d", len(data))
		}
		var v uint64
		for _, b := range data {
			v = v<<8 | uint64(b)
		}
		res.Text = bitfield.Render(r.scope, r.cfg.BitOffset, r.cfg.BitLen, v)

	default:
		return Result{}, fmt.Errorf("unsupported kind %v", r.cfg.Kind)
	}

	return res, nil
}

// stampOf decodes a big-endian timestamp: 8 bytes of seconds, or 12
// with a nanosecond field appended.
func stampOf(kind Kind, data []byte) (timefmt.Stamp, error) {
	if len(data) != 8 && len(data) != 12 {
		return timefmt.Stamp{}, fmt.Errorf("%s value needs 8 or 12 bytes, got %d", kind, len(data))
	}
	ts := timefmt.Stamp{Secs: int64(binary.BigEndian.Uint64(data))}
	if len(data) == 12 {
		ts.Nsecs = int32(binary.BigEndian.Uint32(data[8:]))
	}
	return ts, nil
}

func needBytes(kind Kind, data []byte, want int) error {
	if len(data) != want {
		return fmt.Errorf("%s value needs %d bytes, got %d", kind, want, len(data))
	}
	return nil
}
