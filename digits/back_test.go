package digits

import (
	"math"
	"strconv"
	"testing"
)

func TestUintBack(t *testing.T) {
	vals := []uint32{0, 1, 9, 10, 42, 99, 100, 101, 999, 1000, 12345, 65535, 999999999, 1000000000, math.MaxUint32}
	for _, v := range vals {
		var buf [16]byte
		pos := len(buf)
		start := UintBack(buf[:], pos, v)
		got := string(buf[start:pos])
		want := strconv.FormatUint(uint64(v), 10)
		if got != want {
			t.Errorf("UintBack(%d) = %q, want %q", v, got, want)
		}
		if pos-start != Uint32Width(v) {
			t.Errorf("UintBack(%d) wrote %d digits, Uint32Width says %d", v, pos-start, Uint32Width(v))
		}
	}
}

func TestUint64Back(t *testing.T) {
	vals := []uint64{0, 7, 10, 100, 12345678901234567, math.MaxInt64, math.MaxUint64}
	for _, v := range vals {
		var buf [24]byte
		pos := len(buf)
		start := Uint64Back(buf[:], pos, v)
		got := string(buf[start:pos])
		want := strconv.FormatUint(v, 10)
		if got != want {
			t.Errorf("Uint64Back(%d) = %q, want %q", v, got, want)
		}
	}
}

func TestUintBackLen(t *testing.T) {
	tests := []struct {
		v     uint32
		width int
		want  string
	}{
		{0, 1, "0"},
		{0, 3, "000"},
		{5, 3, "005"},
		{42, 2, "42"},
		{123, 2, "123"},
		{7, 9, "000000007"},
	}
	for _, tt := range tests {
		var buf [16]byte
		pos := len(buf)
		start := UintBackLen(buf[:], pos, tt.v, tt.width)
		if got := string(buf[start:pos]); got != tt.want {
			t.Errorf("UintBackLen(%d, width %d) = %q, want %q", tt.v, tt.width, got, tt.want)
		}
	}
}

func TestIntBack(t *testing.T) {
	tests := []struct {
		v    int32
		want string
	}{
		{0, "0"},
		{1, "1"},
		{-1, "-1"},
		{123456, "123456"},
		{-123456, "-123456"},
		{math.MaxInt32, "2147483647"},
		{math.MinInt32, "-2147483648"},
	}
	for _, tt := range tests {
		var buf [16]byte
		pos := len(buf)
		start := IntBack(buf[:], pos, tt.v)
		if got := string(buf[start:pos]); got != tt.want {
			t.Errorf("IntBack(%d) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestInt64Back(t *testing.T) {
	tests := []struct {
		v    int64
		want string
	}{
		{0, "0"},
		{-9, "-9"},
		{math.MaxInt64, "9223372036854775807"},
		{math.MinInt64, "-9223372036854775808"},
	}
	for _, tt := range tests {
		var buf [24]byte
		pos := len(buf)
		start := Int64Back(buf[:], pos, tt.v)
		if got := string(buf[start:pos]); got != tt.want {
			t.Errorf("Int64Back(%d) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestOctBack(t *testing.T) {
	tests := []struct {
		v    uint32
		want string
	}{
		{0, "0"},
		{1, "01"},
		{7, "07"},
		{8, "010"},
		{511, "0777"},
		{math.MaxUint32, "037777777777"},
	}
	for _, tt := range tests {
		var buf [16]byte
		pos := len(buf)
		start := OctBack(buf[:], pos, tt.v)
		if got := string(buf[start:pos]); got != tt.want {
			t.Errorf("OctBack(%#o) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestHexBack(t *testing.T) {
	tests := []struct {
		v     uint32
		width int
		want  string
	}{
		{0, 0, "0x0"},
		{0, 4, "0x0000"},
		{0x1f, 4, "0x001f"},
		{0x1f, 0, "0x1f"},
		{0xdeadbeef, 8, "0xdeadbeef"},
		{0xdeadbeef, 4, "0xdeadbeef"},
	}
	for _, tt := range tests {
		var buf [24]byte
		pos := len(buf)
		start := HexBack(buf[:], pos, tt.width, tt.v)
		if got := string(buf[start:pos]); got != tt.want {
			t.Errorf("HexBack(%#x, width %d) = %q, want %q", tt.v, tt.width, got, tt.want)
		}
	}
	var buf [24]byte
	pos := len(buf)
	start := Hex64Back(buf[:], pos, 16, 0xcafe)
	if got, want := string(buf[start:pos]), "0x000000000000cafe"; got != want {
		t.Errorf("Hex64Back(0xcafe, width 16) = %q, want %q", got, want)
	}
}

func TestBackNoAllocs(t *testing.T) {
	var buf [32]byte
	allocs := testing.AllocsPerRun(100, func() {
		Uint64Back(buf[:], len(buf), math.MaxUint64)
		Int64Back(buf[:], len(buf), math.MinInt64)
		Hex64Back(buf[:], len(buf), 16, 0xdeadbeef)
	})
	if allocs != 0 {
		t.Errorf("allocations per run = %v, want 0", allocs)
	}
}

func BenchmarkUintBack(b *testing.B) {
	var buf [16]byte
	for i := 0; i < b.N; i++ {
		UintBack(buf[:], len(buf), 3735928559)
	}
}

func BenchmarkUint64Back(b *testing.B) {
	var buf [24]byte
	for i := 0; i < b.N; i++ {
		Uint64Back(buf[:], len(buf), math.MaxUint64)
	}
}
