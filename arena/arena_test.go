package arena

import (
	"strings"
	"testing"
)

func TestAllocBlocks(t *testing.T) {
	s := New()
	b1 := s.Alloc(4)
	b2 := s.Alloc(4)
	if len(b1) != 4 || len(b2) != 4 {
		t.Fatalf("Alloc lengths = %d, %d, want 4, 4", len(b1), len(b2))
	}
	copy(b1, "aaaa")
	copy(b2, "bbbb")
	if string(b1) != "aaaa" || string(b2) != "bbbb" {
		t.Errorf("blocks overlap: %q, %q", b1, b2)
	}
	if s.Allocated() != 8 {
		t.Errorf("Allocated() = %d, want 8", s.Allocated())
	}
}

func TestAllocZeroAndNegative(t *testing.T) {
	s := New()
	if b := s.Alloc(0); b != nil {
		t.Errorf("Alloc(0) = %v, want nil", b)
	}
	defer func() {
		if recover() == nil {
			t.Error("Alloc(-1) did not panic")
		}
	}()
	s.Alloc(-1)
}

func TestAllocBlockCapped(t *testing.T) {
	// A block's capacity equals its length, so an append by the
	// caller cannot bleed into the next block.
	s := New()
	b1 := s.Alloc(4)
	b2 := s.Alloc(4)
	copy(b2, "keep")
	b1 = append(b1, 'x')
	_ = b1
	if string(b2) != "keep" {
		t.Errorf("append into neighbor: %q", b2)
	}
}

func TestAllocSpansChunks(t *testing.T) {
	s := NewSized(16)
	var blocks [][]byte
	for i := 0; i < 10; i++ {
		b := s.Alloc(10)
		for j := range b {
			b[j] = byte('a' + i)
		}
		blocks = append(blocks, b)
	}
	for i, b := range blocks {
		want := strings.Repeat(string(rune('a'+i)), 10)
		if string(b) != want {
			t.Errorf("block %d = %q, want %q", i, b, want)
		}
	}
	if s.Allocated() != 100 {
		t.Errorf("Allocated() = %d, want 100", s.Allocated())
	}
}

func TestAllocBig(t *testing.T) {
	s := NewSized(16)
	b := s.Alloc(100)
	if len(b) != 100 {
		t.Fatalf("Alloc(100) length = %d", len(b))
	}
	// Big blocks must not consume the bump chunks.
	c := s.Alloc(10)
	if len(c) != 10 {
		t.Fatalf("Alloc(10) after big block length = %d", len(c))
	}
}

func TestResetRetainsChunks(t *testing.T) {
	s := NewSized(64)
	b1 := s.Alloc(8)
	p1 := &b1[0]
	s.Reset()
	if s.Allocated() != 0 {
		t.Errorf("Allocated() after Reset = %d, want 0", s.Allocated())
	}
	b2 := s.Alloc(8)
	if &b2[0] != p1 {
		t.Error("Reset did not retain chunk memory")
	}
}

func TestDupAndStrdup(t *testing.T) {
	s := New()
	src := []byte("hello")
	d := s.Dup(src)
	src[0] = 'X'
	if d != "hello" {
		t.Errorf("Dup aliases its source: %q", d)
	}
	if got := s.Strdup("world"); got != "world" {
		t.Errorf("Strdup = %q, want %q", got, "world")
	}
	if got := s.Dup(nil); got != "" {
		t.Errorf("Dup(nil) = %q, want %q", got, "")
	}
	if got := s.Strdup(""); got != "" {
		t.Errorf("Strdup(\"\") = %q, want %q", got, "")
	}
}

func TestSprintf(t *testing.T) {
	s := New()
	got := s.Sprintf("%s %2d, %d", "Jan", 2, 2006)
	if got != "Jan  2, 2006" {
		t.Errorf("Sprintf = %q, want %q", got, "Jan  2, 2006")
	}
	// The staging buffer is reused; earlier results must survive.
	got2 := s.Sprintf("%04d", 7)
	if got != "Jan  2, 2006" || got2 != "0007" {
		t.Errorf("Sprintf reuse corrupted output: %q, %q", got, got2)
	}
}

func TestStringZeroCopy(t *testing.T) {
	// String shares the block's memory; that is the point, and the
	// sharp edge the package comment warns about.
	b := []byte("abc")
	str := String(b)
	b[0] = 'X'
	if str != "Xbc" {
		t.Errorf("String did not share memory: %q", str)
	}
	if String(nil) != "" {
		t.Error("String(nil) != \"\"")
	}
}

func TestSteadyStateAllocs(t *testing.T) {
	s := New()
	s.Alloc(1024)
	s.Reset()
	allocs := testing.AllocsPerRun(100, func() {
		s.Alloc(64)
		s.Alloc(64)
		s.Reset()
	})
	if allocs != 0 {
		t.Errorf("allocations per run after warmup = %v, want 0", allocs)
	}
}

func BenchmarkAllocReset(b *testing.B) {
	s := New()
	for i := 0; i < b.N; i++ {
		s.Alloc(48)
		s.Alloc(16)
		s.Reset()
	}
}
