package addrfmt

import (
	"testing"

	"github.com/google/uuid"

	"github.com/dl/pktfmt"
	"github.com/dl/pktfmt/arena"
)

var testGUID = GUID{
	Data1: 0x12345678,
	Data2: 0x9abc,
	Data3: 0xdef0,
	Data4: [8]byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88},
}

func TestGUIDToBuf(t *testing.T) {
	var buf [GUIDLen]byte
	n := GUIDToBuf(buf[:], testGUID)
	if n != GUIDLen {
		t.Fatalf("GUIDToBuf count = %d, want %d", n, GUIDLen)
	}
	if got, want := string(buf[:n]), "12345678-9abc-def0-1122-334455667788"; got != want {
		t.Errorf("GUIDToBuf = %q, want %q", got, want)
	}
}

func TestGUIDToBufShortBuffer(t *testing.T) {
	buf := make([]byte, GUIDLen-1)
	n := GUIDToBuf(buf, testGUID)
	if got, want := string(buf[:n]), pktfmt.TruncMarker; got != want {
		t.Errorf("GUIDToBuf(short buffer) = %q, want %q", got, want)
	}
}

func TestGUIDString(t *testing.T) {
	a := arena.New()
	zero := GUID{}
	if got, want := GUIDString(a, zero), "00000000-0000-0000-0000-000000000000"; got != want {
		t.Errorf("GUIDString(zero) = %q, want %q", got, want)
	}
}

func TestGUIDUUIDBridge(t *testing.T) {
	u := uuid.MustParse("12345678-9abc-def0-1122-334455667788")
	g := GUIDFromUUID(u)
	if g != testGUID {
		t.Fatalf("GUIDFromUUID = %+v, want %+v", g, testGUID)
	}
	if back := g.UUID(); back != u {
		t.Errorf("UUID round trip = %v, want %v", back, u)
	}

	// Both renderings agree on the text.
	a := arena.New()
	if got, want := GUIDString(a, g), u.String(); got != want {
		t.Errorf("GUIDString = %q, uuid renders %q", got, want)
	}
}

func TestGUIDNoAllocs(t *testing.T) {
	var buf [GUIDLen]byte
	allocs := testing.AllocsPerRun(100, func() {
		GUIDToBuf(buf[:], testGUID)
	})
	if allocs != 0 {
		t.Errorf("allocations per run = %v, want 0", allocs)
	}
}

func BenchmarkGUIDToBuf(b *testing.B) {
	var buf [GUIDLen]byte
	for i := 0; i < b.N; i++ {
		GUIDToBuf(buf[:], testGUID)
	}
}
