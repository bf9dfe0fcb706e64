package arena

import "testing"

func TestPool(t *testing.T) {
	p := NewPool(128)
	s := p.Get()
	if s == nil {
		t.Fatal("Get returned nil")
	}
	s.Alloc(32)
	if s.Allocated() != 32 {
		t.Fatalf("Allocated() = %d, want 32", s.Allocated())
	}
	p.Put(s)

	// Whatever comes back out has been reset.
	s2 := p.Get()
	if s2.Allocated() != 0 {
		t.Errorf("recycled scope Allocated() = %d, want 0", s2.Allocated())
	}
	p.Put(s2)
}

func BenchmarkPool(b *testing.B) {
	p := NewPool(DefaultChunkSize)
	for i := 0; i < b.N; i++ {
		s := p.Get()
		s.Alloc(64)
		p.Put(s)
	}
}
