// Package arena provides region allocation scopes for formatter output.
//
// A Scope hands out byte blocks carved from larger chunks. Every block
// and string obtained from a Scope becomes invalid together when Reset
// is called; the chunk memory is retained and refilled. This mirrors
// the lifetime model of packet dissection: one scope per packet, reset
// between packets, so a burst of formatter calls costs a handful of
// chunk allocations instead of one per string.
//
// A Scope is not safe for concurrent use. Give each goroutine its own,
// or draw them from a Pool.
package arena

import (
	"fmt"
	"unsafe"
)

// DefaultChunkSize is the chunk size used by New.
const DefaultChunkSize = 4096

// Allocator is the allocation surface the formatter packages consume.
// *Scope implements it.
type Allocator interface {
	// Alloc returns a block of exactly n bytes. The block may hold
	// stale data from a previous generation; callers overwrite it
	// fully before exposing it.
	Alloc(n int) []byte
	// Dup copies b into scope memory and returns it as a string.
	Dup(b []byte) string
	// Strdup copies s into scope memory.
	Strdup(s string) string
	// Sprintf formats into scope memory.
	Sprintf(format string, args ...any) string
}

// Scope is a bump allocator over chunked blocks. The zero value is not
// usable; call New or NewSized.
type Scope struct {
	chunks    [][]byte // bump-filled, retained across Reset
	big       [][]byte // oversized one-off blocks, dropped on Reset
	ci        int      // chunk being filled
	off       int      // write offset within chunks[ci]
	chunkSize int
	allocated int    // bytes handed out since the last Reset
	scratch   []byte // Sprintf staging buffer, reused
}

// New returns a Scope with the default chunk size.
func New() *Scope { return NewSized(DefaultChunkSize) }

// NewSized returns a Scope whose chunks hold chunkSize bytes.
func NewSized(chunkSize int) *Scope {
	if chunkSize < 1 {
		chunkSize = DefaultChunkSize
	}
	return &Scope{chunkSize: chunkSize}
}

// Alloc returns a block of exactly n bytes of scope memory. Requests
// larger than the chunk size get a dedicated block so they cannot
// starve the bump chunks.
func (s *Scope) Alloc(n int) []byte {
	if n <= 0 {
		if n < 0 {
			panic("arena: negative Alloc size")
		}
		return nil
	}
	s.allocated += n
	if n > s.chunkSize {
		b := make([]byte, n)
		s.big = append(s.big, b)
		return b
	}
	for {
		if s.ci < len(s.chunks) {
			c := s.chunks[s.ci]
			if s.off+n <= len(c) {
				b := c[s.off : s.off+n : s.off+n]
				s.off += n
				return b
			}
			// Tail of this chunk is too small; leave it and move on.
			s.ci++
			s.off = 0
			continue
		}
		s.chunks = append(s.chunks, make([]byte, s.chunkSize))
	}
}

// Dup copies b into scope memory and returns it as a string. An empty
// slice yields "".
func (s *Scope) Dup(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	blk := s.Alloc(len(b))
	copy(blk, b)
	return String(blk)
}

// Strdup copies str into scope memory.
func (s *Scope) Strdup(str string) string {
	if len(str) == 0 {
		return ""
	}
	blk := s.Alloc(len(str))
	copy(blk, str)
	return String(blk)
}

// Sprintf formats into scope memory. The staging buffer is owned by the
// Scope, so concurrent calls on one Scope would race; see the package
// comment.
func (s *Scope) Sprintf(format string, args ...any) string {
	s.scratch = fmt.Appendf(s.scratch[:0], format, args...)
	return s.Dup(s.scratch)
}

// Reset releases everything allocated from the scope at once. Chunk
// memory is retained for the next generation; any block or string
// previously handed out must not be touched again.
func (s *Scope) Reset() {
	s.ci = 0
	s.off = 0
	s.big = nil
	s.allocated = 0
}

// Allocated returns the total bytes handed out since the last Reset.
func (s *Scope) Allocated() int { return s.allocated }

// String returns b viewed as a string without copying. b must be a
// block the caller has finished writing; the string shares the block's
// memory and its lifetime, including invalidation on Reset.
func String(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

var _ Allocator = (*Scope)(nil)
