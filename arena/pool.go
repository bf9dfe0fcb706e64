package arena

import "sync"

// Pool recycles Scopes across units of work so steady-state formatting
// does not allocate chunks at all. Scopes are reset on Put, which
// invalidates everything allocated from them; callers must be done
// with the output before returning the scope.
type Pool struct {
	p sync.Pool
}

// NewPool returns a Pool producing Scopes with the given chunk size.
func NewPool(chunkSize int) *Pool {
	return &Pool{
		p: sync.Pool{
			New: func() any { return NewSized(chunkSize) },
		},
	}
}

// Get returns a fresh or recycled Scope.
func (p *Pool) Get() *Scope {
	return p.p.Get().(*Scope)
}

// Put resets s and returns it to the pool.
func (p *Pool) Put(s *Scope) {
	s.Reset()
	p.p.Put(s)
}
