// Package strpool implements sentence-scoped string interning.
//
// An interned string is represented by an ID, a small integer whose
// identity is only meaningful relative to the Pool that produced it.
// Two IDs from the same Pool compare equal iff the underlying strings are
// byte-equal; this gives pointer-equality-like semantics for connector and
// word names without needing to compare the original bytes again.
package strpool

// ID identifies an interned string within a single Pool.
type ID int32

// Pool owns the arena of interned strings for one sentence. It is never
// shared across sentences and never shrinks: strings are appended, never
// removed, and the whole pool is dropped with the sentence that owns it.
type Pool struct {
	strings []string
	index   map[string]ID
}

// New returns an empty Pool.
func New() *Pool {
	return &Pool{
		index: make(map[string]ID),
	}
}

// Intern returns the ID for s, allocating a new entry only if s has not
// been seen by this Pool before. For any two calls p.Intern(s), p.Intern(t)
// on the same Pool, the returned IDs are equal iff s == t byte-for-byte.
func (p *Pool) Intern(s string) ID {
	if id, ok := p.index[s]; ok {
		return id
	}
	id := ID(len(p.strings))
	p.strings = append(p.strings, s)
	p.index[s] = id
	return id
}

// String returns the string an ID was interned from. It panics if id is
// out of range for this Pool; an in-range ID from another Pool is not
// detected.
func (p *Pool) String(id ID) string {
	return p.strings[id]
}

// Lookup reports whether s has already been interned, without allocating
// a new entry.
func (p *Pool) Lookup(s string) (ID, bool) {
	id, ok := p.index[s]
	return id, ok
}

// Len returns the number of distinct strings interned so far.
func (p *Pool) Len() int {
	return len(p.strings)
}
