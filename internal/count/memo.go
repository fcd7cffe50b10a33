// Package count implements the memoized counting recursion:
// count(lw, rw, lc, rc, n) is the number of ways to link words lw..rw
// using exactly n null (unlinked) words in between, given that lc is an
// outstanding connector owned by lw reaching rightward into the span and
// rc is an outstanding connector owned by rw reaching leftward into it.
package count

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/linkgrammar-go/lgcore/internal/connector"
)

// connRef is the hashable, comparable projection of an optional boundary
// jet used inside a memoKey. A nil *Jet becomes the zero connRef
// (Present == false). Chain folds in the whole remaining jet, not just
// its head, so two jets that happen to share a head connector's identity
// but diverge further down the chain are never conflated.
type connRef struct {
	Present bool
	Chain   uint64
}

func refOf(j *Jet) connRef {
	if j == nil {
		return connRef{}
	}
	d := xxhash.New()
	var buf [8]byte
	write := func(c connector.Connector) {
		var multi byte
		if c.Multi {
			multi = 1
		}
		d.Write([]byte{multi, byte(c.Direction)})
		binary.LittleEndian.PutUint64(buf[:], uint64(c.Name))
		d.Write(buf[:])
	}
	write(j.Head)
	for _, c := range j.Rest {
		write(c)
	}
	return connRef{Present: true, Chain: d.Sum64()}
}

// memoKey is the five-field key the recursion memoizes on: (lw, rw, lc, rc, n).
type memoKey struct {
	LW, RW int
	LC, RC connRef
	N      int
}

// hash mixes every key field through an xxhash digest, the same way the
// fast-match index hashes connector prefixes (internal/match).
func (k memoKey) hash() uint64 {
	d := xxhash.New()
	var buf [8]byte
	writeInt := func(v int64) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		d.Write(buf[:])
	}
	writeRef := func(r connRef) {
		var present byte
		if r.Present {
			present = 1
		}
		d.Write([]byte{present})
		writeInt(int64(r.Chain))
	}
	writeInt(int64(k.LW))
	writeInt(int64(k.RW))
	writeInt(int64(k.N))
	writeRef(k.LC)
	writeRef(k.RC)
	return d.Sum64()
}

type memoEntry struct {
	key   memoKey
	value int64
}

// Table is a fixed-bucket-count hash table sized from the sentence
// length: a power of two derived from sentence length, capped so a
// pathological sentence cannot exhaust memory.
type Table struct {
	buckets [][]memoEntry
	mask    uint64
}

// NewTable sizes a Table for a sentence of the given word count.
func NewTable(sentenceLen int) *Table {
	exp := 10
	for (1 << exp) < sentenceLen*sentenceLen && exp < 24 {
		exp++
	}
	return &Table{buckets: make([][]memoEntry, 1<<exp), mask: uint64(1<<exp) - 1}
}

func (t *Table) Get(k memoKey) (int64, bool) {
	idx := k.hash() & t.mask
	for _, e := range t.buckets[idx] {
		if e.key == k {
			return e.value, true
		}
	}
	return 0, false
}

func (t *Table) Set(k memoKey, v int64) {
	idx := k.hash() & t.mask
	bucket := t.buckets[idx]
	for i, e := range bucket {
		if e.key == k {
			bucket[i].value = v
			return
		}
	}
	t.buckets[idx] = append(bucket, memoEntry{key: k, value: v})
}

// Len reports how many distinct subproblems are currently memoized,
// mainly for tests and metrics.
func (t *Table) Len() int {
	n := 0
	for _, b := range t.buckets {
		n += len(b)
	}
	return n
}
