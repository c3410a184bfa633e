// Package valuetable implements the concurrent position -> (visits, value)
// table shared by every search worker, and its binary persistence format.
package valuetable

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
	"os"
	"sync"
	"sync/atomic"

	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/janpfeifer/star/internal/generics"
)

// DefaultDumpThreshold is the minimum visit count an entry needs to survive
// a Dump. It is empirical, not derived; expose it as configuration rather
// than hard-coding it at call sites that care.
const DefaultDumpThreshold = 5

// atomicFloat64 wraps an atomic.Uint64 bit pattern to give a lock-free
// float64 cell, mirroring the engine's reference AtomicF64 helper.
type atomicFloat64 struct {
	bits atomic.Uint64
}

func newAtomicFloat64(v float64) *atomicFloat64 {
	a := &atomicFloat64{}
	a.store(v)
	return a
}

func (a *atomicFloat64) load() float64 {
	return math.Float64frombits(a.bits.Load())
}

func (a *atomicFloat64) store(v float64) {
	a.bits.Store(math.Float64bits(v))
}

type entry struct {
	visits atomic.Uint64
	value  *atomicFloat64
}

// Table is a concurrent map from a position key (see state.Game.PiecesKey)
// to (visits, value). The common read path -- looking up a key that is
// already present -- takes only a shared lock and atomic loads; inserting a
// previously-unseen key upgrades to an exclusive lock.
type Table struct {
	mu      sync.RWMutex
	entries map[string]*entry

	// KeySize is the expected length, in bytes, of every key: 2*n_pieces for
	// the board this table was built for. Dump/Load use it to frame records.
	KeySize int
}

// New creates an empty table sized for keys of keySize bytes (2*n_pieces).
func New(keySize int) *Table {
	return &Table{entries: make(map[string]*entry), KeySize: keySize}
}

// Query returns the current (visits, value) for key, inserting
// (0, defaultFn()) if absent. The shared-lock fast path is tried first; only
// on a miss does Query re-acquire the exclusive lock and, critically,
// re-check for the key before inserting -- a second goroutine may have lost
// the same race and already created the entry.
func (t *Table) Query(key []byte, defaultFn func() float64) (visits uint64, value float64) {
	k := string(key)

	t.mu.RLock()
	e, ok := t.entries[k]
	t.mu.RUnlock()
	if ok {
		return e.visits.Load(), e.value.load()
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if e, ok = t.entries[k]; ok {
		return e.visits.Load(), e.value.load()
	}
	v := defaultFn()
	t.entries[k] = &entry{value: newAtomicFloat64(v)}
	return 0, v
}

// Update requires the entry for key to already exist (created via Query). It
// atomically increments visits and blends value toward newValue by lr:
// value <- value*(1-lr) + newValue*lr. The increment and the blend use
// relaxed atomic operations deliberately: concurrent updates may interleave
// and yield a slightly stale mean, which is acceptable because the search
// driving these updates is itself stochastic.
func (t *Table) Update(key []byte, newValue, lr float64) {
	t.mu.RLock()
	e, ok := t.entries[string(key)]
	t.mu.RUnlock()
	if !ok {
		exceptions.Panicf("valuetable: Update called on key never seen by Query")
	}
	e.visits.Add(1)
	e.value.store(e.value.load()*(1-lr) + newValue*lr)
}

// RecordEnding requires the entry for key to already exist, and increments
// its visits without touching value; used when a playout terminates at key
// without producing a blended estimate.
func (t *Table) RecordEnding(key []byte) {
	t.mu.RLock()
	e, ok := t.entries[string(key)]
	t.mu.RUnlock()
	if !ok {
		exceptions.Panicf("valuetable: RecordEnding called on key never seen by Query")
	}
	e.visits.Add(1)
}

// Len returns the number of distinct keys currently tracked.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Dump writes every entry with visits >= threshold to path as little-endian
// records [key bytes][visits uint64][value float64], via a temp-file then
// rename so a crash mid-write never corrupts a previously good file. Keys
// are visited in sorted order (via internal/generics.SortedKeys) so that two
// dumps of an unchanged table -- in particular dump, load, dump again -- are
// byte-identical rather than depending on Go's randomized map iteration.
func (t *Table) Dump(path string, threshold uint64) error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	tmpPath := path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return errors.Wrapf(err, "valuetable: creating %s", tmpPath)
	}
	w := bufio.NewWriter(f)

	written := 0
	for key := range generics.SortedKeys(t.entries) {
		e := t.entries[key]
		visits := e.visits.Load()
		if visits < threshold {
			continue
		}
		must.M1(w.Write([]byte(key)))
		var buf [16]byte
		binary.LittleEndian.PutUint64(buf[:8], visits)
		binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(e.value.load()))
		must.M1(w.Write(buf[:]))
		written++
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "valuetable: flushing %s", tmpPath)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "valuetable: closing %s", tmpPath)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return errors.Wrapf(err, "valuetable: renaming %s to %s", tmpPath, path)
	}
	klog.V(1).Infof("valuetable: dumped %d entries (of %d tracked) to %s", written, len(t.entries), path)
	return nil
}

// Load reads records from path (the format Dump writes) and inserts them,
// under the exclusive lock. A short final read -- fewer than KeySize+16
// bytes -- terminates the load without error, matching the reference
// implementation's EOF-terminates-the-stream contract. A missing file is not
// an error: the table simply stays empty.
func (t *Table) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "valuetable: opening %s", path)
	}
	defer f.Close()

	t.mu.Lock()
	defer t.mu.Unlock()

	r := bufio.NewReader(f)
	recordSize := t.KeySize + 16
	buf := make([]byte, recordSize)
	loaded := 0
	for {
		n, err := io.ReadFull(r, buf)
		if n < recordSize {
			break
		}
		if err != nil && err != io.EOF {
			return errors.Wrapf(err, "valuetable: reading %s", path)
		}
		key := string(buf[:t.KeySize])
		visits := binary.LittleEndian.Uint64(buf[t.KeySize : t.KeySize+8])
		value := math.Float64frombits(binary.LittleEndian.Uint64(buf[t.KeySize+8:]))
		e := &entry{value: newAtomicFloat64(value)}
		e.visits.Store(visits)
		t.entries[key] = e
		loaded++
		if err == io.EOF {
			break
		}
	}
	klog.Infof("valuetable: loaded %d entries from %s", loaded, path)
	return nil
}
