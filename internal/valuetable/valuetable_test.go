package valuetable

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(bs ...byte) []byte { return bs }

func TestQueryInsertsDefaultOnMiss(t *testing.T) {
	tbl := New(2)
	visits, value := tbl.Query(key(1, 2), func() float64 { return 3.5 })
	assert.Equal(t, uint64(0), visits)
	assert.Equal(t, 3.5, value)
}

func TestQueryIsIdempotentOnHit(t *testing.T) {
	tbl := New(2)
	calls := 0
	defaultFn := func() float64 { calls++; return 1 }
	tbl.Query(key(1, 2), defaultFn)
	tbl.Query(key(1, 2), defaultFn)
	assert.Equal(t, 1, calls, "default should only be computed on first insert")
}

func TestUpdateBlendsValueAndIncrementsVisits(t *testing.T) {
	tbl := New(2)
	tbl.Query(key(1, 2), func() float64 { return 0 })
	tbl.Update(key(1, 2), 1.0, 0.5)
	visits, value := tbl.Query(key(1, 2), func() float64 { return -1 })
	assert.Equal(t, uint64(1), visits)
	assert.InDelta(t, 0.5, value, 1e-9)
}

func TestUpdateWithoutQueryPanics(t *testing.T) {
	tbl := New(2)
	assert.Panics(t, func() { tbl.Update(key(9, 9), 1, 0.1) })
}

func TestRecordEndingIncrementsVisitsOnly(t *testing.T) {
	tbl := New(2)
	tbl.Query(key(1, 2), func() float64 { return 7 })
	tbl.RecordEnding(key(1, 2))
	visits, value := tbl.Query(key(1, 2), nil)
	assert.Equal(t, uint64(1), visits)
	assert.Equal(t, 7.0, value)
}

func TestConcurrentUpdatesSumVisits(t *testing.T) {
	tbl := New(2)
	k := key(5, 6)
	tbl.Query(k, func() float64 { return 0 })

	const n = 200
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tbl.Update(k, 1, 0.01)
		}()
	}
	wg.Wait()

	visits, _ := tbl.Query(k, nil)
	assert.Equal(t, uint64(n), visits)
}

func TestDumpFiltersBelowThresholdAndLoadRoundTrips(t *testing.T) {
	tbl := New(2)
	for i, visits := range []int{1, 5, 10} {
		k := key(byte(i), byte(i+1))
		tbl.Query(k, func() float64 { return float64(i) })
		for j := 0; j < visits; j++ {
			tbl.Update(k, float64(i), 0.1)
		}
	}

	path := filepath.Join(t.TempDir(), "result.bin")
	require.NoError(t, tbl.Dump(path, 5))

	loaded := New(2)
	require.NoError(t, loaded.Load(path))
	assert.Equal(t, 2, loaded.Len())

	visits, _ := loaded.Query(key(1, 2), nil)
	assert.Equal(t, uint64(5), visits)
}

func TestDumpThenLoadThenDumpIsByteIdentical(t *testing.T) {
	tbl := New(2)
	for i, k := range []([]byte){key(3, 4), key(1, 9), key(0, 2), key(8, 8)} {
		tbl.Query(k, func() float64 { return 2.25 })
		for j := 0; j < 6+i; j++ {
			tbl.Update(k, 0.75, 0.3)
		}
	}

	dir := t.TempDir()
	first := filepath.Join(dir, "first.bin")
	second := filepath.Join(dir, "second.bin")
	require.NoError(t, tbl.Dump(first, 5))

	reloaded := New(2)
	require.NoError(t, reloaded.Load(first))
	require.NoError(t, reloaded.Dump(second, 5))

	firstBytes := readFile(t, first)
	secondBytes := readFile(t, second)
	assert.Equal(t, firstBytes, secondBytes)
}

func TestLoadOfMissingFileIsNotAnError(t *testing.T) {
	tbl := New(2)
	require.NoError(t, tbl.Load(filepath.Join(t.TempDir(), "absent.bin")))
	assert.Equal(t, 0, tbl.Len())
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}
