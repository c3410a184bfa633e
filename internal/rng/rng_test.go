package rng

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSoftmaxSumsToOne(t *testing.T) {
	x := []float64{1, 2, 3, -4, 0.5}
	SoftmaxF64(x, 1)
	sum := 0.0
	for _, v := range x {
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestSoftmaxTranslationInvariant(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{101, 102, 103}
	SoftmaxF64(a, 1)
	SoftmaxF64(b, 1)
	for i := range a {
		assert.InDelta(t, a[i], b[i], 1e-9)
	}
}

func TestSoftmaxF32SumsToOne(t *testing.T) {
	x := []float32{1, 2, 3, -4, 0.5}
	SoftmaxF32(x, 1)
	var sum float32
	for _, v := range x {
		sum += v
	}
	assert.InDelta(t, float32(1.0), sum, 1e-5)
}

func TestPerWorkerSeedsDiverge(t *testing.T) {
	a := New(42, 0)
	b := New(42, 1)
	same := true
	for i := 0; i < 20; i++ {
		if a.Intn(1_000_000) != b.Intn(1_000_000) {
			same = false
			break
		}
	}
	assert.False(t, same, "different worker indices should not produce identical streams")
}

func TestSameSeedDeterministic(t *testing.T) {
	a := New(7, 3)
	b := New(7, 3)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestSampleCategoricalRespectsDistribution(t *testing.T) {
	s := New(1, 0)
	probs := []float64{1, 0, 0}
	for i := 0; i < 10; i++ {
		assert.Equal(t, 0, s.SampleCategorical(probs))
	}
}

func TestSampleCategoricalWithinRange(t *testing.T) {
	s := New(2, 0)
	probs := []float64{0.2, 0.3, 0.5}
	for i := 0; i < 100; i++ {
		idx := s.SampleCategorical(probs)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, len(probs))
	}
}

func TestSoftmaxHandlesSingleElement(t *testing.T) {
	x := []float64{math.Pi}
	SoftmaxF64(x, 1)
	assert.InDelta(t, 1.0, x[0], 1e-9)
}
