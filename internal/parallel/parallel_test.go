package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parallelConfig() Config {
	return Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1, MinGrain: 1}
}

func TestFor(t *testing.T) {
	cfg := parallelConfig()

	var counter int64
	n := 1000

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestFor_EachIndexOnce(t *testing.T) {
	cfg := parallelConfig()

	n := 257
	hits := make([]int32, n)
	For(n, func(i int) {
		atomic.AddInt32(&hits[i], 1)
	}, cfg)

	for i, h := range hits {
		require.Equal(t, int32(1), h, "index %d", i)
	}
}

func TestFor_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	var order []int
	For(100, func(i int) {
		order = append(order, i)
	}, cfg)

	require.Len(t, order, 100)
	for i, v := range order {
		if v != i {
			t.Fatalf("sequential order broken at %d: got %d", i, v)
		}
	}
}

func TestFor_SmallChunk(t *testing.T) {
	// Test that small work units fall back to sequential.
	cfg := parallelConfig()
	cfg.MinChunkSize = 64

	var counter int64
	n := cfg.MinChunkSize - 1

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestFor_Empty(t *testing.T) {
	called := false
	For(0, func(int) { called = true }, parallelConfig())
	For(-5, func(int) { called = true }, parallelConfig())
	assert.False(t, called)
}

func TestForChannels(t *testing.T) {
	cfg := parallelConfig()
	channels, planeSize := 8, 1024

	planes := make([][]float32, channels)
	for q := range planes {
		planes[q] = make([]float32, planeSize)
	}

	ForChannels(channels, planeSize, func(q int) {
		for i := range planes[q] {
			planes[q][i] += float32(q)
		}
	}, cfg)

	for q := range planes {
		for i, v := range planes[q] {
			if v != float32(q) {
				t.Fatalf("plane %d index %d: got %v", q, i, v)
			}
		}
	}
}

func TestForChannels_ZeroPlane(t *testing.T) {
	var counter int64
	ForChannels(5, 0, func(int) { atomic.AddInt64(&counter, 1) }, parallelConfig())
	assert.Equal(t, int64(5), counter)

	ForChannels(0, 100, func(int) { atomic.AddInt64(&counter, 1) }, parallelConfig())
	assert.Equal(t, int64(5), counter)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.GreaterOrEqual(t, cfg.NumWorkers, 1)
	assert.GreaterOrEqual(t, cfg.MinGrain, 1)
	if cfg.NumWorkers == 1 {
		assert.False(t, cfg.Enabled)
	}

	seq := Sequential()
	assert.False(t, seq.Enabled)
}

func BenchmarkFor(b *testing.B) {
	cfg := parallelConfig()
	n := 10000

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfgSeq := cfg
		cfgSeq.Enabled = false
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfgSeq)
		}
	})
}

func BenchmarkForChannels(b *testing.B) {
	cfg := DefaultConfig()
	channels, planeSize := 64, 56*56
	data := make([]float32, channels*planeSize)

	b.Run("default", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			ForChannels(channels, planeSize, func(q int) {
				plane := data[q*planeSize : (q+1)*planeSize]
				for j := range plane {
					plane[j] += 1
				}
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			ForChannels(channels, planeSize, func(q int) {
				plane := data[q*planeSize : (q+1)*planeSize]
				for j := range plane {
					plane[j] += 1
				}
			}, Sequential())
		}
	})
}
