package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFor(t *testing.T) {
	cfg := DefaultConfig()

	var counter int64
	n := 1000

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	assert.Equal(t, int64(n), counter)
}

func TestFor_Sequential(t *testing.T) {
	var counter int64
	For(100, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, Config{Enabled: false})

	assert.Equal(t, int64(100), counter)
}

func TestFor_SmallChunk(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 10}

	seen := make([]bool, 9)
	For(len(seen), func(i int) {
		seen[i] = true
	}, cfg)

	for i, ok := range seen {
		assert.True(t, ok, "item %d", i)
	}
}

func TestMap(t *testing.T) {
	for _, cfg := range []Config{DefaultConfig(), Sequential(), {Enabled: true, NumWorkers: 3, MinChunkSize: 1}} {
		got := Map(7, func(i int) int { return i * i }, cfg)
		assert.Equal(t, []int{0, 1, 4, 9, 16, 25, 36}, got)
	}
}

func TestFor_Empty(t *testing.T) {
	called := false
	For(0, func(int) { called = true }, DefaultConfig())
	assert.False(t, called)
	assert.Empty(t, Map(0, func(i int) int { return i }, DefaultConfig()))
}

func BenchmarkMap(b *testing.B) {
	cfg := DefaultConfig()
	for i := 0; i < b.N; i++ {
		Map(64, func(j int) float64 { return float64(j) * 0.5 }, cfg)
	}
}
