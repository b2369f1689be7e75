package envconfig

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Setenv("LAYERCORE_DEBUG", "")
	LoadConfig()
	require.False(t, Debug)
	t.Setenv("LAYERCORE_DEBUG", "false")
	LoadConfig()
	require.False(t, Debug)
	t.Setenv("LAYERCORE_DEBUG", "1")
	LoadConfig()
	require.True(t, Debug)
	t.Setenv("LAYERCORE_DEBUG", "yes please")
	LoadConfig()
	require.True(t, Debug)
}

func TestNumThreads(t *testing.T) {
	cases := map[string]int{
		"":      runtime.NumCPU(),
		"4":     4,
		"'2'":   2,
		" 8 ":   8,
		"0":     runtime.NumCPU(),
		"-3":    runtime.NumCPU(),
		"bogus": runtime.NumCPU(),
	}

	for value, expect := range cases {
		t.Run(value, func(t *testing.T) {
			t.Setenv("LAYERCORE_NUM_THREADS", value)
			LoadConfig()
			assert.Equal(t, expect, NumThreads)
		})
	}
}

func TestMinGrainAndNoParallel(t *testing.T) {
	t.Setenv("LAYERCORE_MIN_GRAIN", "")
	t.Setenv("LAYERCORE_NO_PARALLEL", "")
	LoadConfig()
	assert.Equal(t, defaultMinGrain, MinGrain)
	assert.False(t, NoParallel)

	t.Setenv("LAYERCORE_MIN_GRAIN", "128")
	t.Setenv("LAYERCORE_NO_PARALLEL", "1")
	LoadConfig()
	assert.Equal(t, 128, MinGrain)
	assert.True(t, NoParallel)
}

func TestValues(t *testing.T) {
	t.Setenv("LAYERCORE_NUM_THREADS", "3")
	LoadConfig()

	vals := Values()
	assert.Equal(t, "3", vals["LAYERCORE_NUM_THREADS"])
	assert.Len(t, vals, len(AsMap()))
}
