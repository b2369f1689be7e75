// Package envconfig loads runtime settings from LAYERCORE_* environment variables.
package envconfig

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
)

var (
	// Set via LAYERCORE_DEBUG in the environment
	Debug bool
	// Set via LAYERCORE_NUM_THREADS in the environment
	NumThreads int
	// Set via LAYERCORE_MIN_GRAIN in the environment
	MinGrain int
	// Set via LAYERCORE_NO_PARALLEL in the environment
	NoParallel bool
)

const defaultMinGrain = 16384

type EnvVar struct {
	Name        string
	Value       any
	Description string
}

func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"LAYERCORE_DEBUG":       {"LAYERCORE_DEBUG", Debug, "Show additional debug information (e.g. LAYERCORE_DEBUG=1)"},
		"LAYERCORE_NUM_THREADS": {"LAYERCORE_NUM_THREADS", NumThreads, "Worker goroutines used by forward passes (default: number of CPUs)"},
		"LAYERCORE_MIN_GRAIN":   {"LAYERCORE_MIN_GRAIN", MinGrain, fmt.Sprintf("Minimum elements handled per worker (default %d)", defaultMinGrain)},
		"LAYERCORE_NO_PARALLEL": {"LAYERCORE_NO_PARALLEL", NoParallel, "Run forward passes on the calling goroutine only"},
	}
}

func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}

// Clean quotes and spaces from the value
func clean(key string) string {
	return strings.Trim(os.Getenv(key), "\"' ")
}

func init() {
	LoadConfig()
}

func LoadConfig() {
	Debug = false
	if debug := clean("LAYERCORE_DEBUG"); debug != "" {
		d, err := strconv.ParseBool(debug)
		if err == nil {
			Debug = d
		} else {
			Debug = true
		}
	}

	NumThreads = runtime.NumCPU()
	if nt := clean("LAYERCORE_NUM_THREADS"); nt != "" {
		val, err := strconv.Atoi(nt)
		if err != nil || val <= 0 {
			slog.Error("invalid setting must be greater than zero", "LAYERCORE_NUM_THREADS", nt, "error", err)
		} else {
			NumThreads = val
		}
	}

	MinGrain = defaultMinGrain
	if mg := clean("LAYERCORE_MIN_GRAIN"); mg != "" {
		val, err := strconv.Atoi(mg)
		if err != nil || val <= 0 {
			slog.Error("invalid setting must be greater than zero", "LAYERCORE_MIN_GRAIN", mg, "error", err)
		} else {
			MinGrain = val
		}
	}

	NoParallel = false
	if np := clean("LAYERCORE_NO_PARALLEL"); np != "" {
		d, err := strconv.ParseBool(np)
		if err == nil {
			NoParallel = d
		} else {
			NoParallel = true
		}
	}
}
