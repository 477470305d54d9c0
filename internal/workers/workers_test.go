package workers

import (
	"runtime"
	"testing"
)

func TestCount(t *testing.T) {
	t.Setenv(OverrideEnv, "")
	procs := runtime.GOMAXPROCS(0)

	tests := []struct {
		name       string
		multiplier float64
		limit      int
		want       int
	}{
		{"cpu no limit", 1.0, 0, procs},
		{"io no limit", 2.0, 0, procs * 2},
		{"limit caps", 2.0, 1, 1},
		{"tiny multiplier floors at one", 0.0001, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Count(tt.multiplier, tt.limit); got != tt.want {
				t.Errorf("Count(%v, %d) = %d, want %d", tt.multiplier, tt.limit, got, tt.want)
			}
		})
	}
}

func TestCountWithEnvOverride(t *testing.T) {
	tests := []struct {
		name     string
		override string
		limit    int
		want     int
	}{
		{"override used", "3", 0, 3},
		{"override capped by limit", "12", 4, 4},
		{"invalid override ignored", "many", 1, 1},
		{"zero override ignored", "0", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(OverrideEnv, tt.override)
			if got := Count(1.0, tt.limit); got != tt.want {
				t.Errorf("Count with %s=%q = %d, want %d", OverrideEnv, tt.override, got, tt.want)
			}
		})
	}
}

func TestWorkloadHelpers(t *testing.T) {
	t.Setenv(OverrideEnv, "")

	cpu, mixed, io := ForCPU(0), ForMixed(0), ForIO(0)
	if cpu > mixed || mixed > io {
		t.Errorf("expected ForCPU <= ForMixed <= ForIO, got %d, %d, %d", cpu, mixed, io)
	}
	if ForIO(2) > 2 {
		t.Errorf("ForIO(2) = %d, exceeds limit", ForIO(2))
	}
}
