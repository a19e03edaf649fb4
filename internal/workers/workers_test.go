package workers

import (
	"runtime"
	"testing"
)

func TestCount(t *testing.T) {
	t.Setenv("GALLERY_WORKERS", "")

	available := runtime.GOMAXPROCS(0)

	tests := []struct {
		name       string
		multiplier float64
		limit      int
		want       int
	}{
		{"cpu bound no limit", 1.0, 0, available},
		{"io bound no limit", 2.0, 0, available * 2},
		{"limit respected", 2.0, 1, 1},
		{"zero multiplier floors at one", 0.0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Count(tt.multiplier, tt.limit); got != tt.want {
				t.Errorf("Count(%v, %d) = %d, want %d", tt.multiplier, tt.limit, got, tt.want)
			}
		})
	}
}

func TestCountEnvOverride(t *testing.T) {
	t.Setenv("GALLERY_WORKERS", "3")

	if got := Count(1.0, 0); got != 3 {
		t.Errorf("Count with GALLERY_WORKERS=3 = %d, want 3", got)
	}
	if got := Count(1.0, 2); got != 2 {
		t.Errorf("Count with GALLERY_WORKERS=3 and limit 2 = %d, want 2", got)
	}
}

func TestCountInvalidEnvOverride(t *testing.T) {
	t.Setenv("GALLERY_WORKERS", "not-a-number")

	want := runtime.GOMAXPROCS(0)
	if got := Count(1.0, 0); got != want {
		t.Errorf("Count with invalid override = %d, want %d", got, want)
	}
}

func TestForCPUAndForIO(t *testing.T) {
	t.Setenv("GALLERY_WORKERS", "")

	available := runtime.GOMAXPROCS(0)
	if got := ForCPU(0); got != available {
		t.Errorf("ForCPU(0) = %d, want %d", got, available)
	}
	if got := ForIO(0); got != available*2 {
		t.Errorf("ForIO(0) = %d, want %d", got, available*2)
	}
}
