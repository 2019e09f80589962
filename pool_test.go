package mdsnap

import (
	"runtime"
	"testing"
)

func TestNewRendererPoolSize(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"normal size", 4, 4},
		{"single", 1, 1},
		{"zero clamped", 0, 1},
		{"negative clamped", -3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewRendererPool(tt.n)
			defer p.Close() //nolint:errcheck

			if got := p.Size(); got != tt.want {
				t.Errorf("Size() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRendererPoolAcquireRelease(t *testing.T) {
	p := NewRendererPool(2)
	defer p.Close() //nolint:errcheck

	r1 := p.Acquire()
	if r1 == nil {
		t.Fatal("Acquire() returned nil")
	}
	r2 := p.Acquire()
	if r2 == nil {
		t.Fatal("second Acquire() returned nil")
	}
	if r1 == r2 {
		t.Error("pool handed out the same renderer twice")
	}

	p.Release(r1)
	r3 := p.Acquire()
	if r3 != r1 {
		t.Error("released renderer not reused")
	}
}

func TestRendererPoolCloseIdempotent(t *testing.T) {
	p := NewRendererPool(2)

	if err := p.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestRendererPoolReleaseAfterClose(t *testing.T) {
	p := NewRendererPool(1)
	r := p.Acquire()

	if err := p.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	// Must not panic on the closed channel.
	p.Release(r)
}

func TestRendererPoolForwardsOptions(t *testing.T) {
	p := NewRendererPool(1, WithScaleFactor(2.0))
	defer p.Close() //nolint:errcheck

	r := p.Acquire()
	if r.cfg.scale != 2.0 {
		t.Errorf("scale = %v, want 2.0", r.cfg.scale)
	}
}

func TestResolvePoolSize(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{"explicit workers", 3, 3},
		{"explicit over max", 12, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolvePoolSize(tt.workers); got != tt.want {
				t.Errorf("ResolvePoolSize(%d) = %d, want %d", tt.workers, got, tt.want)
			}
		})
	}
}

func TestResolvePoolSizeAuto(t *testing.T) {
	got := ResolvePoolSize(0)

	if got < MinPoolSize || got > MaxPoolSize {
		t.Errorf("ResolvePoolSize(0) = %d, want within [%d, %d]", got, MinPoolSize, MaxPoolSize)
	}

	want := runtime.GOMAXPROCS(0) / 2
	if want < MinPoolSize {
		want = MinPoolSize
	}
	if want > MaxPoolSize {
		want = MaxPoolSize
	}
	if got != want {
		t.Errorf("ResolvePoolSize(0) = %d, want %d for GOMAXPROCS=%d", got, want, runtime.GOMAXPROCS(0))
	}
}
