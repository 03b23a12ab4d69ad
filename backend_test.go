package slint

import (
	"errors"
	"sort"
	"testing"
)

// stubSurface is a do-nothing Surface for registry tests.
type stubSurface struct{}

func (stubSurface) MakeCurrent() error   { return nil }
func (stubSurface) DetachCurrent() error { return nil }
func (stubSurface) SwapBuffers() error   { return nil }
func (stubSurface) Size() (int, int)     { return 640, 480 }

// stubBackend records which registration produced it.
type stubBackend struct {
	name string
}

func (b *stubBackend) Name() string { return b.name }

func (b *stubBackend) NewPrimitivesBuilder() (PrimitivesBuilder, error) { return nil, nil }

func (b *stubBackend) FinishPrimitives(PrimitivesBuilder) error { return nil }

func (b *stubBackend) NewFrame(int, int, Color) (Frame, error) { return nil, nil }

func (b *stubBackend) PresentFrame(Frame) error { return nil }

func (b *stubBackend) Release() {}

func stubFactory(name string) BackendFactory {
	return func(Surface) (Backend, error) {
		return &stubBackend{name: name}, nil
	}
}

// TestNewBackendNoBackends must run before any registration in this
// package's tests; it relies on the registry starting empty.
func TestNewBackendNoBackends(t *testing.T) {
	if _, err := NewBackend("anything", stubSurface{}); !errors.Is(err, ErrNoBackends) {
		t.Fatalf("NewBackend with empty registry = %v, want ErrNoBackends", err)
	}
}

func TestRegisterBackendNilFactoryPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("RegisterBackend(nil factory) did not panic")
		}
	}()
	RegisterBackend("nil-factory", 0, nil)
}

func TestNewBackendByName(t *testing.T) {
	RegisterBackend("test-a", 10, stubFactory("test-a"))
	RegisterBackend("test-b", 20, stubFactory("test-b"))

	b, err := NewBackend("test-a", stubSurface{})
	if err != nil {
		t.Fatalf("NewBackend(test-a) error: %v", err)
	}
	if b.Name() != "test-a" {
		t.Errorf("NewBackend(test-a).Name() = %q", b.Name())
	}
}

func TestNewBackendUnknownFallsBack(t *testing.T) {
	RegisterBackend("test-low", 1, stubFactory("test-low"))
	RegisterBackend("test-high", 1000, stubFactory("test-high"))

	// An unknown name is not an error: the highest-priority backend is
	// used instead.
	b, err := NewBackend("does-not-exist", stubSurface{})
	if err != nil {
		t.Fatalf("NewBackend(unknown) error: %v", err)
	}
	if b.Name() != "test-high" {
		t.Errorf("fallback backend = %q, want test-high", b.Name())
	}
}

func TestRegisteredBackendsSorted(t *testing.T) {
	RegisterBackend("test-z", 0, stubFactory("test-z"))
	RegisterBackend("test-m", 0, stubFactory("test-m"))

	names := RegisteredBackends()
	if !sort.StringsAreSorted(names) {
		t.Errorf("RegisteredBackends() = %v, want sorted", names)
	}
	found := 0
	for _, n := range names {
		if n == "test-z" || n == "test-m" {
			found++
		}
	}
	if found != 2 {
		t.Errorf("RegisteredBackends() = %v, missing registered names", names)
	}
}

func TestNewBackendFactoryError(t *testing.T) {
	wantErr := errors.New("boom")
	RegisterBackend("test-failing", 0, func(Surface) (Backend, error) {
		return nil, wantErr
	})
	if _, err := NewBackend("test-failing", stubSurface{}); !errors.Is(err, wantErr) {
		t.Errorf("NewBackend(test-failing) = %v, want wrapped %v", err, wantErr)
	}
}
