package app

import (
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

type mockInjector struct {
	injected []string
	err      error
}

func (m *mockInjector) Inject(text string) error {
	if m.err != nil {
		return m.err
	}
	m.injected = append(m.injected, text)
	return nil
}

type mockDragger struct {
	called bool
	err    error
}

func (m *mockDragger) StartDrag() error {
	m.called = true
	return m.err
}

type mockHotkeys struct {
	closed bool
}

func (m *mockHotkeys) Close() error {
	m.closed = true
	return nil
}

func TestInjectTextDelegates(t *testing.T) {
	inj := &mockInjector{}
	a := New(Config{Injector: inj, Logger: zerolog.Nop()})

	if err := a.InjectText("bonjour"); err != nil {
		t.Fatalf("InjectText: %v", err)
	}
	if len(inj.injected) != 1 || inj.injected[0] != "bonjour" {
		t.Errorf("injected = %v", inj.injected)
	}
}

func TestInjectTextWrapsError(t *testing.T) {
	inj := &mockInjector{err: errors.New("clipboard unavailable: locked")}
	a := New(Config{Injector: inj, Logger: zerolog.Nop()})

	err := a.InjectText("text")
	if err == nil {
		t.Fatal("expected error")
	}
	// Flattened at the boundary: the original error is not unwrappable.
	if errors.Unwrap(err) != nil {
		t.Error("command boundary should flatten errors, not wrap them")
	}
	if !strings.Contains(err.Error(), "clipboard unavailable") {
		t.Errorf("message should carry the cause, got %q", err)
	}
}

func TestStartDragPassthrough(t *testing.T) {
	a := New(Config{Injector: &mockInjector{}, Logger: zerolog.Nop()})

	drag := &mockDragger{}
	if err := a.StartDrag(drag); err != nil {
		t.Fatalf("StartDrag: %v", err)
	}
	if !drag.called {
		t.Error("drag was not started")
	}

	failing := &mockDragger{err: errors.New("drag rejected")}
	if err := a.StartDrag(failing); err == nil {
		t.Error("expected propagated error")
	}

	if err := a.StartDrag(nil); err == nil {
		t.Error("expected error for missing window")
	}
}

func TestShutdownClosesHotkeys(t *testing.T) {
	hk := &mockHotkeys{}
	a := New(Config{Injector: &mockInjector{}, Hotkeys: hk, Logger: zerolog.Nop()})

	if err := a.Shutdown(); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if !hk.closed {
		t.Error("hotkeys not closed")
	}

	// Shutdown without a registrar is a no-op.
	bare := New(Config{Injector: &mockInjector{}, Logger: zerolog.Nop()})
	if err := bare.Shutdown(); err != nil {
		t.Fatalf("Shutdown without hotkeys: %v", err)
	}
}
