package tray

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/openwhisper/shell/internal/events"
)

type fakeItem struct {
	checked bool
}

func (f *fakeItem) Check()   { f.checked = true }
func (f *fakeItem) Uncheck() { f.checked = false }

type recordingSink struct {
	emitted [][2]string
}

func (s *recordingSink) Emit(name, payload string) {
	s.emitted = append(s.emitted, [2]string{name, payload})
}

type fakeWindow struct {
	calls    []string
	showErr  error
	focusErr error
}

func (w *fakeWindow) Show() error {
	w.calls = append(w.calls, "show")
	return w.showErr
}

func (w *fakeWindow) Unminimize() error {
	w.calls = append(w.calls, "unminimize")
	return nil
}

func (w *fakeWindow) Focus() error {
	w.calls = append(w.calls, "focus")
	return w.focusErr
}

// newTestController builds a controller with fake menu items standing
// in for the systray handles, default language checked.
func newTestController(t *testing.T, sink events.Sink, win Window) *Controller {
	t.Helper()
	c, err := New(Options{
		Sink:   sink,
		Window: win,
		Logger: zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, lang := range Catalog() {
		c.items[lang.Code] = &fakeItem{checked: lang.Code == c.defaultLang}
	}
	return c
}

func (c *Controller) checkedCodes() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var codes []string
	for code, item := range c.items {
		if item.(*fakeItem).checked {
			codes = append(codes, code)
		}
	}
	return codes
}

func TestCatalogHasThirteenLanguages(t *testing.T) {
	if n := len(Catalog()); n != 13 {
		t.Fatalf("catalog has %d languages, want 13", n)
	}
	if Catalog()[0].Code != DefaultLanguage {
		t.Errorf("catalog should lead with the default language, got %q", Catalog()[0].Code)
	}
}

func TestNewRequiresSink(t *testing.T) {
	if _, err := New(Options{Logger: zerolog.Nop()}); err == nil {
		t.Fatal("expected error for missing sink")
	}
}

func TestNewRejectsUnknownDefaultLanguage(t *testing.T) {
	_, err := New(Options{
		Sink:            &recordingSink{},
		DefaultLanguage: "xx",
		Logger:          zerolog.Nop(),
	})
	if err == nil {
		t.Fatal("expected error for unknown default language")
	}
}

func TestNewDefaultsToCatalogDefault(t *testing.T) {
	c, err := New(Options{Sink: &recordingSink{}, Logger: zerolog.Nop()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.defaultLang != DefaultLanguage {
		t.Errorf("default language = %q, want %q", c.defaultLang, DefaultLanguage)
	}
}

func TestSelectLanguageChecksExactlyOne(t *testing.T) {
	sink := &recordingSink{}
	c := newTestController(t, sink, nil)

	c.Dispatch("de")

	checked := c.checkedCodes()
	if len(checked) != 1 || checked[0] != "de" {
		t.Errorf("checked = %v, want exactly [de]", checked)
	}

	if len(sink.emitted) != 1 {
		t.Fatalf("emitted %d notifications, want 1", len(sink.emitted))
	}
	if sink.emitted[0] != [2]string{events.TrayLanguageChanged, "de"} {
		t.Errorf("emitted %v", sink.emitted[0])
	}
}

func TestSelectLanguageTwiceKeepsInvariant(t *testing.T) {
	sink := &recordingSink{}
	c := newTestController(t, sink, nil)

	c.Dispatch("ja")
	c.Dispatch("ar")

	checked := c.checkedCodes()
	if len(checked) != 1 || checked[0] != "ar" {
		t.Errorf("checked = %v, want exactly [ar]", checked)
	}
}

func TestInboundQuotedPayloadSyncsWithoutEcho(t *testing.T) {
	sink := &recordingSink{}
	c := newTestController(t, sink, nil)

	c.onLanguageChanged(`"de"`)

	checked := c.checkedCodes()
	if len(checked) != 1 || checked[0] != "de" {
		t.Errorf("checked = %v, want exactly [de]", checked)
	}
	if len(sink.emitted) != 0 {
		t.Errorf("inbound sync must not re-emit, got %v", sink.emitted)
	}
}

func TestInboundUnquotedPayload(t *testing.T) {
	sink := &recordingSink{}
	c := newTestController(t, sink, nil)

	c.onLanguageChanged("ko")

	checked := c.checkedCodes()
	if len(checked) != 1 || checked[0] != "ko" {
		t.Errorf("checked = %v, want exactly [ko]", checked)
	}
}

func TestInboundUnknownCodeIgnored(t *testing.T) {
	sink := &recordingSink{}
	c := newTestController(t, sink, nil)

	c.Dispatch("es")
	c.onLanguageChanged(`"xx"`)

	checked := c.checkedCodes()
	if len(checked) != 1 || checked[0] != "es" {
		t.Errorf("checked = %v, want [es] untouched", checked)
	}
}

func TestDispatchIgnoresUnknownIds(t *testing.T) {
	sink := &recordingSink{}
	c := newTestController(t, sink, nil)

	c.Dispatch("settings")

	if len(sink.emitted) != 0 {
		t.Errorf("unknown id must not emit, got %v", sink.emitted)
	}
	checked := c.checkedCodes()
	if len(checked) != 1 || checked[0] != DefaultLanguage {
		t.Errorf("checked = %v, want default untouched", checked)
	}
}

func TestOpenShowsWindow(t *testing.T) {
	win := &fakeWindow{}
	c := newTestController(t, &recordingSink{}, win)

	c.Dispatch("open")

	want := []string{"show", "unminimize", "focus"}
	if len(win.calls) != len(want) {
		t.Fatalf("window calls = %v, want %v", win.calls, want)
	}
	for i := range want {
		if win.calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, win.calls[i], want[i])
		}
	}
}

func TestOpenWithoutWindowIsNoop(t *testing.T) {
	c := newTestController(t, &recordingSink{}, nil)

	// Must not panic.
	c.Dispatch("open")
}

func TestWindowFailuresAreSwallowed(t *testing.T) {
	win := &fakeWindow{showErr: errors.New("window gone"), focusErr: errors.New("no focus")}
	c := newTestController(t, &recordingSink{}, win)

	c.Dispatch("open")

	// All three steps are still attempted.
	if len(win.calls) != 3 {
		t.Errorf("window calls = %v, want all three attempted", win.calls)
	}
}

func TestQuitExitsZero(t *testing.T) {
	var exitCode = -1
	orig := exitFn
	exitFn = func(code int) { exitCode = code }
	defer func() { exitFn = orig }()

	c := newTestController(t, &recordingSink{}, nil)
	c.Dispatch("quit")

	if exitCode != 0 {
		t.Errorf("exit code = %d, want 0", exitCode)
	}
}

func TestIconClickShowsWindowOnLeftRelease(t *testing.T) {
	win := &fakeWindow{}
	c := newTestController(t, &recordingSink{}, win)

	c.HandleIconClick(ButtonLeft, StatePressed)
	if len(win.calls) != 0 {
		t.Errorf("press must not show window, calls = %v", win.calls)
	}

	c.HandleIconClick(ButtonRight, StateReleased)
	if len(win.calls) != 0 {
		t.Errorf("right click must not show window, calls = %v", win.calls)
	}

	c.HandleIconClick(ButtonLeft, StateReleased)
	if len(win.calls) != 3 {
		t.Errorf("left release should show window, calls = %v", win.calls)
	}
}
