// Package tray owns the system tray icon and its language-selection
// menu.
package tray

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/getlantern/systray"
	"github.com/rs/zerolog"

	"github.com/openwhisper/shell/internal/events"
)

// Window is the main application window, owned by the UI layer. The
// shell holds at most one and tolerates having none.
type Window interface {
	Show() error
	Unminimize() error
	Focus() error
}

// Subscriber registers interest in UI-originated notifications.
type Subscriber interface {
	Subscribe(name string, h events.Handler)
}

// checkable is the slice of systray.MenuItem the language registry
// needs; tests substitute fakes.
type checkable interface {
	Check()
	Uncheck()
}

// exitFn terminates the process; swapped out in tests.
var exitFn = func(code int) {
	systray.Quit()
	os.Exit(code)
}

// MouseButton and ButtonState describe a click on the tray icon
// itself, reported by whatever host integration can observe it.
type MouseButton int

const (
	ButtonLeft MouseButton = iota
	ButtonRight
)

type ButtonState int

const (
	StatePressed ButtonState = iota
	StateReleased
)

type Options struct {
	Sink            events.Sink
	Subscriber      Subscriber // may be nil
	Window          Window     // may be nil
	DefaultLanguage string     // "" selects DefaultLanguage
	Logger          zerolog.Logger
}

// Controller builds the tray menu and keeps the checked language entry
// in sync with both menu clicks and UI-originated notifications.
type Controller struct {
	sink        events.Sink
	subs        Subscriber
	win         Window
	log         zerolog.Logger
	defaultLang string

	mu    sync.Mutex
	items map[string]checkable // language code -> menu handle
}

// New validates the construction inputs. A failure here is fatal to
// startup, matching the registrar's policy.
func New(opts Options) (*Controller, error) {
	if opts.Sink == nil {
		return nil, fmt.Errorf("tray: notification sink is required")
	}
	lang := opts.DefaultLanguage
	if lang == "" {
		lang = DefaultLanguage
	}
	if !inCatalog(lang) {
		return nil, fmt.Errorf("tray: default language %q not in catalog", lang)
	}
	return &Controller{
		sink:        opts.Sink,
		subs:        opts.Subscriber,
		win:         opts.Window,
		log:         opts.Logger,
		defaultLang: lang,
		items:       make(map[string]checkable),
	}, nil
}

// Run starts the tray. Blocking; must run on the main thread.
func (c *Controller) Run(onReady func()) {
	systray.Run(func() {
		c.onReady()
		if onReady != nil {
			onReady()
		}
	}, c.onExit)
}

// Quit closes the tray without exiting the process.
func (c *Controller) Quit() {
	systray.Quit()
}

func (c *Controller) onReady() {
	systray.SetTitle("🎤")
	systray.SetTooltip("OpenWhisper")

	mOpen := systray.AddMenuItem("Open window", "Show the main window")

	mLang := systray.AddMenuItem("Language", "Dictation language")
	c.mu.Lock()
	for _, lang := range Catalog() {
		item := mLang.AddSubMenuItemCheckbox(lang.Label, "", lang.Code == c.defaultLang)
		c.items[lang.Code] = item
		go c.watchLanguage(lang.Code, item.ClickedCh)
	}
	c.mu.Unlock()

	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Quit", "Exit application")

	go c.handleEvents(mOpen, mQuit)

	if c.subs != nil {
		c.subs.Subscribe(events.LanguageChanged, c.onLanguageChanged)
	}

	c.log.Info().Str("language", c.defaultLang).Msg("System tray created")
}

func (c *Controller) handleEvents(mOpen, mQuit *systray.MenuItem) {
	for {
		select {
		case <-mOpen.ClickedCh:
			c.Dispatch("open")
		case <-mQuit.ClickedCh:
			c.Dispatch("quit")
		}
	}
}

func (c *Controller) watchLanguage(code string, clicked <-chan struct{}) {
	for range clicked {
		c.Dispatch(code)
	}
}

// Dispatch routes a menu item id to its action. Ids outside the menu
// (neither open, quit, nor a catalog code) are ignored.
func (c *Controller) Dispatch(id string) {
	switch id {
	case "open":
		c.showWindow()
	case "quit":
		c.log.Info().Msg("Quit selected from tray")
		exitFn(0)
	default:
		if inCatalog(id) {
			c.selectLanguage(id)
		}
	}
}

// HandleIconClick reacts to a click on the tray icon itself: a
// left-button release shows the main window, independent of the menu.
func (c *Controller) HandleIconClick(button MouseButton, state ButtonState) {
	if button == ButtonLeft && state == StateReleased {
		c.showWindow()
	}
}

// selectLanguage handles a click on a language entry: check it,
// uncheck the rest, notify the UI layer.
func (c *Controller) selectLanguage(code string) {
	c.setChecked(code)
	c.log.Info().Str("language", code).Msg("Language changed from tray")
	c.sink.Emit(events.TrayLanguageChanged, code)
}

// onLanguageChanged syncs the checkmarks with a language selection made
// in the UI layer. Does not re-emit, to avoid an echo loop.
func (c *Controller) onLanguageChanged(payload string) {
	// The payload arrives JSON-serialized, so the code may be wrapped
	// in quote characters. Trimming them here reproduces the wire
	// format as-is; flagged for review rather than fixed upstream.
	code := strings.Trim(payload, `"`)
	if !inCatalog(code) {
		c.log.Debug().Str("code", code).Msg("Ignoring unknown language from UI")
		return
	}
	c.log.Info().Str("language", code).Msg("Language changed from UI")
	c.setChecked(code)
}

// setChecked enforces mutual exclusivity: exactly the given entry ends
// up checked.
func (c *Controller) setChecked(code string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for itemCode, item := range c.items {
		if itemCode == code {
			item.Check()
		} else {
			item.Uncheck()
		}
	}
}

// showWindow unminimizes and focuses the main window. No-op without a
// window; failures are cosmetic and only logged.
func (c *Controller) showWindow() {
	if c.win == nil {
		c.log.Debug().Msg("No main window to show")
		return
	}
	if err := c.win.Show(); err != nil {
		c.log.Warn().Err(err).Msg("Failed to show window")
	}
	if err := c.win.Unminimize(); err != nil {
		c.log.Warn().Err(err).Msg("Failed to unminimize window")
	}
	if err := c.win.Focus(); err != nil {
		c.log.Warn().Err(err).Msg("Failed to focus window")
	}
}

func (c *Controller) onExit() {
	// Cleanup
}
