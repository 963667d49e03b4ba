// Package app exposes the commands the UI layer invokes on the native
// shell.
package app

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Injector delivers text into the focused application.
type Injector interface {
	Inject(text string) error
}

// Dragger is a window handle that can begin an OS-level drag.
type Dragger interface {
	StartDrag() error
}

// Hotkeys is the registrar lifecycle the app owns at shutdown.
type Hotkeys interface {
	Close() error
}

type Config struct {
	Injector Injector
	Hotkeys  Hotkeys // optional
	Logger   zerolog.Logger
}

type App struct {
	inj     Injector
	hotkeys Hotkeys
	log     zerolog.Logger
}

func New(cfg Config) *App {
	return &App{
		inj:     cfg.Injector,
		hotkeys: cfg.Hotkeys,
		log:     cfg.Logger,
	}
}

// InjectText is the inject_text command. Errors crossing this boundary
// are flattened into a human-readable message; no raw OS error codes
// leak through.
func (a *App) InjectText(text string) error {
	a.log.Debug().Int("len", len(text)).Msg("inject_text invoked")
	if err := a.inj.Inject(text); err != nil {
		a.log.Error().Err(err).Msg("Injection failed")
		return fmt.Errorf("failed to inject text: %v", err)
	}
	return nil
}

// StartDrag is the start_drag command: begin an OS window drag on the
// given handle. Pure pass-through.
func (a *App) StartDrag(w Dragger) error {
	if w == nil {
		return fmt.Errorf("failed to start drag: no window")
	}
	if err := w.StartDrag(); err != nil {
		return fmt.Errorf("failed to start drag: %v", err)
	}
	return nil
}

// Shutdown releases the global hotkey registrations.
func (a *App) Shutdown() error {
	if a.hotkeys == nil {
		return nil
	}
	return a.hotkeys.Close()
}
