// Package inject delivers text to the focused application by writing
// the clipboard and synthesizing a paste keystroke.
package inject

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/openwhisper/shell/internal/config"
)

// Injection error classes. Callers match with errors.Is; the wrapped
// message carries the library-level detail.
var (
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
	ErrBackendInit          = errors.New("synthesis backend init failed")
	ErrSynthesis            = errors.New("keystroke synthesis failed")
)

// Synthesizer sends synthetic key events to the OS.
type Synthesizer interface {
	KeyDown(key string) error
	KeyTap(key string) error
	KeyUp(key string) error
}

// Factory builds the synthesis backend. Called lazily, at most once
// per successful initialization; a failed call is retried on the next
// injection.
type Factory func() (Synthesizer, error)

// ClipboardWriter places text on the system clipboard.
type ClipboardWriter interface {
	WriteAll(text string) error
}

type Options struct {
	Synthesizer Factory
	Clipboard   ClipboardWriter
	Config      config.InjectConfig
	Logger      zerolog.Logger
}

// Injector serializes all injections behind one mutex, including the
// settle delays. Concurrent callers block until the previous injection
// completes; there is no queueing or cancellation.
type Injector struct {
	mu       sync.Mutex
	synth    Synthesizer
	newSynth Factory

	clip            ClipboardWriter
	clipboardSettle time.Duration
	pasteSettle     time.Duration
	log             zerolog.Logger
}

// New creates an injector. Zero Options fall back to the system
// clipboard and the robotgo backend.
func New(opts Options) *Injector {
	if opts.Clipboard == nil {
		opts.Clipboard = systemClipboard{}
	}
	if opts.Synthesizer == nil {
		opts.Synthesizer = NewSystemSynthesizer
	}
	return &Injector{
		newSynth:        opts.Synthesizer,
		clip:            opts.Clipboard,
		clipboardSettle: time.Duration(opts.Config.ClipboardSettleMS) * time.Millisecond,
		pasteSettle:     time.Duration(opts.Config.PasteSettleMS) * time.Millisecond,
		log:             opts.Logger,
	}
}

// Inject places text on the clipboard and pastes it into the focused
// application. The text stays on the clipboard after the call. Empty
// text is legal and pastes nothing additional.
func (i *Injector) Inject(text string) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if err := i.clip.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrClipboardUnavailable, err)
	}

	// Let the clipboard write propagate before the paste reads it.
	// Best effort, not a guarantee.
	time.Sleep(i.clipboardSettle)

	synth, err := i.backendLocked()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBackendInit, err)
	}

	// Three ordered steps; the first failure aborts the rest. Keys
	// already sent are not rolled back.
	if err := synth.KeyDown(pasteModifier); err != nil {
		return fmt.Errorf("%w: %s press: %v", ErrSynthesis, pasteModifier, err)
	}
	if err := synth.KeyTap(pasteKey); err != nil {
		return fmt.Errorf("%w: %s click: %v", ErrSynthesis, pasteKey, err)
	}
	if err := synth.KeyUp(pasteModifier); err != nil {
		return fmt.Errorf("%w: %s release: %v", ErrSynthesis, pasteModifier, err)
	}

	// Throttle rapid repeats and let the target app finish the paste.
	time.Sleep(i.pasteSettle)

	i.log.Debug().Int("len", len(text)).Msg("Injected text")
	return nil
}

// backendLocked returns the synthesis backend, constructing it on
// first use. On failure the backend stays nil so the next injection
// retries. Caller holds i.mu.
func (i *Injector) backendLocked() (Synthesizer, error) {
	if i.synth != nil {
		return i.synth, nil
	}
	synth, err := i.newSynth()
	if err != nil {
		return nil, err
	}
	i.synth = synth
	return i.synth, nil
}

const pasteKey = "v"
