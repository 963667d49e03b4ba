// Package shortcut binds the fixed global key combinations to
// application notifications.
package shortcut

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.design/x/hotkey"

	"github.com/openwhisper/shell/internal/events"
)

// Binding is an immutable pair of key combination and notification
// name. The table is static; bindings are never added or removed at
// runtime.
type Binding struct {
	Chord string // human-readable, for logs and errors
	Mods  []hotkey.Modifier
	Key   hotkey.Key
	Event string
}

// Bindings returns the dispatch table.
func Bindings() []Binding {
	return []Binding{
		{
			Chord: "ctrl+shift+d",
			Mods:  []hotkey.Modifier{hotkey.ModCtrl, hotkey.ModShift},
			Key:   hotkey.KeyD,
			Event: events.ToggleDictation,
		},
		{
			Chord: "ctrl+shift+t",
			Mods:  []hotkey.Modifier{hotkey.ModCtrl, hotkey.ModShift},
			Key:   hotkey.KeyT,
			Event: events.ToggleTranscription,
		},
	}
}

// hotKey abstracts *hotkey.Hotkey so tests can substitute fakes
// through newHotkey.
type hotKey interface {
	Register() error
	Unregister() error
	Keydown() <-chan hotkey.Event
	Keyup() <-chan hotkey.Event
}

var newHotkey = func(mods []hotkey.Modifier, key hotkey.Key) hotKey {
	return hotkey.New(mods, key)
}

// Registrar owns the global hotkey registrations and their listener
// goroutines.
type Registrar struct {
	sink events.Sink
	log  zerolog.Logger
	hks  []hotKey
	stop chan struct{}
}

func New(sink events.Sink, log zerolog.Logger) *Registrar {
	return &Registrar{
		sink: sink,
		log:  log,
	}
}

// Register binds every combination in the table. Any failure (for
// example the chord is already claimed by another process) unwinds the
// bindings made so far and returns an error; the caller is expected to
// abort startup.
func (r *Registrar) Register() error {
	r.stop = make(chan struct{})

	for _, b := range Bindings() {
		hk := newHotkey(b.Mods, b.Key)
		if err := hk.Register(); err != nil {
			r.Close()
			return fmt.Errorf("register global shortcut %s: %w", b.Chord, err)
		}
		r.hks = append(r.hks, hk)
		r.log.Info().Str("chord", b.Chord).Str("event", b.Event).Msg("Registered global shortcut")

		go r.listen(hk.Keydown(), hk.Keyup(), b.Event, r.stop)
	}

	return nil
}

// listen emits the notification on the key-down transition only. A
// held key reporting repeated downs emits once until a key-up resets
// the cycle; releases never emit.
func (r *Registrar) listen(keydown, keyup <-chan hotkey.Event, name string, stop <-chan struct{}) {
	down := false
	for {
		select {
		case <-stop:
			return
		case _, ok := <-keydown:
			if !ok {
				return
			}
			if down {
				continue // key repeat
			}
			down = true
			r.sink.Emit(name, "")
		case _, ok := <-keyup:
			if !ok {
				return
			}
			down = false
		}
	}
}

// Close stops the listeners and releases the OS registrations.
func (r *Registrar) Close() error {
	if r.stop != nil {
		close(r.stop)
		r.stop = nil
	}
	r.unregister()
	return nil
}

func (r *Registrar) unregister() {
	for _, hk := range r.hks {
		if err := hk.Unregister(); err != nil {
			r.log.Warn().Err(err).Msg("Failed to unregister hotkey")
		}
	}
	r.hks = nil
}
