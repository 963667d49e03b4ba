// Package events carries notifications between the native shell and
// the UI layer.
package events

import "sync"

// Names of the notifications crossing the shell/UI boundary.
const (
	ToggleDictation     = "shortcut:toggle-dictation"
	ToggleTranscription = "shortcut:toggle-transcription"
	TrayLanguageChanged = "tray:language-changed"
	LanguageChanged     = "language-changed" // inbound, from the UI
)

// Sink is the fire-and-forget emission capability the shell components
// depend on. The concrete UI transport sits behind it.
type Sink interface {
	Emit(name, payload string)
}

// Handler receives a notification payload. Payloads are strings; events
// without a payload deliver "".
type Handler func(payload string)

// Bus is an in-process notification fan-out. Emit dispatches
// synchronously, in subscription order, to the handlers registered for
// the name at the time of the call. There is no unsubscribe; bindings
// live for the process lifetime.
type Bus struct {
	mu   sync.RWMutex
	subs map[string][]Handler
}

func NewBus() *Bus {
	return &Bus{
		subs: make(map[string][]Handler),
	}
}

// Subscribe registers h for notifications named name.
func (b *Bus) Subscribe(name string, h Handler) {
	if h == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[name] = append(b.subs[name], h)
}

// Emit delivers payload to every handler subscribed to name. Unknown
// names are dropped silently.
func (b *Bus) Emit(name, payload string) {
	b.mu.RLock()
	handlers := b.subs[name]
	b.mu.RUnlock()

	for _, h := range handlers {
		h(payload)
	}
}
