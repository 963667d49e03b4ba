// Package notify sends best-effort desktop notifications.
package notify

import "github.com/gen2brain/beeep"

const appName = "OpenWhisper"

type Notifier struct {
	enabled bool
}

func New(enabled bool) *Notifier {
	return &Notifier{enabled: enabled}
}

// SetEnabled toggles notifications at runtime.
func (n *Notifier) SetEnabled(enabled bool) {
	n.enabled = enabled
}

// Error shows an error notification.
func (n *Notifier) Error(msg string) {
	n.notify("Error", msg)
}

// StartupFailure tells the user why the shell refused to start. Shown
// before the process aborts, since a tray app has no console.
func (n *Notifier) StartupFailure(msg string) {
	n.notify("Startup failed", msg)
}

func (n *Notifier) notify(title, message string) {
	if !n.enabled {
		return
	}
	// Notification failures are not critical, ignore them.
	_ = beeep.Notify(appName+": "+title, message, "")
}
