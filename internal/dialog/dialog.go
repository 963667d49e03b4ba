// Package dialog shows native dialogs for situations the tray cannot
// express.
package dialog

import "github.com/ncruces/zenity"

// FatalStartup blocks on a native error dialog explaining why startup
// is aborting. Errors from the dialog itself are ignored; the process
// is about to exit anyway.
func FatalStartup(msg string) {
	_ = zenity.Error(msg, zenity.Title("OpenWhisper"), zenity.ErrorIcon)
}
