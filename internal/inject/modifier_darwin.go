//go:build darwin

package inject

// Cmd+V is the paste chord on macOS.
const pasteModifier = "cmd"
