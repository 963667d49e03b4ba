package inject

import (
	"github.com/atotto/clipboard"
	"github.com/go-vgo/robotgo"
)

// robotgoSynthesizer sends key events through robotgo.
type robotgoSynthesizer struct{}

// NewSystemSynthesizer is the default Factory.
func NewSystemSynthesizer() (Synthesizer, error) {
	return robotgoSynthesizer{}, nil
}

func (robotgoSynthesizer) KeyDown(key string) error {
	return robotgo.KeyDown(key)
}

func (robotgoSynthesizer) KeyTap(key string) error {
	return robotgo.KeyTap(key)
}

func (robotgoSynthesizer) KeyUp(key string) error {
	return robotgo.KeyUp(key)
}

// systemClipboard writes through atotto/clipboard.
type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
