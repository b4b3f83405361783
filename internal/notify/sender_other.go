//go:build !darwin

package notify

import (
	"fmt"
	"runtime"
)

// unsupportedSender is returned on platforms without the macOS notification
// and sound facilities this tool targets. Every operation fails so the
// invoking tool sees a non-zero exit instead of a silently dropped alert.
type unsupportedSender struct{}

// NewSender creates the notification sender for the current platform.
func NewSender() Sender {
	return &unsupportedSender{}
}

func (s *unsupportedSender) Notify(_, _ string) error {
	return fmt.Errorf("desktop notifications are not supported on %s", runtime.GOOS)
}

func (s *unsupportedSender) PlaySound(_ string) error {
	return fmt.Errorf("sound playback is not supported on %s", runtime.GOOS)
}
