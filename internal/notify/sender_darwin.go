//go:build darwin

package notify

import (
	"errors"
	"fmt"
	"os/exec"
)

// darwinSender implements Sender for macOS using osascript and afplay
type darwinSender struct {
	osascript bool
	afplay    bool
}

// NewSender creates the macOS notification sender.
func NewSender() Sender {
	return &darwinSender{
		osascript: toolAvailable("osascript"),
		afplay:    toolAvailable("afplay"),
	}
}

// Notify displays a desktop notification using osascript. Unlike sound
// playback, a missing tool here is an error: the notification is the
// primary channel and silently dropping it would defeat the hook.
func (s *darwinSender) Notify(title, body string) error {
	if !s.osascript {
		return errors.New("osascript not found in PATH")
	}

	script := fmt.Sprintf("display notification %q with title %q", body, title)
	if err := exec.Command("osascript", "-e", script).Run(); err != nil {
		return fmt.Errorf("osascript: %w", err)
	}
	return nil
}

// PlaySound plays the resource at path using afplay. A missing player,
// missing resource, or non-zero exit all surface as errors; the caller
// decides whether they matter.
func (s *darwinSender) PlaySound(path string) error {
	if !s.afplay {
		return errors.New("afplay not found in PATH")
	}

	if err := exec.Command("afplay", path).Run(); err != nil {
		return fmt.Errorf("afplay %s: %w", path, err)
	}
	return nil
}
