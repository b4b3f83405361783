package notify

import (
	"fmt"
	"io"
	"os"

	"github.com/quietfold/claude-notify/internal/sound"
)

// DefaultTitle is used when the hook payload carries no title.
const DefaultTitle = "Claude Code"

// Dispatcher sends one notification request over two independent channels:
// a desktop notification and an audio cue. It holds no state across
// dispatches; each Dispatch is a function of its inputs and the sender.
type Dispatcher struct {
	sender Sender
	diag   io.Writer
}

// NewDispatcher creates a dispatcher over the given sender. Sound playback
// warnings are written to diag; a nil diag defaults to stderr.
func NewDispatcher(sender Sender, diag io.Writer) *Dispatcher {
	if diag == nil {
		diag = os.Stderr
	}
	return &Dispatcher{sender: sender, diag: diag}
}

// Dispatch plays the sound and displays the notification concurrently and
// returns the outcome of the notification display alone.
//
// Sound playback runs in its own goroutine so it cannot delay the
// notification; its failure, including a panic inside the player, is
// written to the diagnostic stream and absorbed. The goroutine is always
// joined before returning so no playback outlives the process. Neither
// channel is ordered relative to the other.
func (d *Dispatcher) Dispatch(req *Request, snd sound.Sound) error {
	title := DefaultTitle
	if req.Title != nil {
		title = *req.Title
	}

	path := snd.ResourcePath()
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				fmt.Fprintf(d.diag, "warning: sound playback panicked: %v\n", r)
			}
		}()
		if err := d.sender.PlaySound(path); err != nil {
			fmt.Fprintf(d.diag, "warning: failed to play sound %q: %v\n", path, err)
		}
	}()

	notifyErr := d.sender.Notify(title, req.Message)
	<-done

	if notifyErr != nil {
		return fmt.Errorf("%w: %w", ErrNotification, notifyErr)
	}
	return nil
}
