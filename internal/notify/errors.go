package notify

import "errors"

// Sentinel errors classifying dispatch failures. Wrapped errors carry the
// underlying cause; match with errors.Is.
var (
	// ErrInputParse reports stdin that is not valid JSON or does not satisfy
	// the hook payload schema. Dispatch never runs after this error.
	ErrInputParse = errors.New("invalid hook input")

	// ErrInputRead reports a failure reading the payload from stdin.
	ErrInputRead = errors.New("failed to read hook input")

	// ErrNotification reports that the desktop notification could not be
	// displayed. This is the only dispatch-time error that reaches the
	// caller; sound playback failures are diagnostic-only.
	ErrNotification = errors.New("failed to send notification")
)
