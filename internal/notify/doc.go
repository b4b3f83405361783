// Package notify implements the notification dispatch core of claude-notify.
//
// Each process invocation handles exactly one hook payload: the payload is
// parsed from stdin into a Request, then a Dispatcher sends it over two
// independent user-facing channels, a desktop notification and an audio cue.
//
// # Failure isolation
//
// The two channels deliberately do not share an error path. The desktop
// notification is the primary channel: its failure is the outcome of the
// dispatch. Sound playback is best effort: a missing file, a missing player
// binary, or a non-zero player exit is written to a diagnostic stream and
// never escalated, so a broken sound can never suppress the message the
// user needs to see.
//
// # Platform support
//
//   - macOS: osascript for the visual notification, afplay for sound
//   - other platforms: an unsupported-platform sender that fails dispatch
package notify
