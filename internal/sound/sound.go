// Package sound models notification sound identifiers and resolves them to
// playable resource paths.
//
// A sound is either one of the named macOS system sounds or a custom
// name/path supplied by the user. Construction never fails: unrecognized
// names become custom sounds, and whether the underlying resource actually
// exists is only discovered at playback time (or up front by Validate
// during interactive setup).
package sound

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	// SystemSoundsDir is the macOS directory holding short audio cue files.
	SystemSoundsDir = "/System/Library/Sounds"

	// SystemSoundExt is the file extension of macOS system sounds.
	SystemSoundExt = ".aiff"

	// DefaultName is the sound used when no sound is specified.
	DefaultName = "Glass"
)

// knownNames is the fixed set of named system sounds, sorted.
var knownNames = []string{
	"Basso",
	"Blow",
	"Bottle",
	"Frog",
	"Funk",
	"Glass",
	"Hero",
	"Morse",
	"Ping",
	"Pop",
	"Purr",
	"Sosumi",
	"Submarine",
	"Tink",
}

// Sound identifies a notification sound. The zero value is not meaningful;
// use FromName or Default.
type Sound struct {
	name   string
	custom bool
}

// Default returns the default system sound.
func Default() Sound {
	return Sound{name: DefaultName}
}

// FromName maps a name to a Sound. Matching against the known system sounds
// is case-sensitive and exact; any other string, including the empty string,
// becomes a custom sound.
func FromName(name string) Sound {
	for _, known := range knownNames {
		if name == known {
			return Sound{name: known}
		}
	}
	return Sound{name: name, custom: true}
}

// Name returns the canonical name for known sounds, or the wrapped string
// for custom sounds.
func (s Sound) Name() string {
	return s.name
}

// IsCustom reports whether the sound is outside the known system set.
func (s Sound) IsCustom() bool {
	return s.custom
}

// ResourcePath resolves the sound to the path handed to the player. A name
// containing a path separator is treated as an explicit file path and
// returned verbatim; anything else is looked up in the system sounds
// directory. The derivation is pure: no existence check is performed.
func (s Sound) ResourcePath() string {
	if strings.Contains(s.name, "/") {
		return s.name
	}
	return SystemSoundsDir + "/" + s.name + SystemSoundExt
}

// KnownNames returns the fixed set of named system sounds, sorted.
func KnownNames() []string {
	names := make([]string, len(knownNames))
	copy(names, knownNames)
	return names
}

// AvailableNames enumerates the system sounds present in dir by scanning
// for files with the system sound extension, sorted lexicographically.
// When the directory is missing or holds no sounds, the fixed known-name
// list is returned instead.
func AvailableNames(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return KnownNames()
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, SystemSoundExt) {
			names = append(names, strings.TrimSuffix(name, SystemSoundExt))
		}
	}
	sort.Strings(names)

	if len(names) == 0 {
		return KnownNames()
	}
	return names
}

// Validate checks that name refers to a playable resource. Path-like names
// are checked directly on disk; bare names are checked against the sounds
// directory dir.
func Validate(name, dir string) error {
	var path string
	if strings.Contains(name, "/") {
		path = name
	} else {
		path = filepath.Join(dir, name+SystemSoundExt)
	}

	if _, err := os.Stat(path); err != nil {
		if strings.Contains(name, "/") {
			return fmt.Errorf("sound file does not exist: %s", path)
		}
		return fmt.Errorf("system sound does not exist: %s", path)
	}
	return nil
}
