// Package settings merges the notification hook command into the Claude
// Code settings document at ~/.claude/settings.json.
//
// The merge contract is narrow on purpose: everything already in the
// document is preserved byte-for-byte at the key level, and exactly one
// key, hooks.Notification, is replaced with the generated hook entry.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ProgramName is the binary name embedded in the generated hook command.
const ProgramName = "claude-notify"

const (
	hooksKey          = "hooks"
	notificationEvent = "Notification"
)

// Path returns the Claude Code settings file location, $HOME/.claude/settings.json.
// A missing home directory is a fatal setup error.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".claude", "settings.json"), nil
}

// HookCommand builds the hook command line for the selected sound. Path-like
// sounds are quoted so the shell keeps them as one argument.
func HookCommand(soundName string) string {
	if strings.Contains(soundName, "/") {
		return fmt.Sprintf("%s --sound %q", ProgramName, soundName)
	}
	return fmt.Sprintf("%s --sound %s", ProgramName, soundName)
}

// Write merges the hook command into the settings document at path and
// writes it back pretty-printed, creating parent directories as needed.
// Existing top-level keys and sibling hook events are preserved; a missing
// or unparsable file starts from an empty document.
func Write(path, command string) error {
	doc := map[string]interface{}{}
	if data, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(data, &doc); err != nil {
			doc = map[string]interface{}{}
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read settings: %w", err)
	}

	hooks, _ := doc[hooksKey].(map[string]interface{})
	if hooks == nil {
		hooks = map[string]interface{}{}
	}
	hooks[notificationEvent] = []interface{}{
		map[string]interface{}{
			"hooks": []interface{}{
				map[string]interface{}{
					"type":    "command",
					"command": command,
				},
			},
		},
	}
	doc[hooksKey] = hooks

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
