package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/quietfold/claude-notify/internal/sound"
)

// TestSetup_EndToEnd drives the wizard with scripted input and checks the
// merged settings document. HOME points at a temp dir so the real Claude
// settings are never touched; preview is disabled through the config file.
func TestSetup_EndToEnd(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	configPath := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(configPath, []byte(`{"preview":false}`), 0644); err != nil {
		t.Fatal(err)
	}

	// Mirror the wizard's own menu: the live sounds directory when present,
	// the 14 known names otherwise, plus the custom entry.
	names := sound.AvailableNames(sound.SystemSoundsDir)
	options := len(names) + 1
	glassIndex := 0
	for i, name := range names {
		if name == "Glass" {
			glassIndex = i + 1
		}
	}
	if glassIndex == 0 {
		t.Skipf("Glass not present in %s", sound.SystemSoundsDir)
	}

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(strconv.Itoa(glassIndex) + "\n"))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"setup", "--config", configPath})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("setup failed: %v\noutput:\n%s", err, out.String())
	}

	if !strings.Contains(out.String(), fmt.Sprintf("%d)", options)) {
		t.Errorf("menu should list %d options, output:\n%s", options, out.String())
	}

	settingsPath := filepath.Join(home, ".claude", "settings.json")
	data, err := os.ReadFile(settingsPath)
	if err != nil {
		t.Fatalf("settings not written: %v", err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("settings not valid JSON: %v", err)
	}

	hooks, ok := doc["hooks"].(map[string]interface{})
	if !ok {
		t.Fatalf("hooks key missing: %s", data)
	}
	entries, ok := hooks["Notification"].([]interface{})
	if !ok || len(entries) != 1 {
		t.Fatalf("hooks.Notification malformed: %s", data)
	}

	if !strings.Contains(string(data), "claude-notify --sound Glass") {
		t.Errorf("hook command missing from settings: %s", data)
	}
}
