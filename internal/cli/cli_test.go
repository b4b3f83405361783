package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quietfold/claude-notify/internal/notify"
)

func execRoot(t *testing.T, stdin string, args ...string) error {
	t.Helper()
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestRoot_InvalidInputFailsBeforeDispatch(t *testing.T) {
	tests := map[string]string{
		"empty stdin":     "",
		"invalid json":    "{ invalid json }",
		"missing message": `{"session_id":"s1","transcript_path":"t"}`,
	}

	for name, stdin := range tests {
		t.Run(name, func(t *testing.T) {
			err := execRoot(t, stdin)

			if err == nil {
				t.Fatal("expected error")
			}
			// The parse boundary rejects the payload before any
			// notification or sound attempt, so the error must be a
			// parse error, never a dispatch error.
			if !errors.Is(err, notify.ErrInputParse) {
				t.Errorf("error %v does not wrap ErrInputParse", err)
			}
		})
	}
}

func TestRoot_RejectsPositionalArgs(t *testing.T) {
	err := execRoot(t, "{}", "unexpected-arg")
	if err == nil {
		t.Fatal("expected error for positional argument")
	}
}

func TestSetup_RequiresTerminal(t *testing.T) {
	rootCmd.SetIn(os.Stdin)
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"setup"})

	// Test processes never have a TTY on stdin
	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("expected setup to refuse a non-terminal stdin")
	}
	if !strings.Contains(err.Error(), "terminal") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPromptSelect(t *testing.T) {
	t.Parallel()
	options := []string{"Basso", "Glass", "Tink", customChoice}

	tests := map[string]struct {
		input   string
		want    string
		wantErr bool
	}{
		"first option":            {input: "1\n", want: "Basso"},
		"last option":             {input: "4\n", want: customChoice},
		"reprompts after invalid": {input: "0\nnope\n2\n", want: "Glass"},
		"eof without selection":   {input: "99\n", wantErr: true},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			reader := bufio.NewReader(strings.NewReader(tt.input))

			got, err := promptSelect(&out, reader, "Select a notification sound:", options)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("promptSelect returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("selected %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestPromptSelect_ShowsAllOptions(t *testing.T) {
	t.Parallel()
	options := []string{"Basso", "Glass"}
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("1\n"))

	_, err := promptSelect(&out, reader, "Select a notification sound:", options)
	if err != nil {
		t.Fatal(err)
	}

	for _, option := range options {
		if !strings.Contains(out.String(), option) {
			t.Errorf("menu missing option %q", option)
		}
	}
}

func TestPromptSoundPath(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	existing := filepath.Join(dir, "chime.wav")
	if err := os.WriteFile(existing, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Run("accepts existing file", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer
		reader := bufio.NewReader(strings.NewReader(existing + "\n"))

		got, err := promptSoundPath(&out, reader)
		if err != nil {
			t.Fatalf("promptSoundPath returned error: %v", err)
		}
		if got != existing {
			t.Errorf("got %q, expected %q", got, existing)
		}
	})

	t.Run("reprompts on missing file", func(t *testing.T) {
		t.Parallel()
		missing := filepath.Join(dir, "nope.wav")
		var out bytes.Buffer
		reader := bufio.NewReader(strings.NewReader(missing + "\n" + existing + "\n"))

		got, err := promptSoundPath(&out, reader)
		if err != nil {
			t.Fatalf("promptSoundPath returned error: %v", err)
		}
		if got != existing {
			t.Errorf("got %q, expected %q", got, existing)
		}
		if !strings.Contains(out.String(), "does not exist") {
			t.Errorf("expected a validation message, got %q", out.String())
		}
	})
}
