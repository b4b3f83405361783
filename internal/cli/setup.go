package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/quietfold/claude-notify/internal/settings"
	"github.com/quietfold/claude-notify/internal/sound"
)

// customChoice is the menu entry that switches to free-form path entry.
const customChoice = "Custom file path..."

// previewTimeout bounds the setup sound preview. The dispatch path stays
// unbounded, but a wedged player must not hang the wizard.
const previewTimeout = 5 * time.Second

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure Claude Code to run the notification hook",
	Long: `Configure Claude Code notifications interactively.

Lists the sounds available in ` + sound.SystemSoundsDir + ` (or the built-in
set when the directory is absent), lets you pick one or supply a custom
sound file, then merges the hook command into ~/.claude/settings.json.
Everything else in the settings file is left untouched.`,
	Example: `  claude-notify setup`,
	Args:    cobra.NoArgs,
	RunE:    runSetup,
}

func runSetup(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) && cmd.InOrStdin() == os.Stdin {
		return fmt.Errorf("setup is interactive and requires a terminal")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	reader := bufio.NewReader(cmd.InOrStdin())

	fmt.Fprintf(out, "Setting up Claude Code notifications\n\n")

	options := append(sound.AvailableNames(sound.SystemSoundsDir), customChoice)
	selected, err := promptSelect(out, reader, "Select a notification sound:", options)
	if err != nil {
		return err
	}

	if selected == customChoice {
		selected, err = promptSoundPath(out, reader)
		if err != nil {
			return err
		}
	}

	if cfg.Preview {
		previewSound(out, sound.FromName(selected).ResourcePath())
	}

	settingsPath, err := settings.Path()
	if err != nil {
		return err
	}
	command := settings.HookCommand(selected)
	if err := settings.Write(settingsPath, command); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n✓ Claude Code settings updated\n")
	fmt.Fprintf(out, "  Settings file: %s\n", settingsPath)
	fmt.Fprintf(out, "  Sound: %s\n", selected)
	fmt.Fprintf(out, "  Hook command: %s\n", command)
	return nil
}

// promptSelect displays a numbered menu and reads a selection, re-prompting
// until the input is a valid option number.
func promptSelect(out io.Writer, reader *bufio.Reader, question string, options []string) (string, error) {
	fmt.Fprintln(out, question)
	for i, option := range options {
		fmt.Fprintf(out, "  %2d) %s\n", i+1, option)
	}

	for {
		fmt.Fprintf(out, "Choice [1-%d]: ", len(options))
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("failed to read selection: %w", err)
		}
		line = strings.TrimSpace(line)

		if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(options) {
			return options[n-1], nil
		}
		fmt.Fprintf(out, "Invalid selection %q\n", line)
	}
}

// promptSoundPath reads a custom sound path, re-prompting until the file
// exists. Bare names are checked against the system sounds directory.
func promptSoundPath(out io.Writer, reader *bufio.Reader) (string, error) {
	fmt.Fprintf(out, "Supported formats: .wav, .aiff, .mp3, .m4a\n")
	for {
		fmt.Fprintf(out, "Enter the path to your sound file: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("failed to read sound path: %w", err)
		}
		line = strings.TrimSpace(line)

		if err := sound.Validate(line, sound.SystemSoundsDir); err != nil {
			fmt.Fprintf(out, "%v\n", err)
			continue
		}
		return line, nil
	}
}

// previewSound plays the selected sound so the user hears what they chose.
// Preview failures are advisory: the selection is kept either way.
func previewSound(out io.Writer, path string) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Writer = os.Stderr
	s.Suffix = " Playing preview..."
	s.Start()

	ctx, cancel := context.WithTimeout(context.Background(), previewTimeout)
	defer cancel()

	err := exec.CommandContext(ctx, "afplay", path).Run()
	s.Stop()

	if err != nil {
		fmt.Fprintf(out, "warning: could not preview sound %q: %v\n", path, err)
	}
}
