// Package cli provides the cobra commands for claude-notify: the default
// hook invocation that reads a payload from stdin and dispatches a desktop
// notification with a sound cue, and the interactive setup command that
// persists the hook into Claude Code's settings.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/quietfold/claude-notify/internal/config"
	"github.com/quietfold/claude-notify/internal/notify"
	"github.com/quietfold/claude-notify/internal/sound"
)

// version is injected at build time via -ldflags
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "claude-notify",
	Short: "Claude Code hook for desktop notifications",
	Long: `claude-notify displays a desktop notification and plays a sound when
Claude Code wants your attention.

Claude Code invokes it as a Notification hook, writing a JSON payload to
stdin:

  { "session_id": "...", "transcript_path": "...", "message": "...", "title": "..." }

The notification and the sound are independent channels: a missing or
broken sound never suppresses the notification. The exit code reflects
the notification alone.`,
	Example: `  # Run as Claude Code invokes it
  echo '{"session_id":"s1","transcript_path":"/tmp/t.md","message":"Done"}' | claude-notify

  # Pick a different system sound, or a file of your own
  claude-notify --sound Submarine
  claude-notify --sound "/Users/me/sounds/chime.wav"

  # Configure Claude Code to call this hook
  claude-notify setup`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	Version:      version,
	RunE:         runNotify,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default ~/.config/claude-notify/config.json)")
	rootCmd.Flags().String("sound", "", "Sound to play: a system sound name or a file path (default from config, Glass)")

	rootCmd.AddCommand(setupCmd)
}

func runNotify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	name, _ := cmd.Flags().GetString("sound")
	if name == "" {
		name = cfg.Sound
	}
	snd := sound.FromName(name)

	req, err := notify.ParseRequest(cmd.InOrStdin())
	if err != nil {
		return err
	}

	dispatcher := notify.NewDispatcher(notify.NewSender(), cmd.ErrOrStderr())
	return dispatcher.Dispatch(req, snd)
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}
