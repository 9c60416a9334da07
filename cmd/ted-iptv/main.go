// Ted-iptv is the Ted IPTV player's source management utility.
//
// It provides an interactive, remote-navigable TUI for onboarding and
// managing IPTV sources (Xtream Codes accounts and M3U playlists), plus
// direct commands for scripting the same operations.
//
// Usage:
//
//	ted-iptv [command] [flags]
//
// Running without arguments launches the interactive TUI.
// See 'ted-iptv --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/GhouI/Ted-IPTV-Player-sub003/internal/config"
	"github.com/GhouI/Ted-IPTV-Player-sub003/internal/logging"
	"github.com/GhouI/Ted-IPTV-Player-sub003/internal/tui"
	"github.com/GhouI/Ted-IPTV-Player-sub003/internal/version"
)

func main() {
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ted-iptv",
	Short: "Ted IPTV Player source manager",
	Long: `Manage the IPTV sources of the Ted IPTV player.

Provides an interactive TUI for adding, selecting, and removing sources,
and direct commands for the same operations.

If no command is specified, the interactive TUI will launch automatically.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the interactive interface requires a terminal; use a subcommand instead (see 'ted-iptv --help')")
	}

	registry, err := config.LoadRegistry()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	return tui.Run(registry)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ted-iptv %s (commit: %s)\n", version.Version, version.Commit)
		fmt.Printf("  %s\n", tui.GitHubFullURL)
	},
}
