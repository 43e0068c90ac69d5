// Package cmd wires the CLI surface: the root command runs the TUI, and a
// few pass-through subcommands expose launcher operations for
// non-interactive use.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/phpup/phpup-tui/internal/launcher"
	"github.com/phpup/phpup-tui/internal/logging"
	"github.com/phpup/phpup-tui/internal/project"
	phpupsignal "github.com/phpup/phpup-tui/internal/signal"
	"github.com/phpup/phpup-tui/internal/tui"
)

var (
	// rootCtx holds the signal-cancellable context for the application.
	rootCtx    context.Context
	rootCancel context.CancelFunc

	flagNoMouse  bool
	flagLauncher string
)

var rootCmd = &cobra.Command{
	Use:   "phpup-tui",
	Short: "Interactive front-end for the phpup FrankenPHP dev-server launcher",
	Long: `phpup-tui is a terminal UI for configuring and launching FrankenPHP
development servers through the external phpup launcher, including listing
and terminating running server processes.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		rootCtx, rootCancel = phpupsignal.WithCancel(context.Background())

		if err := logging.Init("."); err != nil {
			fmt.Fprintf(os.Stderr, "warning: debug log unavailable: %v\n", err)
		}
		logging.SetDefault(logging.With("session", uuid.NewString()))
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Close()
		if rootCancel != nil {
			rootCancel()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		launch, settings, err := setup()
		if err != nil {
			return err
		}

		workDir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to resolve working directory: %w", err)
		}

		mouse := settings.MouseEnabled() && !flagNoMouse
		return tui.Run(getContext(), tui.Options{
			Launcher: launch,
			WorkDir:  workDir,
			Mouse:    mouse,
		})
	},
}

// Execute runs the CLI. The launcher binary missing is the one fatal
// startup error; it is reported on stderr with a non-zero exit.
func Execute() error {
	return rootCmd.Execute()
}

// setup loads the optional .phpup/tui.toml settings and resolves the phpup
// binary, with the --launcher flag taking precedence over the settings file.
func setup() (*launcher.Launcher, *project.Settings, error) {
	settings, err := project.LoadSettings(".")
	if err != nil {
		return nil, nil, err
	}

	path := flagLauncher
	if path == "" {
		path = settings.Launcher
	}
	launch, err := launcher.Find(path)
	if err != nil {
		return nil, nil, err
	}
	logging.Debug("launcher resolved", "path", launch.Path)
	return launch, settings, nil
}

// getContext returns the root context cancelled on SIGINT/SIGTERM.
func getContext() context.Context {
	if rootCtx == nil {
		return context.Background()
	}
	return rootCtx
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLauncher, "launcher", "", "path to the phpup binary")
	rootCmd.Flags().BoolVar(&flagNoMouse, "no-mouse", false, "disable mouse support in the TUI")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statsCmd)
}
