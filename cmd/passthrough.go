package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List running FrankenPHP server processes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return passthrough([]string{"--list"})
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop all running FrankenPHP server processes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return passthrough([]string{"--stop"})
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics for running FrankenPHP server processes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return passthrough([]string{"--stats"})
	},
}

// passthrough runs one launcher operation and relays its captured output,
// propagating a non-zero exit status as an error.
func passthrough(args []string) error {
	launch, _, err := setup()
	if err != nil {
		return err
	}

	res, err := launch.Run(getContext(), args)
	if err != nil {
		return err
	}
	for _, line := range res.Lines {
		fmt.Fprintln(os.Stdout, line)
	}
	if res.ExitCode != 0 {
		return fmt.Errorf("phpup exited with status %d", res.ExitCode)
	}
	return nil
}
