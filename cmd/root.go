// Package cmd wires the command-line entrypoint.
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/danpilch/inotify-instances/pkg/collectors/inotify"
	"github.com/danpilch/inotify-instances/pkg/output"
	"github.com/danpilch/inotify-instances/pkg/proc"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "inotify-instances",
	Short: "Report inotify instances held open per process",
	Long: `inotify-instances scans the process table once and prints, in the
Prometheus text exposition format, one gauge line for every process
currently holding at least one inotify instance. It is meant to be invoked
repeatedly by an external collector; it serves nothing and persists nothing.

Under unprivileged invocation only the caller's own processes are
inspectable; other users' processes are silently absent from the output.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logrus.New()
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.WarnLevel)
		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		}

		table, err := proc.NewTable()
		if err != nil {
			return err
		}

		facts, err := inotify.New(table, logger).Scan()
		if err != nil {
			return err
		}

		return output.NewFormatter(cmd.OutOrStdout()).Render(inotify.WithInstances(facts))
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"log per-process skip diagnostics to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
