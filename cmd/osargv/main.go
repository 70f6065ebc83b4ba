package main

import (
	"log/slog"
	"os"
	"runtime"

	"github.com/osargv/osargv/cmd/osargv/commands/dump"
	"github.com/osargv/osargv/cmd/osargv/version"
	"github.com/osargv/osargv/pkg/argv"
	"github.com/osargv/osargv/pkg/envutil"
	"github.com/spf13/cobra"
)

var logLevel = new(slog.LevelVar)

func main() {
	logHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	slog.SetDefault(slog.New(logHandler))

	// The Go runtime does not call the startup hook itself, so bridge
	// the vector it materialized into the captured backend. On backends
	// that query the system this is a no-op.
	cv := argv.NewCVector(os.Args)
	argv.Init(cv.Argc(), cv.Argv())
	defer runtime.KeepAlive(cv)
	defer argv.Cleanup()

	if err := newRootCommand().Execute(); err != nil {
		slog.Error("exiting with an error", "error", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "osargv",
		Short:         "Inspect the process argument vector",
		Example:       dump.Example(),
		Version:       version.GetVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := cmd.PersistentFlags()
	flags.Bool("debug", envutil.Bool("DEBUG", false), "debug mode [$DEBUG]")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			logLevel.Set(slog.LevelDebug)
		}
		return nil
	}

	cmd.AddCommand(
		dump.New(),
	)
	return cmd
}
