package dump

import (
	"fmt"
	"log/slog"

	"github.com/osargv/osargv/pkg/argv"
	"github.com/spf13/cobra"
)

func Example() string {
	return `  # Print the vector this process was started with
  osargv dump

  # Same vector, drained from the back
  osargv dump --reverse`
}

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:                   "dump",
		Short:                 "Print the argument vector, one argument per line",
		Example:               Example(),
		Args:                  cobra.NoArgs,
		RunE:                  action,
		DisableFlagsInUseLine: true,
	}
	flags := cmd.Flags()
	flags.Bool("reverse", false, "Drain the vector from the back")
	flags.Bool("raw", false, "Print borrowed views without copying")
	return cmd
}

func action(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	reverse, err := flags.GetBool("reverse")
	if err != nil {
		return err
	}
	raw, err := flags.GetBool("raw")
	if err != nil {
		return err
	}
	it := argv.Args()
	slog.Debug("obtained an argument vector snapshot", "len", it.Len())
	out := cmd.OutOrStdout()
	if raw {
		for _, v := range it.Debug() {
			fmt.Fprintf(out, "%s\n", v)
		}
		return nil
	}
	seq := it.All()
	if reverse {
		seq = it.Backward()
	}
	for v := range seq {
		fmt.Fprintf(out, "%s\n", v)
	}
	return nil
}
