package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newToggleCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <filter>...",
		Short: "Flip the polarity of keyword filters",
		Example: `  kwfilterctl toggle +:keyword:mit
  kwfilterctl --extensions pdf toggle -- -:keyword:pdf`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := opts.service()
			out := make([]filterOutput, 0, len(args))
			for _, arg := range args {
				ff := svc.Parse(arg).Filters
				if len(ff) != 1 || ff[0].String() != arg {
					return fmt.Errorf("%q is not a single keyword filter", arg)
				}
				out = append(out, toFilterOutput(svc.Toggle(ff[0])))
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
}
