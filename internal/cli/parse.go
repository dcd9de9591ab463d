package cli

import (
	"github.com/spf13/cobra"

	"github.com/kailas-cloud/kwfilter/internal/domain/search/keyword"
)

type filterOutput struct {
	Inclusive bool   `json:"inclusive"`
	Keyword   string `json:"keyword"`
	Feature   string `json:"feature,omitempty"`
	Form      string `json:"form"`
}

type parseOutput struct {
	Terms   string         `json:"terms"`
	Filters []filterOutput `json:"filters"`
}

func newParseCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <query>",
		Short: "Split a query into keyword filters and remaining terms",
		Example: `  kwfilterctl parse "timon +:keyword:mit -:keyword:pdf"
  kwfilterctl parse --extensions pdf,txt "+:keyword:pdf +:keyword:txt"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := opts.service().Parse(args[0])
			return writeJSON(cmd.OutOrStdout(), parseOutput{Terms: q.Terms, Filters: toFilterOutputs(q.Filters)})
		},
	}
}

func toFilterOutput(f keyword.Filter) filterOutput {
	return filterOutput{
		Inclusive: f.Inclusive(),
		Keyword:   f.Keyword(),
		Feature:   f.Feature().String(),
		Form:      f.String(),
	}
}

func toFilterOutputs(ff []keyword.Filter) []filterOutput {
	out := make([]filterOutput, len(ff))
	for i, f := range ff {
		out[i] = toFilterOutput(f)
	}
	return out
}
