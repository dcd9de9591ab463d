// Package cli implements kwfilterctl, an offline front-end to the keyword
// filter pipeline.
package cli

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/kwfilter/internal/domain/search/keyword"
	filteruc "github.com/kailas-cloud/kwfilter/internal/usecase/filter"
	"github.com/kailas-cloud/kwfilter/internal/version"
)

// options are shared by every subcommand.
type options struct {
	sources    []string
	extensions []string
}

// service builds a filter service without a catalog; only Parse, Apply
// and Toggle are available offline.
func (o *options) service() *filteruc.Service {
	var annotator filteruc.Annotator
	if len(o.sources) > 0 || len(o.extensions) > 0 {
		annotator = keyword.NewDetector(o.sources, o.extensions)
	}
	return filteruc.New(nil, annotator)
}

// NewRootCommand returns the kwfilterctl command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "kwfilterctl",
		Short: "Parse keyword filters and apply them to search results",
		Long: `kwfilterctl works with queries carrying inline keyword filters:
  +:keyword:X   keep results mentioning X
  -:keyword:X   drop results mentioning X

Filters sharing a feature are alternatives; pass --sources and
--extensions to tag keywords with features.`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringSliceVar(&opts.sources, "sources", nil, "keywords that name a search source")
	root.PersistentFlags().StringSliceVar(&opts.extensions, "extensions", nil, "keywords that name a file extension")

	root.AddCommand(
		newParseCommand(opts),
		newApplyCommand(opts),
		newToggleCommand(opts),
	)
	return root
}

// Execute runs kwfilterctl with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
