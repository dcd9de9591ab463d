package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/kwfilter/internal/domain/license"
	"github.com/kailas-cloud/kwfilter/internal/domain/search/result"
)

// resultInput mirrors the HTTP API result body.
type resultInput struct {
	ID           string  `json:"id"`
	DisplayName  string  `json:"display_name"`
	Source       *string `json:"source,omitempty"`
	Filename     *string `json:"filename,omitempty"`
	DetailsURL   string  `json:"details_url"`
	ThumbnailURL string  `json:"thumbnail_url"`
	License      string  `json:"license,omitempty"`
}

type countOutput struct {
	filterOutput
	Count int `json:"count"`
}

type applyOutput struct {
	Terms    string        `json:"terms"`
	Filters  []countOutput `json:"filters"`
	Accepted []string      `json:"accepted"`
	Rejected int           `json:"rejected"`
}

func newApplyCommand(opts *options) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "apply <query>",
		Short: "Filter a JSON array of search results with the filters in a query",
		Example: `  kwfilterctl apply --file results.json "+:keyword:athens"
  cat results.json | kwfilterctl apply -- "-:keyword:pdf"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			candidates, err := readResults(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}

			svc := opts.service()
			q := svc.Parse(args[0])
			out := svc.Apply(cmd.Context(), q.Filters, candidates)

			resp := applyOutput{
				Terms:    q.Terms,
				Filters:  make([]countOutput, len(out.Counts)),
				Accepted: make([]string, len(out.Accepted)),
				Rejected: out.Rejected,
			}
			for i, c := range out.Counts {
				resp.Filters[i] = countOutput{filterOutput: toFilterOutput(c.Filter), Count: c.Count}
			}
			for i := range out.Accepted {
				resp.Accepted[i] = out.Accepted[i].ID()
			}
			return writeJSON(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "JSON file with results (- reads stdin)")
	return cmd
}

func readResults(stdin io.Reader, file string) ([]result.Result, error) {
	r := stdin
	if file != "-" {
		f, err := os.Open(filepath.Clean(file))
		if err != nil {
			return nil, fmt.Errorf("open results: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	var in []resultInput
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("decode results: %w", err)
	}

	out := make([]result.Result, len(in))
	for i, d := range in {
		var opts []result.Option
		if d.Source != nil {
			opts = append(opts, result.WithSource(*d.Source))
		}
		if d.Filename != nil {
			opts = append(opts, result.WithFilename(*d.Filename))
		}
		opts = append(opts, result.WithLicense(license.Lookup(d.License)))
		out[i] = result.New(d.ID, d.DisplayName, d.DetailsURL, d.ThumbnailURL, opts...)
	}
	return out, nil
}
