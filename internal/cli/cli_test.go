package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

const resultsJSON = `[
  {"id": "timon", "display_name": "Timon of Athens", "source": "MIT",
   "filename": "timon_of_athens.txt", "details_url": "http://shakespeare.mit.edu/timon/timon.4.1.html",
   "thumbnail_url": "http://example.com/timon.png", "license": "pdm"},
  {"id": "hamlet", "display_name": "Hamlet", "source": "Gutenberg",
   "filename": "hamlet.pdf", "details_url": "http://example.com/hamlet",
   "thumbnail_url": "http://example.com/hamlet.png"}
]`

func TestParse(t *testing.T) {
	out, err := run(t, "", "--sources", "mit", "parse", "timon +:keyword:MIT -:keyword:pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got parseOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	if got.Terms != "timon" {
		t.Errorf("terms = %q, want timon", got.Terms)
	}
	if len(got.Filters) != 2 {
		t.Fatalf("got %d filters, want 2", len(got.Filters))
	}
	if got.Filters[0].Feature != "search_source" || got.Filters[0].Form != "+:keyword:MIT" {
		t.Errorf("filter 0 = %+v", got.Filters[0])
	}
	if got.Filters[1].Inclusive || got.Filters[1].Feature != "" {
		t.Errorf("filter 1 = %+v", got.Filters[1])
	}
}

func TestParse_RequiresQuery(t *testing.T) {
	if _, err := run(t, "", "parse"); err == nil {
		t.Fatal("expected argument error")
	}
}

func TestApply_Stdin(t *testing.T) {
	out, err := run(t, resultsJSON, "apply", "+:keyword:athens")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got applyOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	if len(got.Accepted) != 1 || got.Accepted[0] != "timon" || got.Rejected != 1 {
		t.Errorf("accepted = %v, rejected = %d", got.Accepted, got.Rejected)
	}
	if got.Filters[0].Count != 1 {
		t.Errorf("count = %d, want 1", got.Filters[0].Count)
	}
}

func TestApply_FeatureGroupsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	if err := os.WriteFile(path, []byte(resultsJSON), 0o600); err != nil {
		t.Fatalf("write results: %v", err)
	}

	// txt and pdf share a feature, so either one suffices.
	out, err := run(t, "", "--extensions", "txt,pdf", "apply", "-f", path, "+:keyword:txt +:keyword:pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got applyOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	if len(got.Accepted) != 2 {
		t.Errorf("accepted = %v, want both results", got.Accepted)
	}
}

func TestApply_BadInput(t *testing.T) {
	if _, err := run(t, "{", "apply", "+:keyword:x"); err == nil {
		t.Fatal("expected decode error")
	}
	if _, err := run(t, "", "apply", "-f", filepath.Join(t.TempDir(), "missing.json"), "x"); err == nil {
		t.Fatal("expected open error")
	}
}

func TestToggle(t *testing.T) {
	out, err := run(t, "", "--extensions", "pdf", "toggle", "--", "+:keyword:mit", "-:keyword:pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []filterOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	want := []filterOutput{
		{Inclusive: false, Keyword: "mit", Form: "-:keyword:mit"},
		{Inclusive: true, Keyword: "pdf", Feature: "file_extension", Form: "+:keyword:pdf"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d filters, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("filter %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestToggle_RejectsNonFilter(t *testing.T) {
	for _, arg := range []string{"plain", "foo +:keyword:mit", "+:keyword:a +:keyword:b"} {
		if _, err := run(t, "", "toggle", "--", arg); err == nil {
			t.Errorf("expected error for %q", arg)
		}
	}
}
