package main

import (
	"fmt"
	"os"

	"github.com/kailas-cloud/kwfilter/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "kwfilterctl:", err)
		os.Exit(1)
	}
}
