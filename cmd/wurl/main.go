// Command wurl is a small CLI front end over the url package: parse a
// URL and print its components, canonicalize a list of URLs, run IDNA
// domain conversions, or batch-parse a large list of URLs concurrently.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

func main() {
	root := &cobra.Command{
		Use:   "wurl",
		Short: "Inspect and canonicalize URLs per the WHATWG URL standard",
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log validation errors to stderr")

	root.AddCommand(newParseCmd())
	root.AddCommand(newCanonCmd())
	root.AddCommand(newIDNACmd())
	root.AddCommand(newBatchCmd())

	if err := root.Execute(); err != nil {
		logrus.WithError(err).Error("wurl failed")
		os.Exit(1)
	}
}
