package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	wurl "github.com/go-whatwg/url"
)

func newCanonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "canon [file]",
		Short: "Print the canonical serialization of each URL, one per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrap(err, "opening input")
				}
				defer f.Close()
				in = f
			}

			scanner := bufio.NewScanner(in)
			w := bufio.NewWriter(os.Stdout)
			defer w.Flush()

			for scanner.Scan() {
				line := scanner.Text()
				if line == "" {
					continue
				}
				u, err := wurl.Parse(line, nil)
				if err != nil {
					logrus.WithError(err).WithField("input", line).Warn("skipping unparseable URL")
					continue
				}
				fmt.Fprintln(w, u.Href())
			}
			return errors.Wrap(scanner.Err(), "reading input")
		},
	}
}
