package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	wurl "github.com/go-whatwg/url"
)

func newParseCmd() *cobra.Command {
	var base string
	cmd := &cobra.Command{
		Use:   "parse <url>",
		Short: "Parse a URL and print its components",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var baseURL *wurl.URL
			if base != "" {
				b, err := wurl.Parse(base, nil)
				if err != nil {
					return fmt.Errorf("parsing --base: %w", err)
				}
				baseURL = b
			}

			u, err := wurl.Parse(args[0], baseURL)
			if err != nil {
				return err
			}

			if verbose {
				for _, ve := range u.ValidationErrors() {
					logrus.WithField("kind", ve.Kind).Warn("validation error")
				}
			}

			fmt.Printf("href:      %s\n", u.Href())
			fmt.Printf("protocol:  %s\n", u.Protocol())
			fmt.Printf("username:  %s\n", u.Username())
			fmt.Printf("password:  %s\n", u.Password())
			fmt.Printf("host:      %s\n", u.Host())
			fmt.Printf("hostname:  %s\n", u.Hostname())
			fmt.Printf("port:      %s\n", u.Port())
			fmt.Printf("pathname:  %s\n", u.Pathname())
			fmt.Printf("search:    %s\n", u.Search())
			fmt.Printf("hash:      %s\n", u.Hash())
			fmt.Printf("origin:    %s\n", u.Origin())
			return nil
		},
	}
	cmd.Flags().StringVar(&base, "base", "", "base URL to resolve against")
	return cmd
}
