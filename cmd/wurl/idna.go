package main

import (
	"fmt"

	"github.com/spf13/cobra"

	wurl "github.com/go-whatwg/url"
)

func newIDNACmd() *cobra.Command {
	var toUnicode bool
	var strict bool
	cmd := &cobra.Command{
		Use:   "idna <domain>",
		Short: "Convert a domain between Unicode and Punycode-ASCII form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if toUnicode {
				fmt.Println(wurl.DomainToUnicode(args[0]))
				return nil
			}
			ascii, err := wurl.DomainToASCII(args[0], strict)
			if err != nil {
				return err
			}
			fmt.Println(ascii)
			return nil
		},
	}
	cmd.Flags().BoolVar(&toUnicode, "to-unicode", false, "convert ASCII/Punycode domain to Unicode instead")
	cmd.Flags().BoolVar(&strict, "strict", false, "enforce per-label DNS length limits")
	return cmd
}
