package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/weblib-dev/weblib/internal/errors"
	"github.com/weblib-dev/weblib/pkg/component"
	"github.com/weblib-dev/weblib/pkg/css"
)

func (c *cli) componentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "List the registered components",
		Long: `List the names of the built-in components in the order they can be
passed to ` + "`weblib render --component`.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fw, err := css.Lookup(c.cfg.Framework)
			if err != nil {
				return errors.New("W403").WithSubject(c.cfg.Framework)
			}
			out := cmd.OutOrStdout()
			for _, name := range component.Builtins(fw).Names() {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}
}
