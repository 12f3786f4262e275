package main

import (
	"github.com/spf13/cobra"

	"github.com/weblib-dev/weblib/internal/config"
)

func (c *cli) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.AddCommand(c.configInitCmd(), c.configShowCmd())
	return cmd
}

func (c *cli) configInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [PATH]",
		Short: "Write a starter configuration file",
		Long: `Write the default configuration as YAML to PATH (default weblib.yaml).

Examples:
  weblib config init
  weblib config init site.yaml --force`,
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{"skipConfig": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.ConfigFileName
			if len(args) == 1 {
				path = args[0]
			}
			cfg, err := config.Init(path, force)
			if err != nil {
				return err
			}
			c.success("Wrote %s", cfg.Path())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	return cmd
}

func (c *cli) configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long:  `Print the configuration after defaults, file, environment and flags are applied.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := c.cfg.Marshal()
			if err != nil {
				return err
			}
			if path := c.cfg.Path(); path != "" {
				c.info("# from %s", path)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
