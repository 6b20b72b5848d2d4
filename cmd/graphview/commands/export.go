// SPDX-License-Identifier: MIT

package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/graphview/converters"
)

func newExportCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the loaded graph as a YAML or JSON document",
		Example: `  graphview export --fixture wheel --size 5 > wheel.yaml
  graphview export --file g.yaml --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := converters.ParseFormat(v.GetString("format"))
			if err != nil {
				return err
			}
			g, err := loadGraph(v, newLogger(cmd, v.GetString("log-level")))
			if err != nil {
				return err
			}

			return converters.Write(cmd.OutOrStdout(), g, f)
		},
	}
	cmd.Flags().String("format", "yaml", "document format: yaml or json")

	return cmd
}
