// SPDX-License-Identifier: MIT

package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/graphview/view"
)

func newNodesCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nodes",
		Short: "Print the node view, optionally with attribute data",
		Example: `  graphview nodes --file g.yaml
  graphview nodes --file g.yaml --data color --default none
  graphview nodes --fixture star --size 4 --all-data --repr`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := loadGraph(v, newLogger(cmd, v.GetString("log-level")))
			if err != nil {
				return err
			}

			nv := view.NewNodeView[string](g)
			sel := selectorFlags(v)
			if sel.IsNone() {
				return emit(cmd.OutOrStdout(), v, nv, nv.Spec())
			}
			dv := nv.WithData(sel, defaultFlag(v))

			return emit(cmd.OutOrStdout(), v, dv, dv.Spec())
		},
	}

	f := cmd.Flags()
	f.String("data", "", "attribute to report next to each node")
	f.Bool("all-data", false, "report each node's full attribute map")
	f.String("default", "", "value reported when --data is missing on a node")

	return cmd
}
