// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/graphview/view"
)

func newEdgesCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edges",
		Short: "Print the edge view of the graph",
		Example: `  graphview edges --file g.yaml --data weight --default 1
  graphview edges --fixture degree --multi --keys=false
  graphview edges --fixture path --directed --direction in --nbunch 2,3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := loadGraph(v, newLogger(cmd, v.GetString("log-level")))
			if err != nil {
				return err
			}

			var base *view.EdgeView[string]
			switch dir := v.GetString("direction"); dir {
			case "", "out":
				base = view.NewOutEdgeView[string](g)
			case "in":
				base = view.NewInEdgeView[string](g)
			default:
				return fmt.Errorf("unknown edge direction %q (want out or in)", dir)
			}

			cfg := base.Config()
			cfg.Nbunch = nbunchFlag(v)
			cfg.Data = selectorFlags(v)
			cfg.Default = defaultFlag(v)
			if v.IsSet("keys") {
				cfg.Keys = v.GetBool("keys")
			}
			ev := base.Call(cfg)

			return emit(cmd.OutOrStdout(), v, ev, ev.Spec())
		},
	}

	f := cmd.Flags()
	f.String("direction", "out", "edge orientation on directed graphs: out or in")
	f.StringSlice("nbunch", nil, "only edges touching these nodes")
	f.String("data", "", "attribute to report with each edge")
	f.Bool("all-data", false, "report each edge's full attribute map")
	f.String("default", "", "value reported when --data is missing on an edge")
	f.Bool("keys", false, "report parallel-edge keys (multigraphs default to true)")

	return cmd
}
