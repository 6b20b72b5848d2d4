// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/graphview/view"
)

func newDegreeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "degree [node]",
		Short: "Print the degree view, or one node's degree",
		Example: `  graphview degree --fixture degree --multi --weight foo
  graphview degree 1 --fixture degree
  graphview degree --file g.yaml --direction in --nbunch a,b`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(v, newLogger(cmd, v.GetString("log-level")))
			if err != nil {
				return err
			}

			var base *view.DegreeView[string]
			switch dir := v.GetString("direction"); dir {
			case "", "total":
				base = view.NewDegreeView[string](g)
			case "in":
				base = view.NewInDegreeView[string](g)
			case "out":
				base = view.NewOutDegreeView[string](g)
			default:
				return fmt.Errorf("unknown degree direction %q (want total, in or out)", dir)
			}

			cfg := view.DegreeConfig[string]{Nbunch: nbunchFlag(v), Weight: v.GetString("weight")}
			if v.IsSet("default-weight") {
				w := v.GetFloat64("default-weight")
				cfg.Default = &w
			}
			dv := base.Call(cfg)

			if len(args) == 1 {
				d, err := dv.Degree(args[0])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), d)

				return err
			}

			return emit(cmd.OutOrStdout(), v, dv, dv.Spec())
		},
	}

	f := cmd.Flags()
	f.String("direction", "total", "degree side on directed graphs: total, in or out")
	f.StringSlice("nbunch", nil, "only report these nodes")
	f.String("weight", "", "edge attribute to sum instead of counting edges")
	f.Float64("default-weight", 1, "weight of edges missing --weight")

	return cmd
}
