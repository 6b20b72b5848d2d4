// SPDX-License-Identifier: MIT

package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/kataras/golog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/graphview/view"
)

const envPrefix = "GRAPHVIEW"

// Execute runs the graphview command tree against os.Args.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree with its own viper instance, so every
// invocation (and every test) resolves configuration independently.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:   "graphview",
		Short: "Print node, edge and degree views of a graph",
		Long: `graphview - read-through reports over a graph document or fixture.

Load a YAML/JSON graph document with --file, or generate a fixture with
--fixture/--size/--seed, then print one of its views.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(v, cfgFile); err != nil {
				return err
			}
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			logger := newLogger(cmd, v.GetString("log-level"))
			view.SetLogger(logger)

			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default $HOME/.graphview.yaml)")
	pf.String("file", "", "graph document (.yaml, .yml or .json)")
	pf.String("fixture", "path", "fixture when no --file: path, cycle, star, wheel, complete, bipartite, random, degree")
	pf.Int("size", 6, "fixture size")
	pf.Int64("seed", 1, "seed for the random fixture and stamped weights")
	pf.Float64("prob", 0.3, "edge probability for the random fixture")
	pf.String("ids", "default", "fixture node IDs: default, symbol, excel, prefix:<p>")
	pf.String("stamp", "", "stamp every fixture edge with a random integer weight under this attribute")
	pf.Bool("directed", false, "build a directed fixture")
	pf.Bool("multi", false, "build a multigraph fixture")
	pf.Bool("repr", false, "print the view's detailed representation")
	pf.Bool("spec", false, "print the view's spec as YAML instead of its contents")
	pf.String("log-level", "disable", "log level: disable, fatal, error, warn, info, debug")

	// --log_level and --log-level are the same flag
	root.SetGlobalNormalizationFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})
	root.AddCommand(newNodesCmd(v), newEdgesCmd(v), newDegreeCmd(v), newExportCmd(v))

	return root
}

// initConfig layers an optional config file and GRAPHVIEW_* environment
// variables under the command-line flags.
func initConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}

		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	v.SetConfigFile(filepath.Join(home, ".graphview.yaml"))
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read config: %w", err)
	}

	return nil
}

func newLogger(cmd *cobra.Command, level string) *golog.Logger {
	logger := golog.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetPrefix("[graphview] ")
	logger.SetLevel(level)

	return logger
}
