// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/kataras/golog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphview/builder"
	"github.com/katalvlaran/graphview/converters"
	"github.com/katalvlaran/graphview/core"
	"github.com/katalvlaran/graphview/view"
)

// fixtures maps --fixture names to constructors of size n.
var fixtures = map[string]func(n int, p float64) []builder.Constructor{
	"path":      func(n int, _ float64) []builder.Constructor { return []builder.Constructor{builder.Path(n)} },
	"cycle":     func(n int, _ float64) []builder.Constructor { return []builder.Constructor{builder.Cycle(n)} },
	"star":      func(n int, _ float64) []builder.Constructor { return []builder.Constructor{builder.Star(n)} },
	"wheel":     func(n int, _ float64) []builder.Constructor { return []builder.Constructor{builder.Wheel(n)} },
	"complete":  func(n int, _ float64) []builder.Constructor { return []builder.Constructor{builder.Complete(n)} },
	"bipartite": func(n int, _ float64) []builder.Constructor { return []builder.Constructor{builder.CompleteBipartite(n, n)} },
	"random":    func(n int, p float64) []builder.Constructor { return []builder.Constructor{builder.RandomSparse(n, p)} },
	// path plus the (1, 3) chord added twice with foo=2 then foo=3
	"degree": func(n int, _ float64) []builder.Constructor {
		return []builder.Constructor{
			builder.Path(n),
			builder.Chord(1, 3, core.Attrs{"foo": 2}),
			builder.Chord(1, 3, core.Attrs{"foo": 3}),
		}
	},
}

func fixtureNames() string {
	names := make([]string, 0, len(fixtures))
	for name := range fixtures {
		names = append(names, name)
	}
	sort.Strings(names)

	return strings.Join(names, ", ")
}

// loadGraph reads --file when set, otherwise builds --fixture.
func loadGraph(v *viper.Viper, logger *golog.Logger) (*core.Graph[string], error) {
	gopts := []core.GraphOption{core.WithLogger(logger)}

	if path := v.GetString("file"); path != "" {
		g, err := converters.ReadFile(path, gopts...)
		if err != nil {
			return nil, err
		}
		logger.Debugf("loaded %s: %d nodes, %d edges", path, g.NodeCount(), g.EdgeCount())

		return g, nil
	}

	name := v.GetString("fixture")
	mk, ok := fixtures[name]
	if !ok {
		return nil, fmt.Errorf("unknown fixture %q (want one of %s)", name, fixtureNames())
	}
	if v.GetBool("directed") {
		gopts = append(gopts, core.WithDirected())
	}
	if v.GetBool("multi") {
		gopts = append(gopts, core.WithMultiEdges())
	}

	idFn, err := builder.IDScheme(v.GetString("ids"))
	if err != nil {
		return nil, err
	}
	bopts := []builder.BuilderOption{builder.WithSeed(v.GetInt64("seed")), builder.WithIDScheme(idFn)}
	if attr := v.GetString("stamp"); attr != "" {
		bopts = append(bopts, builder.WithWeightAttr(attr), builder.WithIntegerWeight(1, 9))
	}

	g, err := builder.BuildGraph(gopts, bopts, mk(v.GetInt("size"), v.GetFloat64("prob"))...)
	if err != nil {
		return nil, err
	}
	logger.Debugf("built fixture %s: %d nodes, %d edges", name, g.NodeCount(), g.EdgeCount())

	return g, nil
}

// selectorFlags resolves --all-data/--data into a Selector.
func selectorFlags(v *viper.Viper) view.Selector {
	switch {
	case v.GetBool("all-data"):
		return view.AllData()
	case v.GetString("data") != "":
		return view.Attr(v.GetString("data"))
	default:
		return view.NoData()
	}
}

// defaultFlag reads --default as a YAML scalar, so "1" is an int and "x" a
// string. Unset yields nil.
func defaultFlag(v *viper.Viper) any {
	if !v.IsSet("default") {
		return nil
	}
	raw := v.GetString("default")
	var out any
	if err := yaml.Unmarshal([]byte(raw), &out); err != nil {
		return raw
	}

	return out
}

// nbunchFlag returns nil unless --nbunch was given.
func nbunchFlag(v *viper.Viper) []string {
	if !v.IsSet("nbunch") {
		return nil
	}

	return append([]string{}, v.GetStringSlice("nbunch")...)
}

type report interface {
	fmt.Stringer
	fmt.GoStringer
}

// emit prints r as its spec, its repr, or its plain rendering.
func emit(w io.Writer, v *viper.Viper, r report, spec any) error {
	if v.GetBool("spec") {
		out, err := view.EncodeSpec(spec)
		if err != nil {
			return err
		}
		_, err = w.Write(out)

		return err
	}
	if v.GetBool("repr") {
		_, err := fmt.Fprintln(w, r.GoString())
		return err
	}
	_, err := fmt.Fprintln(w, r.String())

	return err
}
