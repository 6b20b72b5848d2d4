// SPDX-License-Identifier: MIT

package converters

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphview/core"
)

// Format names a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat accepts "yaml", "yml" or "json" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}

	return "", errors.Wrapf(ErrUnknownFormat, "%q", s)
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Decode parses a document. JSON input is read through the YAML decoder,
// which keeps integer attribute values as int in both formats. Unknown
// top-level fields are rejected.
func Decode(data []byte, f Format) (*Document, error) {
	if f != FormatYAML && f != FormatJSON {
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", f)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, errors.Wrapf(ErrBadDocument, "decode %s: %v", f, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Encode serializes a document. JSON output is indented by two spaces.
// Integral float attributes are written with a fraction ("2.0") so Decode
// reads them back as float64 rather than int.
func Encode(doc *Document, f Format) ([]byte, error) {
	doc = markFloats(doc)
	switch f {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, errors.Wrap(err, "encode yaml")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, "encode yaml")
		}

		return buf.Bytes(), nil
	case FormatJSON:
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "encode json")
		}

		return append(out, '\n'), nil
	}

	return nil, errors.Wrapf(ErrUnknownFormat, "%q", f)
}

// Read decodes a document from r and builds its graph.
func Read(r io.Reader, f Format, opts ...core.GraphOption) (*core.Graph[string], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read document")
	}
	doc, err := Decode(data, f)
	if err != nil {
		return nil, err
	}

	return doc.Graph(opts...)
}

// ReadFile loads a graph from path, inferring the format from its extension.
func ReadFile(path string, opts ...core.GraphOption) (*core.Graph[string], error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer file.Close()

	return Read(file, f, opts...)
}

// Write encodes a snapshot of g to w.
func Write(w io.Writer, g *core.Graph[string], f Format) error {
	out, err := Encode(FromGraph(g), f)
	if err != nil {
		return err
	}
	_, err = w.Write(out)

	return errors.Wrap(err, "write document")
}

// exactFloat is an integral float64 that encodes as "2.0", never "2".
type exactFloat float64

func (f exactFloat) text() string {
	s := strconv.FormatFloat(float64(f), 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}

	return s
}

func (f exactFloat) MarshalJSON() ([]byte, error) { return []byte(f.text()), nil }

func (f exactFloat) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: f.text()}, nil
}

// markFloats returns a copy of doc whose integral finite float64 attribute
// values, nested ones included, are wrapped as exactFloat.
func markFloats(doc *Document) *Document {
	out := *doc
	out.Nodes = make([]NodeDoc, len(doc.Nodes))
	for i, n := range doc.Nodes {
		n.Attrs = markAttrs(n.Attrs)
		out.Nodes[i] = n
	}
	out.Edges = make([]EdgeDoc, len(doc.Edges))
	for i, e := range doc.Edges {
		e.Attrs = markAttrs(e.Attrs)
		out.Edges[i] = e
	}
	if doc.Nodes == nil {
		out.Nodes = nil
	}
	if doc.Edges == nil {
		out.Edges = nil
	}

	return &out
}

func markAttrs(a core.Attrs) core.Attrs {
	if a == nil {
		return nil
	}
	out := make(core.Attrs, len(a))
	for k, v := range a {
		out[k] = markValue(v)
	}

	return out
}

func markValue(v any) any {
	switch x := v.(type) {
	case float64:
		if !math.IsInf(x, 0) && x == math.Trunc(x) {
			return exactFloat(x)
		}
	case core.Attrs:
		return markAttrs(x)
	case map[string]any:
		return map[string]any(markAttrs(x))
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = markValue(e)
		}

		return out
	}

	return v
}
