// Package render prints decoded field maps as JSON or as a text tree.
package render

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/xlab/treeprint"

	"github.com/danmuck/pbscope/internal/protocol"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Format string

const (
	FormatJSON Format = "json"
	FormatTree Format = "tree"
)

func ParseFormat(raw string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case FormatJSON, FormatTree:
		return f, nil
	case "":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("render: unknown format %q", raw)
	}
}

// Document is one decoded input.
type Document struct {
	Source string           `json:"source"`
	Fields protocol.Fields `json:"fields"`
}

type Options struct {
	Format Format
	Pretty bool
}

// Write renders docs to w. A single JSON document is written as the bare
// field map; several are written one {"source","fields"} object per line.
func Write(w io.Writer, docs []Document, opts Options) error {
	switch opts.Format {
	case FormatTree:
		for _, doc := range docs {
			if _, err := io.WriteString(w, Tree(doc.Source, doc.Fields)); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON, "":
		for _, doc := range docs {
			var v any = doc
			if len(docs) == 1 {
				v = doc.Fields
			}
			out, err := JSON(v, opts.Pretty && len(docs) == 1)
			if err != nil {
				return fmt.Errorf("render %s: %w", doc.Source, err)
			}
			if _, err := w.Write(append(out, '\n')); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("render: unknown format %q", opts.Format)
	}
}

func JSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// Tree draws fields in ascending field number order.
func Tree(root string, fields protocol.Fields) string {
	tree := treeprint.NewWithRoot(root)
	addFields(tree, fields)
	return tree.String()
}

func addFields(tree treeprint.Tree, fields protocol.Fields) {
	for _, n := range sortedKeys(fields) {
		f := fields[n]
		label := fmt.Sprintf("%d [%s]", n, f.Tag.WireType)
		addValue(tree, label, f.Value)
	}
}

func addValue(tree treeprint.Tree, label string, v protocol.Value) {
	switch v.Kind {
	case protocol.KindMessage:
		addFields(tree.AddBranch(label), v.Message)
	case protocol.KindList:
		branch := tree.AddBranch(fmt.Sprintf("%s x%d", label, len(v.List)))
		for i, item := range v.List {
			addValue(branch, "#"+strconv.Itoa(i), item)
		}
	default:
		tree.AddNode(label + " " + scalarText(v))
	}
}

func scalarText(v protocol.Value) string {
	switch v.Kind {
	case protocol.KindInt:
		return strconv.FormatInt(v.Int, 10)
	case protocol.KindString:
		return strconv.Quote(v.Str)
	case protocol.KindBytes:
		return "bytes:" + v.Str
	case protocol.KindFixed64:
		return fmt.Sprintf("signed=%d unsigned=%d double=%s",
			v.Fixed64.Signed, v.Fixed64.Unsigned, floatText(v.Fixed64.Double))
	case protocol.KindFixed32:
		var f *float64
		if v.Fixed32.Float != nil {
			widened := float64(*v.Fixed32.Float)
			f = &widened
		}
		return fmt.Sprintf("signed=%d unsigned=%d float=%s",
			v.Fixed32.Signed, v.Fixed32.Unsigned, floatText(f))
	default:
		return "null"
	}
}

func floatText(f *float64) string {
	if f == nil {
		return "null"
	}
	return strconv.FormatFloat(*f, 'g', -1, 64)
}

func sortedKeys(fields protocol.Fields) []uint64 {
	keys := make([]uint64, 0, len(fields))
	for n := range fields {
		keys = append(keys, n)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
