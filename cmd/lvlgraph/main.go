// Package main provides the lvlgraph CLI entry point: load a YAML edge
// list, build a labeled bidirectional graph, freeze it, and query it.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlgraph/bidigraph"
	"github.com/katalvlaran/lvlgraph/core"
	"github.com/katalvlaran/lvlgraph/dfs"
	"github.com/katalvlaran/lvlgraph/dominators"
	"github.com/katalvlaran/lvlgraph/edgelist"
	"github.com/katalvlaran/lvlgraph/label"
)

var version = "0.1.0"

// snapshot is the frozen labeled graph every subcommand queries.
type snapshot = label.Immutable[*bidigraph.Immutable, *bidigraph.Mutable, string, int64]

// edgeSpec is one YAML edge entry: {from: A, to: B, label: 7}.
type edgeSpec struct {
	From  string `yaml:"from"`
	To    string `yaml:"to"`
	Label int64  `yaml:"label"`
}

// document is the YAML top level: a single "edges" list.
type document struct {
	Edges []edgeSpec `yaml:"edges"`
}

// loadSnapshot reads a YAML edge list and returns the frozen labeled
// graph, the name→identifier assignment, and the declined-edge count.
func loadSnapshot(path string) (*snapshot, map[string]core.VertexID, int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("read %s: %w", path, err)
	}
	var doc document
	if err = yaml.Unmarshal(raw, &doc); err != nil {
		return nil, nil, 0, fmt.Errorf("parse %s: %w", path, err)
	}

	triples := make([]edgelist.Triple[string, int64], len(doc.Edges))
	for i, e := range doc.Edges {
		triples[i] = edgelist.Triple[string, int64]{From: e.From, To: e.To, Label: e.Label}
	}

	builder, index, declined, err := edgelist.Build[string, int64, *bidigraph.Mutable, *bidigraph.Immutable](
		func() (*bidigraph.Mutable, error) { return bidigraph.New(), nil },
		triples,
	)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("build %s: %w", path, err)
	}

	return builder.Freeze(), index, declined, nil
}

// resolveRoot maps a vertex name to its identifier.
func resolveRoot(index map[string]core.VertexID, name string) (core.VertexID, error) {
	v, ok := index[name]
	if !ok {
		return 0, fmt.Errorf("unknown vertex %q", name)
	}

	return v, nil
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <edges.yaml>",
		Short: "Print counts and the vertex table of an edge-list file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, index, declined, err := loadSnapshot(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("vertices: %d\nedges:    %d\ndeclined: %d\n",
				snap.VertexCount(), snap.EdgeCount(), declined)

			names := make([]string, 0, len(index))
			for name := range index {
				names = append(names, name)
			}
			sort.Slice(names, func(i, j int) bool { return index[names[i]] < index[names[j]] })
			for _, name := range names {
				fmt.Printf("  v%-4d %s\n", index[name], name)
			}

			return nil
		},
	}
}

func newDFSCmd() *cobra.Command {
	var root string
	cmd := &cobra.Command{
		Use:   "dfs <edges.yaml>",
		Short: "Depth-first visit order from --root, with vertex labels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, index, _, err := loadSnapshot(args[0])
			if err != nil {
				return err
			}
			start, err := resolveRoot(index, root)
			if err != nil {
				return err
			}
			res, err := dfs.DFS(snap, start)
			if err != nil {
				return err
			}
			for _, v := range res.Order {
				name, _ := snap.VertexLabel(v)
				fmt.Printf("v%-4d depth=%-3d %s\n", v, res.Depth[v], name)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&root, "root", "", "name of the start vertex (required)")
	_ = cmd.MarkFlagRequired("root")

	return cmd
}

func newDomCmd() *cobra.Command {
	var root string
	cmd := &cobra.Command{
		Use:   "dom <edges.yaml>",
		Short: "Immediate dominators of every vertex reachable from --root",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, index, _, err := loadSnapshot(args[0])
			if err != nil {
				return err
			}
			start, err := resolveRoot(index, root)
			if err != nil {
				return err
			}
			tree, err := dominators.Tree(snap.Unwrap(), start)
			if err != nil {
				return err
			}
			for v := range snap.Vertices() {
				idom, ok := tree.IDom(v)
				if !ok {
					continue // unreachable from the root
				}
				name, _ := snap.VertexLabel(v)
				idomName, _ := snap.VertexLabel(idom)
				fmt.Printf("v%-4d %-12s idom: v%-4d %s\n", v, name, idom, idomName)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&root, "root", "", "name of the root vertex (required)")
	_ = cmd.MarkFlagRequired("root")

	return cmd
}

func main() {
	rootCmd := &cobra.Command{
		Use:     "lvlgraph",
		Short:   "lvlgraph - labeled graph queries over YAML edge lists",
		Version: version,
		Long: `lvlgraph loads a YAML edge list of the form

  edges:
    - {from: A, to: B, label: 7}

builds a labeled bidirectional graph (vertex labels are the endpoint
names, edge labels the numeric values), freezes it, and answers
structural queries against the snapshot.`,
	}
	rootCmd.AddCommand(newInfoCmd(), newDFSCmd(), newDomCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
