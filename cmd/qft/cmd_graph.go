// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qft/bfs"
	"github.com/katalvlaran/qft/builder"
	"github.com/katalvlaran/qft/core"
)

func (a *app) newGraphCmd() *cobra.Command {
	var (
		lookup    string
		reachFrom string
		relations []string
		only      []string
		stats     bool
	)
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Build and print the demo knowledge graph",
		Long: `Builds the person/city/company knowledge graph and prints it.
--relation and --only narrow the printed graph (and the --reach traversal)
to the given relations and node IDs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := demoKnowledgeGraph()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if n, ok := g.Node(lookup); ok {
				fmt.Fprintf(w, "Retrieved node: ID: %s, Properties: %s\n", n.ID, formatProperties(n.Properties))
			} else {
				a.log.Warn().Str("id", lookup).Msg("node not found")
			}

			if len(relations) > 0 {
				g = core.RelationView(g, relations...)
			}
			if len(only) > 0 {
				keep := make(map[string]bool, len(only))
				for _, id := range only {
					keep[id] = true
				}
				g = core.InducedSubgraph(g, keep)
			}
			st := g.Stats()
			a.log.Debug().Int("nodes", st.Nodes).Int("edges", st.Edges).Int("relations", st.Relations).Msg("graph ready")

			writeGraph(w, g)
			if stats {
				fmt.Fprintf(w, "Stats: %d nodes, %d edges, %d relations, %d dangling endpoints\n",
					st.Nodes, st.Edges, st.Relations, st.Dangling)
			}
			if reachFrom == "" {
				return nil
			}
			res, err := bfs.BFS(g, reachFrom)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "Reachable from %s:\n", reachFrom)
			for _, id := range res.Order[1:] {
				path, _ := res.PathTo(id)
				fmt.Fprintf(w, "  %s (hops: %d, path: %s)\n", id, res.Depth[id], strings.Join(path, " -> "))
			}

			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&lookup, "node", "person1", "node to retrieve before printing the graph")
	f.StringVar(&reachFrom, "reach", "", "list nodes reachable from this node")
	f.StringSliceVar(&relations, "relation", nil, "keep only edges with these relations")
	f.StringSliceVar(&only, "only", nil, "keep only these node IDs")
	f.BoolVar(&stats, "stats", false, "print node, edge and relation counts")

	return cmd
}

// demoKnowledgeGraph returns the person/city/company sample graph.
func demoKnowledgeGraph() (*core.Graph, error) {
	g := core.NewGraph(core.WithStrictEdges())
	nodes := []core.Node{
		{ID: "person1", Properties: map[string]string{"name": "Alice", "age": "30"}},
		{ID: "city1", Properties: map[string]string{"name": "London"}},
		{ID: "company1", Properties: map[string]string{"name": "Acme Corp"}},
	}
	for _, n := range nodes {
		if err := g.AddNode(n); err != nil {
			return nil, err
		}
	}
	edges := []core.Edge{
		{Source: "person1", Target: "city1", Relation: "lives_in"},
		{Source: "person1", Target: "company1", Relation: "works_at"},
	}
	for _, e := range edges {
		if err := g.AddEdge(e); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// writeGraph prints nodes (sorted by ID) and edges (insertion order).
func writeGraph(w io.Writer, g *core.Graph) {
	fmt.Fprintln(w, "Nodes:")
	for _, n := range g.Nodes() {
		fmt.Fprintf(w, "  ID: %s, Properties: %s\n", n.ID, formatProperties(n.Properties))
	}
	fmt.Fprintln(w, "Edges:")
	for _, e := range g.Edges() {
		fmt.Fprintf(w, "  Source: %s, Target: %s, Relation: %s\n", e.Source, e.Target, e.Relation)
	}
}

// formatProperties renders a property map as "{k1: v1, k2: v2}" sorted by key.
func formatProperties(props map[string]string) string {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + props[k]
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

func (a *app) newRandomGraphCmd() *cobra.Command {
	var (
		nodes, edges int
		seed         int64
		relation     string
		populate     bool
	)
	cmd := &cobra.Command{
		Use:   "random-graph",
		Short: "Sample a random graph without self-loops",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			a.log.Debug().Int("nodes", nodes).Int("edges", edges).Int64("seed", seed).Msg("sampling")

			w := cmd.OutOrStdout()
			if populate {
				g := core.NewGraph(core.WithStrictEdges())
				if _, err := builder.Generate(g, nodes, edges, relation, builder.WithSeed(seed), builder.WithSymbNumb("node")); err != nil {
					return err
				}
				writeGraph(w, g)

				return nil
			}

			pairs, err := builder.RandomEdges(nodes, edges, builder.WithSeed(seed))
			if err != nil {
				return err
			}
			fmt.Fprintln(w, "Generated Random Graph:")
			for _, p := range pairs {
				fmt.Fprintf(w, "Edge: %s\n", p)
			}
			if dropped := edges - len(pairs); dropped > 0 {
				a.log.Info().Int("dropped", dropped).Msg("self-loops discarded")
			}

			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&nodes, "nodes", 5, "number of nodes")
	f.IntVar(&edges, "edges", 8, "number of edge trials")
	f.Int64Var(&seed, "seed", 0, "random seed (default: current time)")
	f.StringVar(&relation, "relation", "connected_to", "relation name used with --populate")
	f.BoolVar(&populate, "populate", false, "load the edges into a knowledge graph and print it")

	return cmd
}
