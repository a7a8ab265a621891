package graph

import (
	"errors"
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
	graphlib "github.com/dominikbraun/graph"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/durak-nlp/durak/stopwords"
)

var outputFormat string

// GraphCmd represents the graph command
var GraphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Render the resource inheritance graph",
	Long: `Render the inheritance graph of a stopword metadata document. Vertices are
resource names; edges point from a resource to the resources it extends or
aliases. Cycles in the declarations are reported as warnings.

Output formats:
  - dot: Graphviz DOT format for visualization (default)
  - mermaid: Mermaid flowchart
  - json: JSON adjacency listing

Example usage:
  durak graph
  durak graph --format mermaid
  durak graph --metadata ./bundle/metadata.json --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver := stopwords.DefaultResolver()
		if metadata := viper.GetString("metadata"); metadata != "" {
			var err error
			resolver, err = stopwords.ResolverForPath(metadata)
			if err != nil {
				return err
			}
		}
		entries, err := resolver.Entries()
		if err != nil {
			return err
		}

		resourceGraph, err := BuildResourceGraph(entries)
		if err != nil {
			return err
		}
		for _, edge := range resourceGraph.Cyclic {
			log.Warn("declaration closes a cycle", "from", edge.From, "to", edge.To)
		}

		formatter, err := NewFormatter(outputFormat)
		if err != nil {
			return err
		}
		output, err := formatter.Format(resourceGraph)
		if err != nil {
			return fmt.Errorf("failed to format graph: %w", err)
		}
		cmd.Print(output)
		return nil
	},
}

// Edge is a directed inheritance edge between two resources.
type Edge struct {
	From     string
	To       string
	Relation string
}

// ResourceGraph is the rendered view of a metadata document's declarations.
// Graph holds the acyclic portion; Cyclic lists edges whose insertion would
// have closed a cycle.
type ResourceGraph struct {
	Graph   graphlib.Graph[string, string]
	Names   []string
	Entries map[string]stopwords.Entry
	Cyclic  []Edge
}

// BuildResourceGraph builds a directed graph over the document's resource
// names with one edge per extends parent or alias target. Cycle-closing
// edges are collected instead of inserted so rendering always terminates.
func BuildResourceGraph(entries map[string]stopwords.Entry) (ResourceGraph, error) {
	g := graphlib.New(graphlib.StringHash, graphlib.Directed(), graphlib.PreventCycles())

	names := sortedNames(entries)
	for _, name := range names {
		if err := g.AddVertex(name); err != nil {
			return ResourceGraph{}, fmt.Errorf("failed to add resource %q: %w", name, err)
		}
	}

	var cyclic []Edge
	addEdge := func(from, to, relation string) error {
		if _, ok := entries[to]; !ok {
			// Dangling references still render as vertices so the
			// author can spot them.
			if err := g.AddVertex(to); err != nil && !errors.Is(err, graphlib.ErrVertexAlreadyExists) {
				return err
			}
		}
		err := g.AddEdge(from, to, graphlib.EdgeAttribute("relation", relation))
		if errors.Is(err, graphlib.ErrEdgeCreatesCycle) {
			cyclic = append(cyclic, Edge{From: from, To: to, Relation: relation})
			return nil
		}
		return err
	}

	for _, name := range names {
		entry := entries[name]
		if entry.Alias != "" {
			if err := addEdge(name, entry.Alias, "alias"); err != nil {
				return ResourceGraph{}, fmt.Errorf("failed to add alias edge %s -> %s: %w", name, entry.Alias, err)
			}
			continue
		}
		for _, parent := range entry.Extends {
			if err := addEdge(name, parent, "extends"); err != nil {
				return ResourceGraph{}, fmt.Errorf("failed to add extends edge %s -> %s: %w", name, parent, err)
			}
		}
	}

	return ResourceGraph{Graph: g, Names: names, Entries: entries, Cyclic: cyclic}, nil
}

func sortedNames(entries map[string]stopwords.Entry) []string {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	GraphCmd.Flags().StringVarP(&outputFormat, "format", "f", "dot", "Output format (dot, mermaid, json)")
}
