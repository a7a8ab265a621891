package graph

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Formatter renders a ResourceGraph into one output format.
type Formatter interface {
	Format(rg ResourceGraph) (string, error)
}

// NewFormatter creates a Formatter for the specified format type.
// Supported formats: "dot", "mermaid", "json"
func NewFormatter(format string) (Formatter, error) {
	switch format {
	case "dot":
		return &DOTFormatter{}, nil
	case "mermaid":
		return &MermaidFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s (valid options: dot, mermaid, json)", format)
	}
}

// DOTFormatter renders the resource graph as Graphviz DOT. Alias edges are
// dashed to distinguish pure redirects from extends inheritance.
type DOTFormatter struct{}

func (f *DOTFormatter) Format(rg ResourceGraph) (string, error) {
	vertices, edges, err := graphElements(rg)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("digraph stopword_resources {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=box];\n\n")

	for _, name := range vertices {
		sb.WriteString(fmt.Sprintf("  %q;\n", name))
	}
	sb.WriteString("\n")
	for _, edge := range edges {
		if edge.Relation == "alias" {
			sb.WriteString(fmt.Sprintf("  %q -> %q [label=\"alias\", style=dashed];\n", edge.From, edge.To))
		} else {
			sb.WriteString(fmt.Sprintf("  %q -> %q [label=\"extends\"];\n", edge.From, edge.To))
		}
	}
	sb.WriteString("}\n")
	return sb.String(), nil
}

// MermaidFormatter renders the resource graph as a Mermaid flowchart.
type MermaidFormatter struct{}

func (f *MermaidFormatter) Format(rg ResourceGraph) (string, error) {
	vertices, edges, err := graphElements(rg)
	if err != nil {
		return "", err
	}

	ids := make(map[string]string, len(vertices))
	for i, name := range vertices {
		ids[name] = fmt.Sprintf("r%d", i)
	}

	var sb strings.Builder
	sb.WriteString("graph LR\n")
	for _, name := range vertices {
		sb.WriteString(fmt.Sprintf("  %s[\"%s\"]\n", ids[name], name))
	}
	for _, edge := range edges {
		if edge.Relation == "alias" {
			sb.WriteString(fmt.Sprintf("  %s -.->|alias| %s\n", ids[edge.From], ids[edge.To]))
		} else {
			sb.WriteString(fmt.Sprintf("  %s -->|extends| %s\n", ids[edge.From], ids[edge.To]))
		}
	}
	return sb.String(), nil
}

// JSONFormatter renders the resource graph as a JSON adjacency listing.
type JSONFormatter struct{}

type jsonResource struct {
	Name        string   `json:"name"`
	File        string   `json:"file,omitempty"`
	Extends     []string `json:"extends,omitempty"`
	Alias       string   `json:"alias,omitempty"`
	Description string   `json:"description,omitempty"`
}

func (f *JSONFormatter) Format(rg ResourceGraph) (string, error) {
	resources := make([]jsonResource, 0, len(rg.Names))
	for _, name := range rg.Names {
		entry := rg.Entries[name]
		resources = append(resources, jsonResource{
			Name:        name,
			File:        entry.File,
			Extends:     entry.Extends,
			Alias:       entry.Alias,
			Description: entry.Description,
		})
	}
	encoded, err := json.MarshalIndent(resources, "", "  ")
	if err != nil {
		return "", err
	}
	return string(encoded) + "\n", nil
}

// graphElements extracts sorted vertices and edges from the built graph so
// every formatter emits deterministic output.
func graphElements(rg ResourceGraph) ([]string, []Edge, error) {
	adjacency, err := rg.Graph.AdjacencyMap()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read adjacency map: %w", err)
	}

	vertices := make([]string, 0, len(adjacency))
	for name := range adjacency {
		vertices = append(vertices, name)
	}
	sort.Strings(vertices)

	var edges []Edge
	for _, from := range vertices {
		targets := make([]string, 0, len(adjacency[from]))
		for to := range adjacency[from] {
			targets = append(targets, to)
		}
		sort.Strings(targets)
		for _, to := range targets {
			relation := adjacency[from][to].Properties.Attributes["relation"]
			edges = append(edges, Edge{From: from, To: to, Relation: relation})
		}
	}
	edges = append(edges, rg.Cyclic...)
	return vertices, edges, nil
}
