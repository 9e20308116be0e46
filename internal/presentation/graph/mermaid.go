package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/decisiontree"
	"github.com/aretw0/decisiontree/pkg/domain"
	"github.com/aretw0/decisiontree/pkg/slug"
)

// GraphOverlay contains traversal data to visualize on the graph.
type GraphOverlay struct {
	VisitedNodes []string
	CurrentNode  string
}

// OverlayFrom captures the cursor of t.
func OverlayFrom(t *decisiontree.Tree) *GraphOverlay {
	o := &GraphOverlay{VisitedNodes: t.History()}
	if n := t.CurrentNode(); n != nil {
		o.CurrentNode = n.Name()
	}
	return o
}

// GenerateMermaid produces a Mermaid flowchart of t.
// It applies semantic styling:
// - Start node: ((Circle))
// - Question: [/Parallelogram/], one labelled edge per answer
// - Fixed next state question: {{Hexagon}}, one dotted edge
// - Outcome: ([Stadium])
// It also applies overlay styles (Visited/Current) if provided.
func GenerateMermaid(t *decisiontree.Tree, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	var start string
	if n := t.StartNode(); n != nil {
		start = n.Name()
	}

	for _, node := range t.Nodes() {
		safeID := sanitizeMermaidID(node.Name())

		opener, closer := "[", "]"
		switch {
		case node.Name() == start:
			opener, closer = "((", "))"
		case node.Kind() == domain.KindQuestion:
			opener, closer = "[/", "/]"
		case node.Kind() == domain.KindFixedNextStateQuestion:
			opener, closer = "{{", "}}"
		case node.Kind() == domain.KindOutcome:
			opener, closer = "([", "])"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", safeID, opener, escape(t.NodeDisplayName(node)), closer)

		switch n := node.(type) {
		case *domain.Question:
			for _, a := range n.Answers() {
				fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", safeID, escape(t.AnswerLabel(n, a.ID)), sanitizeMermaidID(a.Next))
			}
		case *domain.FixedNextStateQuestion:
			fmt.Fprintf(&sb, "    %s -.-> %s\n", safeID, sanitizeMermaidID(n.NextQuestion()))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visitedSet := make(map[string]bool)
		for _, id := range overlay.VisitedNodes {
			safeID := sanitizeMermaidID(id)
			if !visitedSet[safeID] && safeID != "" {
				visitedSet[safeID] = true
				fmt.Fprintf(&sb, "    class %s visited;\n", safeID)
			}
		}
		if overlay.CurrentNode != "" {
			fmt.Fprintf(&sb, "    class %s current;\n", sanitizeMermaidID(overlay.CurrentNode))
		}
	}

	return sb.String()
}

// sanitizeMermaidID derives the Mermaid node id from the slug key, which is
// unique within a tree.
func sanitizeMermaidID(name string) string {
	return strings.ReplaceAll(slug.Key(name), "-", "_")
}

func escape(label string) string {
	return strings.ReplaceAll(label, "\"", "#quot;")
}
