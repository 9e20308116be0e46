package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/decisiontree"
	"github.com/aretw0/decisiontree/pkg/domain"
)

// Issue is a finding about a tree that builds but is likely wrong.
type Issue struct {
	Node    string
	Message string
}

func (i Issue) String() string {
	if i.Node == "" {
		return i.Message
	}
	return fmt.Sprintf("%s: %s", i.Node, i.Message)
}

// ValidateTree walks t from its start node and reports unreachable nodes,
// questions without answers, nodes from which no outcome can be reached, and
// advisory copy identifiers with no text. Issues follow declaration order.
func ValidateTree(t *decisiontree.Tree) []Issue {
	start := t.StartNode()
	if start == nil {
		return []Issue{{Message: "tree has no nodes"}}
	}
	nodes := t.Nodes()

	// Forward crawl from the start node.
	reachable := map[string]bool{start.Name(): true}
	queue := []string{start.Name()}
	byName := make(map[string]domain.Node, len(nodes))
	for _, n := range nodes {
		byName[n.Name()] = n
	}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, next := range domain.Successors(byName[current]) {
			if !reachable[next] {
				reachable[next] = true
				queue = append(queue, next)
			}
		}
	}

	// Backward crawl from every outcome.
	predecessors := make(map[string][]string)
	for _, n := range nodes {
		for _, next := range domain.Successors(n) {
			predecessors[next] = append(predecessors[next], n.Name())
		}
	}
	finishes := make(map[string]bool)
	for _, n := range nodes {
		if domain.IsTerminal(n) {
			finishes[n.Name()] = true
			queue = append(queue, n.Name())
		}
	}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, prev := range predecessors[current] {
			if !finishes[prev] {
				finishes[prev] = true
				queue = append(queue, prev)
			}
		}
	}

	var issues []Issue
	for _, n := range nodes {
		name := n.Name()
		if !reachable[name] {
			issues = append(issues, Issue{Node: name, Message: "unreachable from start node " + start.Name()})
			continue
		}
		if q, ok := n.(*domain.Question); ok && len(q.Answers()) == 0 {
			issues = append(issues, Issue{Node: name, Message: "question has no answers"})
		} else if !finishes[name] {
			issues = append(issues, Issue{Node: name, Message: "no outcome can be reached from here"})
		}
		if q, ok := n.(*domain.FixedNextStateQuestion); ok {
			var missing []string
			for _, c := range q.Choices() {
				if c.AdvisoryCopy == "" {
					continue
				}
				if _, ok := t.AdvisoryCopy(c.AdvisoryCopy); !ok {
					missing = append(missing, c.AdvisoryCopy)
				}
			}
			if len(missing) > 0 {
				issues = append(issues, Issue{Node: name, Message: "advisory copy without text: " + strings.Join(missing, ", ")})
			}
		}
	}
	return issues
}
