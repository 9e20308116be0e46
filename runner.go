package decisiontree

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aretw0/decisiontree/pkg/domain"
)

// Runner drives one traversal of a Tree over line-based IO.
// This allows for easy testing and integration with different frontends (CLI, TUI, etc).
type Runner struct {
	Input    io.Reader
	Output   io.Writer
	Headless bool
	Renderer ContentRenderer
	Headline func(string) string
	// Banner replaces the plain title line printed before the first node.
	Banner func(title string)
}

// ContentRenderer is a function that transforms explanatory copy before output.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)

// NewRunner creates a Runner on the given IO.
func NewRunner(in io.Reader, out io.Writer) *Runner {
	return &Runner{Input: in, Output: out}
}

// Run prompts for the current node until an outcome is reached, input ends,
// or the user types "exit". Invalid answers are reported and asked again.
//
// Questions accept an answer identifier, its label, or its 1-based number.
// Fixed next state questions accept a comma separated list (possibly empty).
func (r *Runner) Run(t *Tree) error {
	if r.Input == nil {
		return fmt.Errorf("input reader must be set (use os.Stdin)")
	}
	if r.Output == nil {
		return fmt.Errorf("output writer must be set (use os.Stdout)")
	}
	lines := bufio.NewReader(r.Input)
	w := r.Output

	if !r.Headless {
		if r.Banner != nil {
			r.Banner(t.DisplayName())
		} else {
			fmt.Fprintln(w, r.headline(t.DisplayName()))
		}
		if text, ok := t.Explanatory(); ok {
			fmt.Fprintln(w, r.render(text))
		}
	}

	for {
		node := t.CurrentNode()
		if node == nil {
			return nil
		}
		r.show(t, node)

		if domain.IsTerminal(node) {
			for _, id := range t.Advisories() {
				if text, ok := t.AdvisoryCopy(id); ok {
					fmt.Fprintln(w, r.render(text))
				}
			}
			return nil
		}

		fmt.Fprint(w, "> ")
		text, err := lines.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && text != "") {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("input error: %w", err)
		}
		input := strings.TrimSpace(text)
		if input == "exit" || input == "quit" {
			fmt.Fprintln(w, "Bye!")
			return nil
		}

		answers := resolveInput(t, node, input)
		if err := t.ProvideAnswers(answers...); err != nil {
			fmt.Fprintf(w, "Sorry, %q is not a valid answer.\n", input)
		}
	}
}

func (r *Runner) show(t *Tree, node domain.Node) {
	w := r.Output
	fmt.Fprintln(w)
	fmt.Fprintln(w, r.headline(t.NodeDisplayName(node)))
	if text, ok := t.NodeExplanatory(node); ok {
		fmt.Fprintln(w, r.render(text))
	}
	if r.Headless {
		return
	}
	for i, id := range domain.AnswerIDs(node) {
		fmt.Fprintf(w, "  %d. %s\n", i+1, t.AnswerLabel(node, id))
	}
	if _, ok := node.(*domain.FixedNextStateQuestion); ok {
		fmt.Fprintln(w, "(select any, separated by commas)")
	}
}

func (r *Runner) render(text string) string {
	if r.Renderer == nil {
		return text
	}
	out, err := r.Renderer(text)
	if err != nil {
		return text
	}
	return strings.TrimSpace(out)
}

func (r *Runner) headline(text string) string {
	if r.Headline == nil {
		return text
	}
	return r.Headline(text)
}

// resolveInput turns a typed line into answer identifiers, mapping numbers
// and labels to the declared identifiers they stand for.
func resolveInput(t *Tree, node domain.Node, input string) []string {
	ids := domain.AnswerIDs(node)
	pick := func(s string) string {
		if i, err := strconv.Atoi(s); err == nil && i >= 1 && i <= len(ids) {
			return ids[i-1]
		}
		for _, id := range ids {
			if strings.EqualFold(t.AnswerLabel(node, id), s) {
				return id
			}
		}
		return s
	}

	if _, ok := node.(*domain.FixedNextStateQuestion); ok {
		var out []string
		for _, part := range strings.Split(input, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, pick(part))
			}
		}
		return out
	}
	return []string{pick(input)}
}
