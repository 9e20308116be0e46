package compiler

import (
	"fmt"
	"os"

	"github.com/aretw0/decisiontree"
	"github.com/aretw0/decisiontree/internal/dto"
	"github.com/aretw0/decisiontree/pkg/domain"
	"github.com/aretw0/decisiontree/pkg/dsl"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Parser is responsible for converting definition files into trees.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes YAML (or JSON, which is a YAML subset) into a definition.
// Unknown keys are rejected so typos do not silently drop copy or answers.
func (p *Parser) Parse(data []byte) (*dto.TreeDefinition, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse definition: %w", err)
	}
	if raw == nil {
		return nil, &domain.BuildError{Reason: "empty definition"}
	}

	var def dto.TreeDefinition
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       dto.TagsHook(),
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           &def,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode definition: %w", err)
	}
	return &def, nil
}

// Compile turns a definition into a tree through the dsl builder, so file
// defined trees get the same validation as trees declared in code.
func (p *Parser) Compile(def *dto.TreeDefinition, opts ...decisiontree.Option) (*decisiontree.Tree, error) {
	b := dsl.New(def.Name)
	if def.DisplayName != nil {
		b.DisplayName(*def.DisplayName)
	}
	if def.Explanatory != nil {
		b.Explanatory(*def.Explanatory)
	}
	if def.Tags != "" {
		b.Tags(string(def.Tags))
	}

	for i, n := range def.Nodes {
		if err := declare(b, n); err != nil {
			if be, ok := err.(*domain.BuildError); ok {
				be.Tree = def.Name
				if be.Node == "" {
					be.Reason = fmt.Sprintf("node #%d: %s", i+1, be.Reason)
				}
			}
			return nil, err
		}
	}
	return b.Build(opts...)
}

// Load parses and compiles data in one step.
func (p *Parser) Load(data []byte, opts ...decisiontree.Option) (*decisiontree.Tree, error) {
	def, err := p.Parse(data)
	if err != nil {
		return nil, err
	}
	return p.Compile(def, opts...)
}

// LoadFile reads a definition from disk.
func LoadFile(path string, opts ...decisiontree.Option) (*decisiontree.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition %s: %w", path, err)
	}
	tree, err := NewParser().Load(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tree, nil
}

func declare(b *dsl.Builder, n dto.NodeDefinition) error {
	kinds := 0
	for _, name := range []string{n.Question, n.Fixed, n.Outcome} {
		if name != "" {
			kinds++
		}
	}
	if kinds != 1 {
		return &domain.BuildError{Reason: "node must set exactly one of question, fixed or outcome"}
	}

	switch {
	case n.Question != "":
		if n.Next != "" {
			return &domain.BuildError{Node: n.Question, Reason: "a question routes per answer; next belongs on answers"}
		}
		q := b.Question(n.Question)
		if n.Type != "" {
			q.Type(n.Type)
		}
		if n.DisplayName != nil {
			q.DisplayName(*n.DisplayName)
		}
		if n.Explanatory != nil {
			q.Explanatory(*n.Explanatory)
		}
		for _, a := range n.Answers {
			if a.AdvisoryCopy != "" {
				return &domain.BuildError{Node: n.Question, Reason: "advisory copy is only allowed on fixed questions"}
			}
			q.Answer(a.ID, a.Next)
		}

	case n.Fixed != "":
		q := b.FixedQuestion(n.Fixed, n.Next)
		if n.Type != "" {
			q.Type(n.Type)
		}
		if n.DisplayName != nil {
			q.DisplayName(*n.DisplayName)
		}
		if n.Explanatory != nil {
			q.Explanatory(*n.Explanatory)
		}
		for _, a := range n.Answers {
			if a.Next != "" {
				return &domain.BuildError{Node: n.Fixed, Reason: "answer " + a.ID + " cannot set next on a fixed question"}
			}
			q.AnswerWithAdvisory(a.ID, a.AdvisoryCopy)
		}

	default:
		if n.Next != "" || n.Type != "" || len(n.Answers) > 0 {
			return &domain.BuildError{Node: n.Outcome, Reason: "an outcome takes no next, type or answers"}
		}
		o := b.Outcome(n.Outcome)
		if n.DisplayName != nil {
			o.DisplayName(*n.DisplayName)
		}
		if n.Explanatory != nil {
			o.Explanatory(*n.Explanatory)
		}
	}
	return nil
}
