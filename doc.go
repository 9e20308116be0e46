/*
Package decisiontree defines and navigates finite decision graphs made of
questions, answers and outcomes.

A tree is declared once (see package dsl, or load a YAML definition with the
decisiontree CLI) and then driven one answer at a time. Copy for the tree and
each node is either given inline or resolved from a localization catalog keyed
by "<tree>.<node>.<field>", falling back to the humanized identifier.

# Concept

A Tree owns an immutable node registry and a single cursor. The first node
declared is the start node. Three node kinds exist:

  - Question: every answer names its own next node.
  - FixedNextStateQuestion: any set of answers advances to the same next node;
    the answers only attach advisory copy.
  - Outcome: terminal.

Nodes are looked up by identifier or by slug ("are-you-in-business" finds
"are_you_in_business?"). A Tree is not safe for concurrent use: keep one per
user session, via Registry.Open or Tree.Clone.

# Usage

	t, err := dsl.Define("should_i_register_for_vat?", func(b *dsl.Builder) {
		b.DisplayName("Should I register for VAT?")

		b.Question("are_you_in_business?").
			Answer("no", "you_cannot_register_for_vat").
			Answer("yes", "you_can_register_for_vat")

		b.Outcome("you_cannot_register_for_vat")
		b.Outcome("you_can_register_for_vat").Explanatory("It's possible")
	}, decisiontree.WithCatalog(catalog))
	if err != nil {
		log.Fatal(err)
	}

	if err := t.ProvideAnswer("No"); err != nil {
		log.Fatal(err)
	}
	fmt.Println(t.CurrentNode().Name()) // you_cannot_register_for_vat

# Errors

Failures wrap one of domain.ErrNotFound (unknown node or tree),
domain.ErrInvalidAnswer (answer not legal for the current node; the cursor does
not move) or domain.ErrBuild (inconsistent definition). Match with errors.Is.
*/
package decisiontree
