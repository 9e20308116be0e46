/*
Package dsl provides a Go DSL for declaring decision trees.

Declarations are recorded in order; the first node declared is the start node.
Declaring the same node name twice is an error reported by Build, before any
navigation can happen. Answer targets are checked when the tree is assembled.

Example usage:

	t, err := dsl.Define("should_i_register_for_vat?", func(b *dsl.Builder) {
		b.DisplayName("Should I register for VAT?")
		b.Tags("vat, taxation")

		b.Question("are_you_in_business?").
			Answer("no", "you_cannot_register_for_vat").
			Answer("yes", "does_your_business_operate_in_any_of_these_sectors?")

		b.FixedQuestion("does_your_business_operate_in_any_of_these_sectors?", "you_must_register_for_vat").
			Type("checkbox").
			AnswerWithAdvisory("racehorse_owners", "racehorse_advice").
			Answer("none_of_the_above_apply")

		b.Outcome("you_must_register_for_vat")
		b.Outcome("you_cannot_register_for_vat").
			Explanatory("You need to be in business to register.")
	})
*/
package dsl
