package testutils

import (
	"testing"

	"github.com/aretw0/decisiontree"
	"github.com/aretw0/decisiontree/pkg/dsl"
	"github.com/aretw0/decisiontree/pkg/i18n"
	"github.com/stretchr/testify/require"
)

// VATTreeName is the name of the fixture tree.
const VATTreeName = "should_i_register_for_vat?"

// VATCatalog returns the localization entries the fixture tree is tested against.
func VATCatalog() *i18n.Catalog {
	return i18n.NewCatalog(map[string]string{
		"just_testing.display_name": "Just testing from i18n",
		"just_testing.explanatory":  "Just testing explanatory from i18n",

		"should_i_register_for_vat?.explanatory":                          "This is a tool",
		"should_i_register_for_vat?.are_you_based_in_the_uk?.display_name": "Are you based in the United Kingdom?",
		"should_i_register_for_vat?.are_you_based_in_the_uk?.explanatory":  "England, Scotland, Wales, NI",
		"should_i_register_for_vat?.barrister_advice.advisory_copy":        "Advice for barristers",
		"should_i_register_for_vat?.racehorse_advice.advisory_copy":        "Advice for racehorse owners",
	})
}

// DeclareVAT declares the fixture graph on b. It is a subset of the real
// VAT registration rules, shaped to exercise every node kind.
func DeclareVAT(b *dsl.Builder) {
	b.DisplayName("Should I register for VAT?")
	b.Tags("vat, taxation")

	b.Question("are_you_in_business?").
		Answer("no", "you_cannot_register_for_vat").
		Answer("yes", "are_you_based_in_the_uk?")

	b.Question("are_you_based_in_the_uk?").
		Answer("yes", "does_your_business_operate_in_any_of_these_sectors?").
		Answer("no", "you_should_register_as_a_non_established_taxable_person")

	b.FixedQuestion("does_your_business_operate_in_any_of_these_sectors?", "what_is_your_turnover?").
		Type("checkbox").
		AnswerWithAdvisory("agriculture_horticulture_fisheries", "agriculture_horticulture_fisheries_advice").
		AnswerWithAdvisory("barristers_and_advocates", "barrister_advice").
		AnswerWithAdvisory("racehorse_owners", "racehorse_advice").
		AnswerWithAdvisory("retail_sector", "retail_advice").
		Answer("none_of_the_above_apply")

	b.Question("what_is_your_turnover?").
		Answer("under_70k", "you_can_register_for_vat").
		Answer("over_70k", "you_must_register_for_vat")

	b.Outcome("you_must_register_for_vat")
	b.Outcome("you_should_not_register_for_vat")
	b.Outcome("you_cannot_register_for_vat")
	b.Outcome("you_can_register_for_vat").Explanatory("It's possible")
	b.Outcome("you_should_register_as_a_non_established_taxable_person")
}

// VATTree builds the fixture tree backed by VATCatalog.
// It fails the test immediately on error.
func VATTree(t testing.TB, opts ...decisiontree.Option) *decisiontree.Tree {
	t.Helper()

	all := append([]decisiontree.Option{decisiontree.WithCatalog(VATCatalog())}, opts...)
	tree, err := dsl.Define(VATTreeName, DeclareVAT, all...)
	require.NoError(t, err, "Failed to build VAT fixture")
	return tree
}

// VATRegistry returns a registry holding only the fixture tree.
func VATRegistry(t testing.TB, opts ...decisiontree.Option) *decisiontree.Registry {
	t.Helper()

	reg := decisiontree.NewRegistry()
	require.NoError(t, reg.Register(VATTree(t, opts...)))
	return reg
}
