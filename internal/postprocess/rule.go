// Package postprocess implements the post-processor (domain computation
// and rule-family checking over a realized linkage) and the
// disjunct-level rule pruning that runs before any linkage exists. Rule
// dispatch on Family mirrors a typical Execute-by-type query pattern.
package postprocess

// Family names one of the rule families applied during post-processing,
// in order.
type Family string

const (
	ContainsOneGlobal Family = "contains-one-global"
	ContainsOne       Family = "contains-one"
	ContainsNone      Family = "contains-none"
	FormACycle        Family = "form-a-cycle"
	Bounded           Family = "bounded"
)

// Rule is one post-processing rule: a trigger link-name pattern (an
// uppercase-prefix pattern) and the criterion patterns the family test
// runs against.
type Rule struct {
	Family   Family
	Trigger  string
	Criteria []string
}

// RuleSet is the full rule file a dictionary exposes via
// postprocess_rules().
type RuleSet struct {
	Rules []Rule
}
