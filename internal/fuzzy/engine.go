package fuzzy

import "fmt"

// Term is the name of a linguistic value of a variable, e.g. "low".
type Term string

// gradeSlack relaxes the threshold comparison during monotone
// defuzzification so firing strengths produced by the same membership
// math always find a matching sample.
const gradeSlack = 1e-3

// Consequent defuzzifies a rule's firing strength into a crisp output.
// Tsukamoto inference requires a monotone output membership function:
// the crisp value is the first universe sample (ascending, or the last
// when Descending is set) whose grade reaches the firing strength.
type Consequent struct {
	MF         MembershipFunc
	Universe   Universe
	Descending bool
}

// Crisp returns the crisp output for firing strength alpha.
// When no sample reaches alpha the universe midpoint is returned.
func (c Consequent) Crisp(alpha float64) float64 {
	samples := c.Universe.Samples()
	if c.Descending {
		for i := len(samples) - 1; i >= 0; i-- {
			if c.MF.Grade(samples[i]) >= alpha-gradeSlack {
				return samples[i]
			}
		}
		return c.Universe.Mean()
	}
	for _, z := range samples {
		if c.MF.Grade(z) >= alpha-gradeSlack {
			return z
		}
	}
	return c.Universe.Mean()
}

// Rule maps one term per input variable (positional) to an output term.
type Rule struct {
	When []Term
	Then Term
}

// Engine evaluates a Tsukamoto rule base. Inputs are positional: the
// i-th term set added with AddInput corresponds to the i-th argument of
// Evaluate. Evaluation is pure; an Engine can be shared between goroutines
// once built.
type Engine struct {
	inputs  []map[Term]MembershipFunc
	outputs map[Term]Consequent
	rules   []Rule
}

// NewEngine creates an engine with the given output term set.
func NewEngine(outputs map[Term]Consequent) *Engine {
	return &Engine{outputs: outputs}
}

// AddInput appends an input variable described by its term set.
func (e *Engine) AddInput(terms map[Term]MembershipFunc) {
	e.inputs = append(e.inputs, terms)
}

// AddRule appends a rule. It returns an error if the antecedent arity does
// not match the number of inputs or if any term is unknown.
func (e *Engine) AddRule(then Term, when ...Term) error {
	if len(when) != len(e.inputs) {
		return fmt.Errorf("rule has %d antecedents, engine has %d inputs", len(when), len(e.inputs))
	}
	for i, term := range when {
		if _, ok := e.inputs[i][term]; !ok {
			return fmt.Errorf("unknown term %q for input %d", term, i)
		}
	}
	if _, ok := e.outputs[then]; !ok {
		return fmt.Errorf("unknown output term %q", then)
	}
	e.rules = append(e.rules, Rule{When: when, Then: then})
	return nil
}

// Rules returns the number of rules in the base.
func (e *Engine) Rules() int {
	return len(e.rules)
}

// Evaluate runs the rule base against the crisp inputs and returns the
// weighted average of the rule outputs: sum(alpha*z) / sum(alpha).
// When no rule fires the result is 0.
func (e *Engine) Evaluate(inputs ...float64) (float64, error) {
	if len(inputs) != len(e.inputs) {
		return 0, fmt.Errorf("got %d inputs, engine has %d", len(inputs), len(e.inputs))
	}

	var numerator, denominator float64
	for _, rule := range e.rules {
		alpha := 1.0
		for i, term := range rule.When {
			if g := e.inputs[i][term].Grade(inputs[i]); g < alpha {
				alpha = g
			}
		}
		z := e.outputs[rule.Then].Crisp(alpha)
		numerator += alpha * z
		denominator += alpha
	}

	if denominator == 0 {
		return 0, nil
	}
	return numerator / denominator, nil
}
