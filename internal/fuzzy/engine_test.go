package fuzzy

import (
	"math"
	"testing"
)

func testOutputs() map[Term]Consequent {
	u := NewUniverse(0, 100)
	return map[Term]Consequent{
		"low":  {MF: Trapezoid{A: -100, B: 0, C: 20, D: 30}, Universe: u},
		"high": {MF: Trapezoid{A: 60, B: 70, C: 100, D: 1000}, Universe: u},
	}
}

func TestConsequentCrispAscending(t *testing.T) {
	c := Consequent{
		MF:       Trapezoid{A: 60, B: 70, C: 100, D: 1000},
		Universe: NewUniverse(0, 100),
	}

	// Full firing strength lands at the start of the plateau.
	z := c.Crisp(1)
	if math.Abs(z-70) > 0.5 {
		t.Errorf("Crisp(1) = %v, want ~70", z)
	}

	// Half strength lands halfway up the rising edge.
	z = c.Crisp(0.5)
	if math.Abs(z-65) > 0.5 {
		t.Errorf("Crisp(0.5) = %v, want ~65", z)
	}

	// Zero strength matches the first sample of the universe.
	z = c.Crisp(0)
	if z != 0 {
		t.Errorf("Crisp(0) = %v, want 0", z)
	}
}

func TestConsequentCrispDescending(t *testing.T) {
	c := Consequent{
		MF:         Trapezoid{A: -1000, B: 0, C: 30, D: 40},
		Universe:   NewUniverse(0, 100),
		Descending: true,
	}

	z := c.Crisp(1)
	if math.Abs(z-30) > 0.5 {
		t.Errorf("Crisp(1) = %v, want ~30", z)
	}
}

func TestConsequentCrispFallback(t *testing.T) {
	// A membership function that never reaches the firing strength
	// falls back to the universe midpoint.
	c := Consequent{
		MF:       Trapezoid{A: 200, B: 300, C: 400, D: 500},
		Universe: NewUniverse(0, 100),
	}

	z := c.Crisp(0.9)
	if math.Abs(z-50) > tolerance {
		t.Errorf("Crisp(0.9) = %v, want universe mean 50", z)
	}
}

func TestEngineAddRuleValidation(t *testing.T) {
	e := NewEngine(testOutputs())
	e.AddInput(map[Term]MembershipFunc{
		"cold": Trapezoid{A: -100, B: 0, C: 20, D: 30},
		"hot":  Trapezoid{A: 60, B: 70, C: 100, D: 1000},
	})

	if err := e.AddRule("low", "cold"); err != nil {
		t.Errorf("AddRule(low, cold) error = %v", err)
	}
	if err := e.AddRule("low", "cold", "cold"); err == nil {
		t.Error("AddRule with wrong arity: expected error")
	}
	if err := e.AddRule("low", "scorching"); err == nil {
		t.Error("AddRule with unknown input term: expected error")
	}
	if err := e.AddRule("lukewarm", "cold"); err == nil {
		t.Error("AddRule with unknown output term: expected error")
	}
}

func TestEngineEvaluate(t *testing.T) {
	e := NewEngine(testOutputs())
	e.AddInput(map[Term]MembershipFunc{
		"cold": Trapezoid{A: -100, B: 0, C: 20, D: 30},
		"hot":  Trapezoid{A: 60, B: 70, C: 100, D: 1000},
	})
	if err := e.AddRule("low", "cold"); err != nil {
		t.Fatalf("AddRule() error = %v", err)
	}
	if err := e.AddRule("high", "hot"); err != nil {
		t.Fatalf("AddRule() error = %v", err)
	}

	// Fully cold: only the "low" rule fires at strength 1, so the result
	// is the start of the low plateau scanned from the left, i.e. 0.
	got, err := e.Evaluate(10)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if math.Abs(got-0) > 0.5 {
		t.Errorf("Evaluate(10) = %v, want ~0", got)
	}

	// Fully hot: only "high" fires at strength 1.
	got, err = e.Evaluate(80)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if math.Abs(got-70) > 0.5 {
		t.Errorf("Evaluate(80) = %v, want ~70", got)
	}
}

func TestEngineEvaluateNoRuleFires(t *testing.T) {
	e := NewEngine(testOutputs())
	e.AddInput(map[Term]MembershipFunc{
		"cold": Trapezoid{A: -100, B: 0, C: 20, D: 30},
	})
	if err := e.AddRule("low", "cold"); err != nil {
		t.Fatalf("AddRule() error = %v", err)
	}

	// Input far outside every antecedent's support.
	got, err := e.Evaluate(90)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if got != 0 {
		t.Errorf("Evaluate(90) = %v, want 0 when no rule fires", got)
	}
}

func TestEngineEvaluateArityMismatch(t *testing.T) {
	e := NewEngine(testOutputs())
	e.AddInput(map[Term]MembershipFunc{
		"cold": Trapezoid{A: -100, B: 0, C: 20, D: 30},
	})

	if _, err := e.Evaluate(1, 2); err == nil {
		t.Error("Evaluate with wrong arity: expected error")
	}
}
