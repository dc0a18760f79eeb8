// Package vent implements the fuzzy ventilation advisor: it recommends a
// fan power percentage from a temperature and a relative-humidity reading
// using Tsukamoto inference over a fixed 25-rule base.
package vent

import (
	"math"

	"github.com/ventlab/ventctl/internal/errors"
	"github.com/ventlab/ventctl/internal/fuzzy"
)

// Linguistic terms shared by all three variables.
const (
	VeryLow  fuzzy.Term = "very_low"
	Low      fuzzy.Term = "low"
	Medium   fuzzy.Term = "medium"
	High     fuzzy.Term = "high"
	VeryHigh fuzzy.Term = "very_high"
)

// Terms lists the linguistic terms in ascending order.
var Terms = []fuzzy.Term{VeryLow, Low, Medium, High, VeryHigh}

// Humidity and fan power are always expressed as percentages.
const (
	HumidityMin = 0
	HumidityMax = 100
)

// DefaultTempMin and DefaultTempMax bound the default temperature range.
const (
	DefaultTempMin = 0
	DefaultTempMax = 100
)

// overrideFraction is the fraction of the temperature span above which the
// recommendation is forced to full power regardless of the rule base.
const overrideFraction = 0.9

// Reading is one temperature/humidity observation.
type Reading struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
}

// Recommendation is the advisor's output for a reading.
type Recommendation struct {
	// FanPower is the recommended ventilation power in percent.
	FanPower float64 `json:"fan_power"`
	// Overridden is set when the full-power temperature override fired
	// instead of the inferred value.
	Overridden bool `json:"overridden"`
}

// System is a ventilation advisor for a fixed temperature range.
// It is immutable after construction and safe for concurrent use.
type System struct {
	tempMin float64
	tempMax float64
	// upper is the exclusive-style upper bound the membership layout and
	// universes are built against (one past the inclusive maximum).
	upper  float64
	engine *fuzzy.Engine
}

// NewSystem creates a system accepting temperatures in [tempMin, tempMax].
func NewSystem(tempMin, tempMax float64) (*System, error) {
	if tempMin >= tempMax {
		return nil, errors.InvalidTemperatureRange(tempMin, tempMax)
	}

	s := &System{
		tempMin: tempMin,
		tempMax: tempMax,
		upper:   tempMax + 1,
	}

	engine := fuzzy.NewEngine(fanConsequents())
	engine.AddInput(s.temperatureTerms())
	engine.AddInput(humidityTerms())
	for _, r := range ruleBase {
		if err := engine.AddRule(r.fan, r.temp, r.hum); err != nil {
			return nil, err
		}
	}
	s.engine = engine
	return s, nil
}

// NewDefaultSystem creates a system over the default 0..100 range.
func NewDefaultSystem() *System {
	s, err := NewSystem(DefaultTempMin, DefaultTempMax)
	if err != nil {
		// The default range is valid by construction.
		panic(err)
	}
	return s
}

// TempMin returns the inclusive lower temperature bound.
func (s *System) TempMin() float64 { return s.tempMin }

// TempMax returns the inclusive upper temperature bound.
func (s *System) TempMax() float64 { return s.tempMax }

// span is the width of the temperature layout, including the one-past slot.
func (s *System) span() float64 { return s.upper - s.tempMin }

// temperatureTerms lays the five temperature terms out as fractions of the
// span: interior shoulders at 0.2/0.3, 0.3/0.5, 0.5/0.7, 0.7/0.9, with the
// outermost feet pushed far outside the universe.
func (s *System) temperatureTerms() map[fuzzy.Term]fuzzy.MembershipFunc {
	lo, span := s.tempMin, s.span()

	farLeft := lo - math.Pow(s.upper, 4)
	if s.upper <= 10 {
		farLeft = lo - math.Pow(math.Abs(s.upper)+10, 4)
	}

	return map[fuzzy.Term]fuzzy.MembershipFunc{
		VeryLow:  fuzzy.Trapezoid{A: farLeft, B: lo, C: lo + 0.2*span, D: lo + 0.3*span},
		Low:      fuzzy.Trapezoid{A: lo + 0.2*span, B: lo + 0.3*span, C: lo + 0.4*span, D: lo + 0.5*span},
		Medium:   fuzzy.Trapezoid{A: lo + 0.4*span, B: lo + 0.5*span, C: lo + 0.6*span, D: lo + 0.7*span},
		High:     fuzzy.Trapezoid{A: lo + 0.6*span, B: lo + 0.7*span, C: lo + 0.8*span, D: lo + 0.9*span},
		VeryHigh: fuzzy.Trapezoid{A: lo + 0.8*span, B: lo + 0.9*span, C: s.upper, D: s.upper * 10},
	}
}

// TemperatureTerm returns the membership function of one temperature term,
// for chart rendering.
func (s *System) TemperatureTerm(term fuzzy.Term) fuzzy.MembershipFunc {
	return s.temperatureTerms()[term]
}

// percentTermParams is the fixed five-term layout shared by the humidity
// input and the fan output, both percentage scales.
var percentTermParams = map[fuzzy.Term]fuzzy.Trapezoid{
	VeryLow:  {A: -100, B: 0, C: 20, D: 30},
	Low:      {A: 20, B: 30, C: 40, D: 50},
	Medium:   {A: 40, B: 50, C: 60, D: 70},
	High:     {A: 60, B: 70, C: 80, D: 90},
	VeryHigh: {A: 80, B: 90, C: 100, D: 1000},
}

func humidityTerms() map[fuzzy.Term]fuzzy.MembershipFunc {
	terms := make(map[fuzzy.Term]fuzzy.MembershipFunc, len(percentTermParams))
	for term, trap := range percentTermParams {
		terms[term] = trap
	}
	return terms
}

// HumidityTerm returns the membership function of one humidity term.
func HumidityTerm(term fuzzy.Term) fuzzy.MembershipFunc {
	return percentTermParams[term]
}

// FanTerm returns the membership function of one fan power term.
func FanTerm(term fuzzy.Term) fuzzy.MembershipFunc {
	return percentTermParams[term]
}

func fanConsequents() map[fuzzy.Term]fuzzy.Consequent {
	u := fuzzy.NewUniverse(HumidityMin, HumidityMax+1)
	out := make(map[fuzzy.Term]fuzzy.Consequent, len(percentTermParams))
	for term, trap := range percentTermParams {
		out[term] = fuzzy.Consequent{MF: trap, Universe: u}
	}
	return out
}

// Evaluate runs the rule base against a reading without applying the
// full-power override. Inputs are validated against the system's ranges.
func (s *System) Evaluate(r Reading) (float64, error) {
	if r.Temperature < s.tempMin || r.Temperature > s.tempMax {
		return 0, errors.TemperatureOutOfRange(r.Temperature, s.tempMin, s.tempMax)
	}
	if r.Humidity < HumidityMin || r.Humidity > HumidityMax {
		return 0, errors.HumidityOutOfRange(r.Humidity)
	}
	return s.engine.Evaluate(r.Temperature, r.Humidity)
}

// Recommend evaluates a reading and applies the full-power override:
// temperatures in the top tenth of the span always get 100%.
func (s *System) Recommend(r Reading) (Recommendation, error) {
	fan, err := s.Evaluate(r)
	if err != nil {
		return Recommendation{}, err
	}

	rec := Recommendation{FanPower: fan}
	if r.Temperature >= math.Trunc(s.tempMin+overrideFraction*s.span()) {
		rec.FanPower = 100
		rec.Overridden = true
	}
	return rec, nil
}
