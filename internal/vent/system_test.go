package vent

import (
	"errors"
	"math"
	"testing"

	venterrors "github.com/ventlab/ventctl/internal/errors"
)

func TestNewSystemValidatesRange(t *testing.T) {
	if _, err := NewSystem(30, -30); err == nil {
		t.Fatal("NewSystem(30, -30): expected error")
	}
	if _, err := NewSystem(10, 10); err == nil {
		t.Fatal("NewSystem(10, 10): expected error")
	}

	s, err := NewSystem(-30, 30)
	if err != nil {
		t.Fatalf("NewSystem(-30, 30) error = %v", err)
	}
	if s.TempMin() != -30 || s.TempMax() != 30 {
		t.Errorf("range = [%v; %v], want [-30; 30]", s.TempMin(), s.TempMax())
	}
}

func TestEvaluateRejectsOutOfRangeReadings(t *testing.T) {
	s := NewDefaultSystem()

	_, err := s.Evaluate(Reading{Temperature: 150, Humidity: 50})
	if !errors.Is(err, venterrors.ErrInput) {
		t.Errorf("temperature 150: err = %v, want ErrInput", err)
	}

	_, err = s.Evaluate(Reading{Temperature: 50, Humidity: -5})
	if !errors.Is(err, venterrors.ErrInput) {
		t.Errorf("humidity -5: err = %v, want ErrInput", err)
	}

	_, err = s.Evaluate(Reading{Temperature: 50, Humidity: 101})
	if !errors.Is(err, venterrors.ErrInput) {
		t.Errorf("humidity 101: err = %v, want ErrInput", err)
	}
}

func TestRecommendCoolRoomLowHumidity(t *testing.T) {
	s := NewDefaultSystem()

	// Cool and dry: only the very_low/very_low rule fires at full
	// strength, which defuzzifies to the bottom of the fan scale.
	rec, err := s.Recommend(Reading{Temperature: 10, Humidity: 10})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if rec.FanPower > 1 {
		t.Errorf("FanPower = %v, want ~0", rec.FanPower)
	}
	if rec.Overridden {
		t.Error("Overridden = true, want false")
	}
}

func TestRecommendHotRoomModerateHumidity(t *testing.T) {
	s := NewDefaultSystem()

	// 80 degrees sits on the "high" plateau and 60% humidity on the
	// "medium" plateau, so the high-fan rule fires alone at strength 1.
	rec, err := s.Recommend(Reading{Temperature: 80, Humidity: 60})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if math.Abs(rec.FanPower-70) > 0.5 {
		t.Errorf("FanPower = %v, want ~70", rec.FanPower)
	}
	if rec.Overridden {
		t.Error("Overridden = true, want false")
	}
}

func TestRecommendTopDecileOverride(t *testing.T) {
	s := NewDefaultSystem()

	rec, err := s.Recommend(Reading{Temperature: 95, Humidity: 20})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if rec.FanPower != 100 {
		t.Errorf("FanPower = %v, want 100", rec.FanPower)
	}
	if !rec.Overridden {
		t.Error("Overridden = false, want true")
	}
}

func TestRecommendOverrideOnCustomRange(t *testing.T) {
	s, err := NewSystem(-30, 30)
	if err != nil {
		t.Fatalf("NewSystem() error = %v", err)
	}

	// The override threshold for [-30; 30] truncates to 24 degrees.
	rec, err := s.Recommend(Reading{Temperature: 25, Humidity: 0})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if !rec.Overridden || rec.FanPower != 100 {
		t.Errorf("Recommend(25, 0) = %+v, want overridden 100", rec)
	}

	rec, err = s.Recommend(Reading{Temperature: 20, Humidity: 0})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if rec.Overridden {
		t.Errorf("Recommend(20, 0) = %+v, want no override", rec)
	}
}

func TestHumidityDrivesFanAtFixedTemperature(t *testing.T) {
	s := NewDefaultSystem()

	dry, err := s.Evaluate(Reading{Temperature: 30, Humidity: 30})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	humid, err := s.Evaluate(Reading{Temperature: 30, Humidity: 80})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	if humid <= dry {
		t.Errorf("fan at 80%% humidity (%v) not above fan at 30%% humidity (%v)", humid, dry)
	}
}

func TestTemperatureDrivesFanAtFixedHumidity(t *testing.T) {
	s := NewDefaultSystem()

	cool, err := s.Evaluate(Reading{Temperature: 20, Humidity: 50})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	warm, err := s.Evaluate(Reading{Temperature: 75, Humidity: 50})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	if warm <= cool {
		t.Errorf("fan at 75 degrees (%v) not above fan at 20 degrees (%v)", warm, cool)
	}
}

func TestRuleBaseCoversAllCombinations(t *testing.T) {
	seen := make(map[[2]string]bool)
	for _, r := range ruleBase {
		key := [2]string{string(r.temp), string(r.hum)}
		if seen[key] {
			t.Errorf("duplicate rule for (%s, %s)", r.temp, r.hum)
		}
		seen[key] = true
	}
	if len(seen) != len(Terms)*len(Terms) {
		t.Errorf("rule base covers %d combinations, want %d", len(seen), len(Terms)*len(Terms))
	}
}

func TestTermAccessors(t *testing.T) {
	s := NewDefaultSystem()

	for _, term := range Terms {
		if s.TemperatureTerm(term) == nil {
			t.Errorf("TemperatureTerm(%s) = nil", term)
		}
		if HumidityTerm(term) == nil {
			t.Errorf("HumidityTerm(%s) = nil", term)
		}
		if FanTerm(term) == nil {
			t.Errorf("FanTerm(%s) = nil", term)
		}
	}
}
