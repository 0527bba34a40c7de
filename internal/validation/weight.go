package validation

import (
	"fmt"
	"math"
)

// Tolerance for weight-sum comparisons. Weights are percentages with two
// decimal places; direct float equality is never used.
const Tolerance = 0.01

// Share of an initiative's weight available to its children.
const (
	MeasureShare  = 0.35
	ActivityShare = 0.65
)

// WeightError rejects a write that would break an allocation rule. It names
// the persisted sibling total, the attempted weight, and the allowed maximum.
type WeightError struct {
	Entity    string
	Current   float64
	Attempted float64
	Max       float64
}

func (e *WeightError) Error() string {
	return fmt.Sprintf("total weight of %s (%g) cannot exceed %g: current total %g plus attempted weight %g",
		e.Entity, e.Current+e.Attempted, e.Max, e.Current, e.Attempted)
}

// Summary reports the aggregate weight state of one allocation level.
type Summary struct {
	Total       float64 `json:"total"`
	ExpectedMax float64 `json:"expected_max"`
	Remaining   float64 `json:"remaining"`
	IsValid     bool    `json:"is_valid"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// MeasureCap is the weight available to performance measures under an
// initiative: 35% of the initiative weight, rounded to 2 decimals.
func MeasureCap(initiativeWeight float64) float64 {
	return round2(initiativeWeight * MeasureShare)
}

// ActivityCap is the weight available to main activities under an
// initiative: 65% of the initiative weight, rounded to 2 decimals.
func ActivityCap(initiativeWeight float64) float64 {
	return round2(initiativeWeight * ActivityShare)
}

// CheckObjectiveWeight validates a single objective weight value.
func CheckObjectiveWeight(w float64) error {
	if w <= 0 {
		return fmt.Errorf("weight must be positive, got %g", w)
	}
	if w > 100 {
		return fmt.Errorf("weight cannot exceed 100, got %g", w)
	}
	return nil
}

// CheckInitiativeWeight admits a candidate initiative weight against the
// persisted sibling total. parentWeight is the objective's effective weight,
// or 100 under a program. The exact-equality requirement for objectives is
// reported on demand via InitiativeSummary, not enforced per write, so
// partially built trees stay editable.
func CheckInitiativeWeight(parentWeight, siblingTotal, w float64) error {
	if w <= 0 {
		return fmt.Errorf("weight must be positive, got %g", w)
	}
	if siblingTotal+w > parentWeight+Tolerance {
		return &WeightError{
			Entity:    "initiatives",
			Current:   siblingTotal,
			Attempted: w,
			Max:       parentWeight,
		}
	}
	return nil
}

// CheckMeasureWeight admits a candidate performance-measure weight.
func CheckMeasureWeight(initiativeWeight, siblingTotal, w float64) error {
	if w <= 0 {
		return fmt.Errorf("weight must be positive, got %g", w)
	}
	max := MeasureCap(initiativeWeight)
	if siblingTotal+w > max+1e-9 {
		return &WeightError{
			Entity:    "performance measures",
			Current:   siblingTotal,
			Attempted: w,
			Max:       max,
		}
	}
	return nil
}

// CheckActivityWeight admits a candidate main-activity weight.
func CheckActivityWeight(initiativeWeight, siblingTotal, w float64) error {
	if w <= 0 {
		return fmt.Errorf("weight must be positive, got %g", w)
	}
	max := ActivityCap(initiativeWeight)
	if siblingTotal+w > max+1e-9 {
		return &WeightError{
			Entity:    "main activities",
			Current:   siblingTotal,
			Attempted: w,
			Max:       max,
		}
	}
	return nil
}

// ObjectiveSummary reports whether all objectives' effective weights reach
// exactly 100.
func ObjectiveSummary(total float64) Summary {
	return Summary{
		Total:       total,
		ExpectedMax: 100,
		Remaining:   100 - total,
		IsValid:     math.Abs(total-100) <= Tolerance,
	}
}

// InitiativeSummary reports the initiative allocation under one parent.
// Under an objective the total must equal the parent's effective weight;
// under a program it must merely not exceed it.
func InitiativeSummary(parentWeight, total float64, underObjective bool) Summary {
	valid := total <= parentWeight+Tolerance
	if underObjective {
		valid = math.Abs(total-parentWeight) <= Tolerance
	}
	return Summary{
		Total:       total,
		ExpectedMax: parentWeight,
		Remaining:   parentWeight - total,
		IsValid:     valid,
	}
}

// MeasureSummary reports the measure allocation under one initiative.
func MeasureSummary(initiativeWeight, total float64) Summary {
	max := MeasureCap(initiativeWeight)
	return Summary{
		Total:       total,
		ExpectedMax: max,
		Remaining:   max - total,
		IsValid:     total <= max+1e-9,
	}
}

// ActivitySummary reports the activity allocation under one initiative.
func ActivitySummary(initiativeWeight, total float64) Summary {
	max := ActivityCap(initiativeWeight)
	return Summary{
		Total:       total,
		ExpectedMax: max,
		Remaining:   max - total,
		IsValid:     total <= max+1e-9,
	}
}
