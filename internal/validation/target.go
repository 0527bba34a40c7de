package validation

import (
	"fmt"
	"strconv"
	"strings"

	"planning-backend/internal/model"
)

// TargetError identifies the target-schedule rule a write violated and the
// field that broke it.
type TargetError struct {
	Field  string
	Reason string
}

func (e *TargetError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ValidateTargets checks quarterly/annual target consistency for one measure
// or activity. The baseline is free text; when it does not parse as a number
// the baseline comparison is skipped, which is not an error.
func ValidateTargets(targetType, baseline string, q1, q2, q3, q4, annual float64) error {
	switch targetType {
	case model.TargetCumulative:
		// Exact sum, no tolerance.
		if q1+q2+q3+q4 != annual {
			return &TargetError{
				Field:  "annual_target",
				Reason: fmt.Sprintf("for cumulative targets, sum of quarterly targets (%g) must equal annual target (%g)", q1+q2+q3+q4, annual),
			}
		}
	case model.TargetIncreasing:
		if b, ok := parseBaseline(baseline); ok && q1 < b {
			return &TargetError{
				Field:  "q1_target",
				Reason: fmt.Sprintf("for increasing targets, Q1 target (%g) must equal or exceed baseline (%g)", q1, b),
			}
		}
		if !(q1 <= q2 && q2 <= q3 && q3 <= q4) {
			return &TargetError{
				Field:  "q1_target",
				Reason: "for increasing targets, quarterly targets must be in ascending order (Q1 <= Q2 <= Q3 <= Q4)",
			}
		}
		if q4 != annual {
			return &TargetError{
				Field:  "q4_target",
				Reason: fmt.Sprintf("for increasing targets, Q4 target (%g) must equal annual target (%g)", q4, annual),
			}
		}
	case model.TargetDecreasing:
		if b, ok := parseBaseline(baseline); ok && q1 > b {
			return &TargetError{
				Field:  "q1_target",
				Reason: fmt.Sprintf("for decreasing targets, Q1 target (%g) must not exceed baseline (%g)", q1, b),
			}
		}
		if !(q1 >= q2 && q2 >= q3 && q3 >= q4) {
			return &TargetError{
				Field:  "q1_target",
				Reason: "for decreasing targets, quarterly targets must be in descending order (Q1 >= Q2 >= Q3 >= Q4)",
			}
		}
		if q4 != annual {
			return &TargetError{
				Field:  "q4_target",
				Reason: fmt.Sprintf("for decreasing targets, Q4 target (%g) must equal annual target (%g)", q4, annual),
			}
		}
	case model.TargetConstant:
		if q1 != annual || q2 != annual || q3 != annual || q4 != annual {
			return &TargetError{
				Field:  "annual_target",
				Reason: "for constant targets, all quarterly targets must equal annual target",
			}
		}
	default:
		return &TargetError{
			Field:  "target_type",
			Reason: fmt.Sprintf("unknown target type %q", targetType),
		}
	}
	return nil
}

// ValidatePeriods requires at least one selected month or quarter.
func ValidatePeriods(months, quarters []string) error {
	if len(months) == 0 && len(quarters) == 0 {
		return &TargetError{
			Field:  "selected_months",
			Reason: "at least one month or quarter must be selected",
		}
	}
	return nil
}

func parseBaseline(baseline string) (float64, bool) {
	s := strings.TrimSpace(baseline)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
