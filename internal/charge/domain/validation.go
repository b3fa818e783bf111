package domain

// ValidationResult reports whether an itemized charge list reconciles
// with an independently expected total.
type ValidationResult struct {
	Valid            bool  `json:"valid"`
	ActualTotalCents int64 `json:"actual_total_cents"`
	DifferenceCents  int64 `json:"difference_cents"`
}

// toleranceCents absorbs independent per-component rounding.
const toleranceCents = 1

// ValidateBreakdown recomputes the sum of applied charges and compares
// it to the expected total. It is a read-only diagnostic and never
// mutates or rejects a breakdown itself.
func ValidateBreakdown(charges []Charge, expectedTotalCents int64) ValidationResult {
	actual := TotalFromCharges(charges)
	difference := actual - expectedTotalCents
	if difference < 0 {
		difference = -difference
	}
	return ValidationResult{
		Valid:            difference <= toleranceCents,
		ActualTotalCents: actual,
		DifferenceCents:  difference,
	}
}
