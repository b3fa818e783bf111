package domain

import "testing"

func TestValidateBreakdownExactMatch(t *testing.T) {
	breakdown := testCalculator().BuildDepositCharges(DepositParams{SecurityDepositCents: 100000})
	result := ValidateBreakdown(breakdown.Charges, breakdown.TotalAmountCents)
	if !result.Valid {
		t.Fatalf("expected valid result, difference %d", result.DifferenceCents)
	}
	if result.DifferenceCents != 0 {
		t.Fatalf("expected zero difference, got %d", result.DifferenceCents)
	}
}

func TestValidateBreakdownOneCentTolerance(t *testing.T) {
	breakdown := testCalculator().BuildDepositCharges(DepositParams{SecurityDepositCents: 100000})

	over := ValidateBreakdown(breakdown.Charges, breakdown.TotalAmountCents+1)
	if !over.Valid {
		t.Fatalf("expected 1-cent discrepancy to validate")
	}
	under := ValidateBreakdown(breakdown.Charges, breakdown.TotalAmountCents-1)
	if !under.Valid {
		t.Fatalf("expected 1-cent discrepancy to validate in either direction")
	}
}

func TestValidateBreakdownTwoCentsFails(t *testing.T) {
	breakdown := testCalculator().BuildDepositCharges(DepositParams{SecurityDepositCents: 100000})
	result := ValidateBreakdown(breakdown.Charges, breakdown.TotalAmountCents+2)
	if result.Valid {
		t.Fatalf("expected 2-cent discrepancy to fail")
	}
	if result.DifferenceCents != 2 {
		t.Fatalf("expected difference 2, got %d", result.DifferenceCents)
	}
}

func TestValidateBreakdownIgnoresUnappliedCharges(t *testing.T) {
	calc := testCalculator()
	charges := []Charge{
		calc.SecurityDepositCharge(100000),
		calc.TransferFeeCharge(),
		calc.CreditCardFeeChargeApplied(100700, false),
	}
	result := ValidateBreakdown(charges, 100700)
	if !result.Valid {
		t.Fatalf("expected unapplied card fee to be excluded, difference %d", result.DifferenceCents)
	}
}
