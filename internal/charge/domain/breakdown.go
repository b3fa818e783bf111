package domain

// DepositParams describe a one-time deposit transaction.
type DepositParams struct {
	SecurityDepositCents  int64
	PetCount              int
	PetDepositPerPetCents int64
	IncludeCardFee        bool
	// CardFeePreviewOnly lists the card fee without applying it, so
	// totals reflect a non-card payment while the fee stays visible.
	CardFeePreviewOnly bool
}

// MonthlyRentParams describe one recurring rent collection.
type MonthlyRentParams struct {
	BaseRentCents      int64
	PetCount           int
	PetRentPerPetCents int64
	DurationMonths     int
	IncludeCardFee     bool
	CardFeePreviewOnly bool
	Proration          *ProrationInfo
}

// BuildDepositCharges assembles the itemized breakdown for the one-time
// deposit transaction: security deposit, optional pet deposit, the flat
// transfer fee, and optionally the self-inclusive card fee computed on
// everything charged so far.
func (calc *Calculator) BuildDepositCharges(params DepositParams) ChargeBreakdown {
	charges := []Charge{calc.SecurityDepositCharge(params.SecurityDepositCents)}

	if params.PetCount > 0 && params.PetDepositPerPetCents > 0 {
		charges = append(charges, calc.PetDepositCharge(params.PetCount, params.PetDepositPerPetCents))
	}

	charges = append(charges, calc.TransferFeeCharge())

	if params.IncludeCardFee {
		charges = append(charges, calc.CreditCardFeeChargeApplied(TotalFromCharges(charges), !params.CardFeePreviewOnly))
	}

	return assembleBreakdown(charges)
}

// BuildMonthlyRentCharges assembles the itemized breakdown for one
// monthly rent payment: base rent (already prorated upstream when
// applicable), optional pet rent, the tiered platform fee on the
// principal, and optionally the self-inclusive card fee on principal
// plus platform fee.
func (calc *Calculator) BuildMonthlyRentCharges(params MonthlyRentParams) ChargeBreakdown {
	charges := []Charge{calc.BaseRentCharge(params.BaseRentCents, params.Proration)}

	if params.PetCount > 0 && params.PetRentPerPetCents > 0 {
		charges = append(charges, calc.PetRentCharge(params.PetCount, params.PetRentPerPetCents))
	}

	principal := BaseFromCharges(charges)
	charges = append(charges, calc.PlatformFeeCharge(principal, params.DurationMonths))

	if params.IncludeCardFee {
		charges = append(charges, calc.CreditCardFeeChargeApplied(TotalFromCharges(charges), !params.CardFeePreviewOnly))
	}

	return assembleBreakdown(charges)
}

// assembleBreakdown derives both totals by independent summation. The
// two figures are never computed from each other, so per-line rounding
// cannot make them diverge silently.
func assembleBreakdown(charges []Charge) ChargeBreakdown {
	return ChargeBreakdown{
		Charges:          charges,
		BaseAmountCents:  BaseFromCharges(charges),
		TotalAmountCents: TotalFromCharges(charges),
	}
}
