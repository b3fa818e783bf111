package domain

import (
	"math"

	"gorm.io/datatypes"
)

// Calculator builds charges from a fee configuration. Every method is a
// pure constructor: identical inputs always produce identical charges.
type Calculator struct {
	cfg FeeConfig
}

// NewCalculator constructs a charge calculator, filling any missing fee
// rates with production defaults.
func NewCalculator(cfg FeeConfig) *Calculator {
	return &Calculator{cfg: cfg.withDefaults()}
}

// Config exposes the effective fee schedule.
func (calc *Calculator) Config() FeeConfig {
	return calc.cfg
}

// BaseRentCharge builds the base rent line. Proration of the amount
// itself happens upstream; info is recorded as provenance only.
func (calc *Calculator) BaseRentCharge(amountCents int64, info *ProrationInfo) Charge {
	var metadata datatypes.JSONMap
	if info != nil {
		metadata = datatypes.JSONMap{
			"days_in_month":  info.DaysInMonth,
			"days_to_charge": info.DaysToCharge,
		}
	}
	return Charge{
		Category:    ChargeCategoryBaseRent,
		AmountCents: amountCents,
		IsApplied:   true,
		Metadata:    metadata,
	}
}

// SecurityDepositCharge builds the security deposit line.
func (calc *Calculator) SecurityDepositCharge(amountCents int64) Charge {
	return Charge{
		Category:    ChargeCategorySecurityDeposit,
		AmountCents: amountCents,
		IsApplied:   true,
	}
}

// PetRentCharge multiplies a per-pet monthly rate by the pet count.
func (calc *Calculator) PetRentCharge(petCount int, perPetCents int64) Charge {
	return Charge{
		Category:    ChargeCategoryPetRent,
		AmountCents: int64(petCount) * perPetCents,
		IsApplied:   true,
		Metadata: datatypes.JSONMap{
			"pet_count":     petCount,
			"per_pet_cents": perPetCents,
		},
	}
}

// PetDepositCharge multiplies a per-pet deposit rate by the pet count.
func (calc *Calculator) PetDepositCharge(petCount int, perPetCents int64) Charge {
	return Charge{
		Category:    ChargeCategoryPetDeposit,
		AmountCents: int64(petCount) * perPetCents,
		IsApplied:   true,
		Metadata: datatypes.JSONMap{
			"pet_count":     petCount,
			"per_pet_cents": perPetCents,
		},
	}
}

// PlatformFeeCharge builds the tiered service fee on a principal base.
// The security deposit never feeds this base.
func (calc *Calculator) PlatformFeeCharge(baseCents int64, durationMonths int) Charge {
	rate, tier := calc.cfg.serviceFeeRate(durationMonths)
	return Charge{
		Category:    ChargeCategoryPlatformFee,
		AmountCents: int64(math.Round(float64(baseCents) * rate)),
		IsApplied:   true,
		Metadata: datatypes.JSONMap{
			"rate":            rate * percentMultiplier,
			"duration_months": durationMonths,
			"rate_type":       tier,
		},
	}
}

// CreditCardFeeCharge builds the processor fee using the self-inclusive
// formula: the total is grossed up so that after the processor deducts
// its percentage, exactly baseCents remains.
func (calc *Calculator) CreditCardFeeCharge(baseCents int64) Charge {
	return calc.CreditCardFeeChargeApplied(baseCents, true)
}

// CreditCardFeeChargeApplied is the variant with an explicit applied
// flag, so the fee can be itemized for display without being charged.
func (calc *Calculator) CreditCardFeeChargeApplied(baseCents int64, isApplied bool) Charge {
	totalWithFee := int64(math.Round(float64(baseCents) / (1 - calc.cfg.CardFeeRate)))
	return Charge{
		Category:    ChargeCategoryCreditCardFee,
		AmountCents: totalWithFee - baseCents,
		IsApplied:   isApplied,
		Metadata: datatypes.JSONMap{
			"rate":              calc.cfg.CardFeeRate * percentMultiplier,
			"base_amount_cents": baseCents,
			"calculation":       "self_inclusive",
		},
	}
}

// TransferFeeCharge builds the flat deposit transfer fee. It applies
// regardless of payment method.
func (calc *Calculator) TransferFeeCharge() Charge {
	return Charge{
		Category:    ChargeCategoryTransferFee,
		AmountCents: calc.cfg.TransferFeeCents,
		IsApplied:   true,
		Metadata: datatypes.JSONMap{
			"flat_fee": true,
		},
	}
}

// DiscountCharge builds a discount line. The stored amount is always
// negative: a positive magnitude is negated, an already-negative value
// is kept as-is.
func (calc *Calculator) DiscountCharge(amountCents int64, reason string) Charge {
	if amountCents > 0 {
		amountCents = -amountCents
	}
	metadata := datatypes.JSONMap{}
	if reason != "" {
		metadata["reason"] = reason
	}
	return Charge{
		Category:    ChargeCategoryDiscount,
		AmountCents: amountCents,
		IsApplied:   true,
		Metadata:    metadata,
	}
}
