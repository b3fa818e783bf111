// Package domain holds the pure charge calculation model: itemized
// charges, fee math, breakdown assembly and reconciliation. All amounts
// are minor currency units (cents). Nothing in this package touches
// storage or the network.
package domain

import "gorm.io/datatypes"

// ChargeCategory identifies what a charge line represents.
type ChargeCategory string

const (
	ChargeCategoryBaseRent        ChargeCategory = "BASE_RENT"
	ChargeCategorySecurityDeposit ChargeCategory = "SECURITY_DEPOSIT"
	ChargeCategoryPetRent         ChargeCategory = "PET_RENT"
	ChargeCategoryPetDeposit      ChargeCategory = "PET_DEPOSIT"
	ChargeCategoryPlatformFee     ChargeCategory = "PLATFORM_FEE"
	ChargeCategoryCreditCardFee   ChargeCategory = "CREDIT_CARD_FEE"
	ChargeCategoryTransferFee     ChargeCategory = "TRANSFER_FEE"
	ChargeCategoryDiscount        ChargeCategory = "DISCOUNT"
)

// principalCategories are the categories that represent rent or deposit
// itself, as opposed to a fee or discount.
var principalCategories = map[ChargeCategory]bool{
	ChargeCategoryBaseRent:        true,
	ChargeCategoryPetRent:         true,
	ChargeCategorySecurityDeposit: true,
	ChargeCategoryPetDeposit:      true,
}

// IsPrincipal reports whether the category counts toward the base amount.
func (c ChargeCategory) IsPrincipal() bool {
	return principalCategories[c]
}

// Charge is a single immutable line item. Metadata records how the
// amount was derived (rates, per-unit factors, proration day counts) and
// is never used in math.
type Charge struct {
	Category    ChargeCategory    `json:"category"`
	AmountCents int64             `json:"amount_cents"`
	IsApplied   bool              `json:"is_applied"`
	Metadata    datatypes.JSONMap `json:"metadata,omitempty"`
}

// ChargeBreakdown is the result of assembling charges for one
// transaction. Charges keep construction order.
type ChargeBreakdown struct {
	Charges          []Charge `json:"charges"`
	BaseAmountCents  int64    `json:"base_amount_cents"`
	TotalAmountCents int64    `json:"total_amount_cents"`
}

// ProrationInfo records partial-month provenance on a base rent charge.
// The amount itself is prorated upstream by the schedule generator; this
// is audit metadata only.
type ProrationInfo struct {
	DaysInMonth  int `json:"days_in_month"`
	DaysToCharge int `json:"days_to_charge"`
}

// TotalFromCharges sums every applied charge, principal, fees and
// discounts alike.
func TotalFromCharges(charges []Charge) int64 {
	var total int64
	for _, charge := range charges {
		if charge.IsApplied {
			total += charge.AmountCents
		}
	}
	return total
}

// BaseFromCharges sums the principal charges only. Fees and discounts
// are excluded regardless of their applied flag.
func BaseFromCharges(charges []Charge) int64 {
	var total int64
	for _, charge := range charges {
		if charge.Category.IsPrincipal() {
			total += charge.AmountCents
		}
	}
	return total
}

// FindChargeByCategory returns the first charge of the given category.
func FindChargeByCategory(charges []Charge, category ChargeCategory) (Charge, bool) {
	for _, charge := range charges {
		if charge.Category == category {
			return charge, true
		}
	}
	return Charge{}, false
}
