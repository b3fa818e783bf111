// Package proration computes partial-month rent amounts.
package proration

// Prorate returns the rent owed for daysToCharge days of a month holding
// daysInMonth days, in minor currency units. Rounding is half away from
// zero and happens exactly once, here. Callers guarantee
// 0 < daysToCharge <= daysInMonth.
func Prorate(monthlyCents int64, daysInMonth, daysToCharge int) int64 {
	numerator := monthlyCents * int64(daysToCharge)
	denominator := int64(daysInMonth)

	quotient := numerator / denominator
	remainder := numerator % denominator
	if remainder < 0 {
		if -2*remainder >= denominator {
			quotient--
		}
		return quotient
	}
	if 2*remainder >= denominator {
		quotient++
	}
	return quotient
}

// DaysInMonth returns the calendar length of a month, leap-aware.
func DaysInMonth(year, month int) int {
	switch month {
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}
