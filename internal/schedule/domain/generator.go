package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/stayloop/leasebill/internal/proration"
)

// GeneratePayments walks the booking date range month by month and
// returns the full rent calendar in due-date order. Amounts are minor
// currency units, rounded per period with no carry between periods.
//
// The first record is due on the start date and carries authorizedAt as
// its pre-authorization timestamp; every later record is due on the 1st
// of its month and is left unauthorized for the external recurring
// charge process. Both endpoint dates are inclusive. Callers guarantee
// start <= end.
func GeneratePayments(
	bookingID snowflake.ID,
	monthlyRentCents int64,
	startDate time.Time,
	endDate time.Time,
	paymentMethodID string,
	authorizedAt time.Time,
) []RentPayment {
	payments := make([]RentPayment, 0, monthSpan(startDate, endDate))

	startYear, startMonth, startDay := startDate.Date()
	endYear, endMonth, endDay := endDate.Date()

	daysInStartMonth := proration.DaysInMonth(startYear, int(startMonth))
	endsInStartMonth := startYear == endYear && startMonth == endMonth

	firstAmount := monthlyRentCents
	switch {
	case startDay != 1:
		daysToCharge := daysInStartMonth - startDay + 1
		if endsInStartMonth {
			daysToCharge = endDay - startDay + 1
		}
		firstAmount = proration.Prorate(monthlyRentCents, daysInStartMonth, daysToCharge)
	case endsInStartMonth && endDay < daysInStartMonth:
		firstAmount = proration.Prorate(monthlyRentCents, daysInStartMonth, endDay)
	}

	payments = append(payments, RentPayment{
		BookingID:             bookingID,
		AmountCents:           firstAmount,
		DueDate:               dateOnly(startYear, startMonth, startDay),
		Type:                  RentPaymentTypeMonthlyRent,
		PaymentAuthorizedAt:   &authorizedAt,
		StripePaymentMethodID: paymentMethodID,
	})

	cursor := dateOnly(startYear, startMonth+1, 1)
	for !cursor.After(endDate) {
		year, month, _ := cursor.Date()
		daysInMonth := proration.DaysInMonth(year, int(month))

		amount := monthlyRentCents
		if year == endYear && month == endMonth && endDay < daysInMonth {
			amount = proration.Prorate(monthlyRentCents, daysInMonth, endDay)
		}

		payments = append(payments, RentPayment{
			BookingID:             bookingID,
			AmountCents:           amount,
			DueDate:               cursor,
			Type:                  RentPaymentTypeMonthlyRent,
			StripePaymentMethodID: paymentMethodID,
		})

		cursor = dateOnly(year, month+1, 1)
	}

	return payments
}

// dateOnly normalizes to midnight UTC; due dates carry no time-of-day
// significance.
func dateOnly(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func monthSpan(start, end time.Time) int {
	months := int(end.Month()) - int(start.Month()) + 12*(end.Year()-start.Year()) + 1
	if months < 1 {
		months = 1
	}
	return months
}
