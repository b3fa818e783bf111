package domain

import (
	"testing"
	"time"
)

const testBookingID = 7351234567890

var (
	testPaymentMethodID = "pm_test_123"
	testAuthorizedAt    = time.Date(2025, time.January, 10, 12, 0, 0, 0, time.UTC)
)

func generate(t *testing.T, monthlyRent int64, start, end time.Time) []RentPayment {
	t.Helper()
	return GeneratePayments(testBookingID, monthlyRent, start, end, testPaymentMethodID, testAuthorizedAt)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateMidMonthToMidMonth(t *testing.T) {
	payments := generate(t, 1000, day(2025, time.January, 15), day(2025, time.February, 15))

	if len(payments) != 2 {
		t.Fatalf("expected 2 payments, got %d", len(payments))
	}

	// Jan 15-31 is 17 of 31 days.
	if payments[0].AmountCents != 548 {
		t.Fatalf("expected first payment 548, got %d", payments[0].AmountCents)
	}
	if !payments[0].DueDate.Equal(day(2025, time.January, 15)) {
		t.Fatalf("expected first due Jan 15, got %s", payments[0].DueDate)
	}
	if payments[0].PaymentAuthorizedAt == nil {
		t.Fatalf("expected first payment pre-authorized")
	}

	// Feb 1-15 is 15 of 28 days.
	if payments[1].AmountCents != 536 {
		t.Fatalf("expected second payment 536, got %d", payments[1].AmountCents)
	}
	if !payments[1].DueDate.Equal(day(2025, time.February, 1)) {
		t.Fatalf("expected second due Feb 1, got %s", payments[1].DueDate)
	}
	if payments[1].PaymentAuthorizedAt != nil {
		t.Fatalf("expected second payment unauthorized")
	}
}

func TestGenerateLeapYearFebruary(t *testing.T) {
	payments := generate(t, 1000, day(2024, time.January, 15), day(2024, time.February, 15))

	if len(payments) != 2 {
		t.Fatalf("expected 2 payments, got %d", len(payments))
	}
	if payments[0].AmountCents != 548 {
		t.Fatalf("expected first payment 548, got %d", payments[0].AmountCents)
	}
	// Feb 1-15 is 15 of 29 days in 2024.
	if payments[1].AmountCents != 517 {
		t.Fatalf("expected second payment 517, got %d", payments[1].AmountCents)
	}
}

func TestGenerateSingleProratedFirstMonth(t *testing.T) {
	payments := generate(t, 1000, day(2025, time.January, 15), day(2025, time.January, 31))
	if len(payments) != 1 {
		t.Fatalf("expected 1 payment, got %d", len(payments))
	}
	if payments[0].AmountCents != 548 {
		t.Fatalf("expected 548, got %d", payments[0].AmountCents)
	}

	late := generate(t, 1000, day(2025, time.January, 25), day(2025, time.January, 31))
	if len(late) != 1 || late[0].AmountCents != 226 {
		t.Fatalf("expected single payment of 226, got %+v", late)
	}

	almostFull := generate(t, 1000, day(2025, time.January, 2), day(2025, time.January, 31))
	if len(almostFull) != 1 || almostFull[0].AmountCents != 968 {
		t.Fatalf("expected single payment of 968, got %+v", almostFull)
	}
}

func TestGenerateFullMonths(t *testing.T) {
	single := generate(t, 1000, day(2025, time.January, 1), day(2025, time.January, 31))
	if len(single) != 1 || single[0].AmountCents != 1000 {
		t.Fatalf("expected one full payment, got %+v", single)
	}

	three := generate(t, 1000, day(2025, time.January, 1), day(2025, time.March, 31))
	if len(three) != 3 {
		t.Fatalf("expected 3 payments, got %d", len(three))
	}
	for i, payment := range three {
		if payment.AmountCents != 1000 {
			t.Fatalf("expected full amount at index %d, got %d", i, payment.AmountCents)
		}
	}
	if !three[1].DueDate.Equal(day(2025, time.February, 1)) {
		t.Fatalf("expected second due Feb 1, got %s", three[1].DueDate)
	}
	if !three[2].DueDate.Equal(day(2025, time.March, 1)) {
		t.Fatalf("expected third due Mar 1, got %s", three[2].DueDate)
	}

	fullFeb := generate(t, 1000, day(2025, time.February, 1), day(2025, time.February, 28))
	if len(fullFeb) != 1 || fullFeb[0].AmountCents != 1000 {
		t.Fatalf("expected full non-leap February, got %+v", fullFeb)
	}

	fullLeapFeb := generate(t, 1000, day(2024, time.February, 1), day(2024, time.February, 29))
	if len(fullLeapFeb) != 1 || fullLeapFeb[0].AmountCents != 1000 {
		t.Fatalf("expected full leap February, got %+v", fullLeapFeb)
	}
}

func TestGenerateLastMonthProration(t *testing.T) {
	single := generate(t, 1000, day(2025, time.February, 1), day(2025, time.February, 15))
	if len(single) != 1 || single[0].AmountCents != 536 {
		t.Fatalf("expected single prorated payment of 536, got %+v", single)
	}

	multi := generate(t, 1000, day(2025, time.January, 1), day(2025, time.February, 15))
	if len(multi) != 2 {
		t.Fatalf("expected 2 payments, got %d", len(multi))
	}
	if multi[0].AmountCents != 1000 {
		t.Fatalf("expected full January, got %d", multi[0].AmountCents)
	}
	if multi[1].AmountCents != 536 {
		t.Fatalf("expected prorated February 536, got %d", multi[1].AmountCents)
	}
}

func TestGenerateFebruaryEdgeCases(t *testing.T) {
	nonLeap := generate(t, 1000, day(2025, time.February, 15), day(2025, time.February, 28))
	if len(nonLeap) != 1 || nonLeap[0].AmountCents != 500 {
		t.Fatalf("expected 14 of 28 days = 500, got %+v", nonLeap)
	}

	leap := generate(t, 1000, day(2024, time.February, 15), day(2024, time.February, 29))
	if len(leap) != 1 || leap[0].AmountCents != 517 {
		t.Fatalf("expected 15 of 29 days = 517, got %+v", leap)
	}

	// Feb 28 is not the last day of a leap February, so it prorates.
	leapShortEnd := generate(t, 1000, day(2024, time.February, 1), day(2024, time.February, 28))
	if len(leapShortEnd) != 1 || leapShortEnd[0].AmountCents != 966 {
		t.Fatalf("expected 28 of 29 days = 966, got %+v", leapShortEnd)
	}

	lateLeap := generate(t, 1000, day(2024, time.February, 20), day(2024, time.February, 29))
	if len(lateLeap) != 1 || lateLeap[0].AmountCents != 345 {
		t.Fatalf("expected 10 of 29 days = 345, got %+v", lateLeap)
	}
}

func TestGenerateThirtyDayMonths(t *testing.T) {
	april := generate(t, 1000, day(2025, time.April, 15), day(2025, time.April, 30))
	if len(april) != 1 || april[0].AmountCents != 533 {
		t.Fatalf("expected 16 of 30 days = 533, got %+v", april)
	}

	june := generate(t, 1000, day(2025, time.June, 1), day(2025, time.June, 20))
	if len(june) != 1 || june[0].AmountCents != 667 {
		t.Fatalf("expected 20 of 30 days = 667, got %+v", june)
	}
}

func TestGenerateLongTermBooking(t *testing.T) {
	payments := generate(t, 1000, day(2025, time.January, 15), day(2025, time.July, 15))

	if len(payments) != 7 {
		t.Fatalf("expected 7 payments, got %d", len(payments))
	}
	if payments[0].AmountCents != 548 {
		t.Fatalf("expected prorated first month 548, got %d", payments[0].AmountCents)
	}
	for i := 1; i <= 5; i++ {
		if payments[i].AmountCents != 1000 {
			t.Fatalf("expected full month at index %d, got %d", i, payments[i].AmountCents)
		}
	}
	// Jul 1-15 is 15 of 31 days.
	if payments[6].AmountCents != 484 {
		t.Fatalf("expected prorated last month 484, got %d", payments[6].AmountCents)
	}
	if !payments[6].DueDate.Equal(day(2025, time.July, 1)) {
		t.Fatalf("expected last due Jul 1, got %s", payments[6].DueDate)
	}
}

func TestGenerateFullYear(t *testing.T) {
	payments := generate(t, 1000, day(2025, time.January, 1), day(2025, time.December, 31))
	if len(payments) != 12 {
		t.Fatalf("expected 12 payments, got %d", len(payments))
	}
	for i, payment := range payments {
		if payment.AmountCents != 1000 {
			t.Fatalf("expected full amount at index %d, got %d", i, payment.AmountCents)
		}
	}
}

func TestGenerateVeryShortStays(t *testing.T) {
	january := generate(t, 1000, day(2025, time.January, 28), day(2025, time.January, 31))
	if len(january) != 1 || january[0].AmountCents != 129 {
		t.Fatalf("expected 4 of 31 days = 129, got %+v", january)
	}

	february := generate(t, 1000, day(2025, time.February, 25), day(2025, time.February, 28))
	if len(february) != 1 || february[0].AmountCents != 143 {
		t.Fatalf("expected 4 of 28 days = 143, got %+v", february)
	}
}

func TestGenerateRecordMetadata(t *testing.T) {
	payments := generate(t, 1000, day(2025, time.January, 15), day(2025, time.March, 15))

	if len(payments) != 3 {
		t.Fatalf("expected 3 payments, got %d", len(payments))
	}

	authorized := 0
	for i, payment := range payments {
		if payment.BookingID != testBookingID {
			t.Fatalf("payment %d has wrong booking id %d", i, payment.BookingID)
		}
		if payment.StripePaymentMethodID != testPaymentMethodID {
			t.Fatalf("payment %d has wrong payment method %q", i, payment.StripePaymentMethodID)
		}
		if payment.Type != RentPaymentTypeMonthlyRent {
			t.Fatalf("payment %d has wrong type %q", i, payment.Type)
		}
		if payment.PaymentAuthorizedAt != nil {
			authorized++
		}
	}
	if authorized != 1 {
		t.Fatalf("expected exactly one authorized payment, got %d", authorized)
	}
	if payments[0].PaymentAuthorizedAt == nil {
		t.Fatalf("expected the first payment to be the authorized one")
	}
	if !payments[0].PaymentAuthorizedAt.Equal(testAuthorizedAt) {
		t.Fatalf("expected authorization timestamp %s, got %s", testAuthorizedAt, payments[0].PaymentAuthorizedAt)
	}
}
