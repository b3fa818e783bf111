package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

// Service prices, persists and reads bookings.
type Service interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*CreateBookingResult, error)
	GetBooking(ctx context.Context, id snowflake.ID) (*Booking, error)
	ListCharges(ctx context.Context, bookingID snowflake.ID, scope ChargeScope) ([]BookingCharge, error)
}

var (
	ErrInvalidListing       = errors.New("invalid_listing")
	ErrInvalidTenant        = errors.New("invalid_tenant")
	ErrInvalidDateRange     = errors.New("invalid_date_range")
	ErrInvalidMonthlyRent   = errors.New("invalid_monthly_rent")
	ErrInvalidDeposit       = errors.New("invalid_deposit")
	ErrInvalidPetTerms      = errors.New("invalid_pet_terms")
	ErrMissingPaymentMethod = errors.New("missing_payment_method")
	ErrBookingNotFound      = errors.New("booking_not_found")
)

// DurationMonths approximates a stay's length in months for fee
// tiering. The count of inclusive days is divided into 30-day blocks,
// rounding up, with a floor of one month.
func DurationMonths(days int) int {
	if days <= 0 {
		return 1
	}
	months := (days + 29) / 30
	if months < 1 {
		return 1
	}
	return months
}
