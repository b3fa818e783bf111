package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// Service persists and reads generated rent calendars.
type Service interface {
	CreateScheduleTx(ctx context.Context, tx *gorm.DB, payments []RentPayment) ([]RentPayment, error)
	ListByBooking(ctx context.Context, bookingID snowflake.ID) ([]RentPayment, error)
}

var (
	ErrInvalidBookingID = errors.New("invalid_booking_id")
	ErrEmptySchedule    = errors.New("empty_schedule")
	ErrScheduleExists   = errors.New("schedule_exists")
)
