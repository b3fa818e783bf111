package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	chargedomain "github.com/stayloop/leasebill/internal/charge/domain"
	scheduledomain "github.com/stayloop/leasebill/internal/schedule/domain"
	"gorm.io/datatypes"
)

// BookingStatus tracks a booking through its billing lifecycle.
type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// ChargeScope distinguishes the breakdown a stored charge belongs to.
type ChargeScope string

const (
	ChargeScopeDeposit     ChargeScope = "deposit"
	ChargeScopeMonthlyRent ChargeScope = "monthly_rent"
)

// Booking is a confirmed stay with its agreed billing terms.
type Booking struct {
	ID                    snowflake.ID  `gorm:"primaryKey"`
	ListingID             snowflake.ID  `gorm:"not null;index"`
	TenantID              snowflake.ID  `gorm:"not null;index"`
	Status                BookingStatus `gorm:"type:text;not null;default:'active'"`
	StartDate             time.Time     `gorm:"not null"`
	EndDate               time.Time     `gorm:"not null"`
	MonthlyRentCents      int64         `gorm:"not null"`
	SecurityDepositCents  int64         `gorm:"not null"`
	PetCount              int           `gorm:"not null;default:0"`
	PetRentPerPetCents    int64         `gorm:"not null;default:0"`
	PetDepositPerPetCents int64         `gorm:"not null;default:0"`
	UsingCard             bool          `gorm:"not null;default:false"`
	Currency              string        `gorm:"type:text;not null"`
	StripePaymentMethodID string        `gorm:"type:text"`
	DepositTotalCents     int64         `gorm:"not null"`
	MonthlyTotalCents     int64         `gorm:"not null"`
	CreatedAt             time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt             time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Booking) TableName() string { return "bookings" }

// BookingCharge persists one line of a booking's charge breakdown.
type BookingCharge struct {
	ID          snowflake.ID      `gorm:"primaryKey"`
	BookingID   snowflake.ID      `gorm:"not null;index"`
	Scope       ChargeScope       `gorm:"type:text;not null"`
	Category    string            `gorm:"type:text;not null"`
	AmountCents int64             `gorm:"not null"`
	IsApplied   bool              `gorm:"not null;default:true"`
	Metadata    datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt   time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (BookingCharge) TableName() string { return "booking_charges" }

// CreateBookingRequest carries everything needed to price and persist
// a booking.
type CreateBookingRequest struct {
	ListingID             snowflake.ID
	TenantID              snowflake.ID
	StartDate             time.Time
	EndDate               time.Time
	MonthlyRentCents      int64
	SecurityDepositCents  int64
	PetCount              int
	PetRentPerPetCents    int64
	PetDepositPerPetCents int64
	UsingCard             bool
	StripePaymentMethodID string
}

// CreateBookingResult returns the persisted booking with its computed
// breakdowns and schedule.
type CreateBookingResult struct {
	Booking  Booking
	Deposit  chargedomain.ChargeBreakdown
	Monthly  chargedomain.ChargeBreakdown
	Payments []scheduledomain.RentPayment
}
