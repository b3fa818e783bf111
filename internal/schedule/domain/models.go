package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// RentPaymentType tags the kind of scheduled collection.
type RentPaymentType string

const (
	RentPaymentTypeMonthlyRent RentPaymentType = "MONTHLY_RENT"
)

// RentPayment is one scheduled rent collection for a booking. The full
// sequence is generated once at booking creation and persisted; later
// modifications touch individual rows, never the generator.
type RentPayment struct {
	ID                    snowflake.ID    `gorm:"primaryKey"`
	BookingID             snowflake.ID    `gorm:"not null;index"`
	AmountCents           int64           `gorm:"not null"`
	DueDate               time.Time       `gorm:"not null;index"`
	Type                  RentPaymentType `gorm:"type:text;not null;default:'MONTHLY_RENT'"`
	PaymentAuthorizedAt   *time.Time      `gorm:"column:payment_authorized_at"`
	DueNotifiedAt         *time.Time      `gorm:"column:due_notified_at"`
	StripePaymentMethodID string          `gorm:"type:text;not null"`
	CreatedAt             time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt             time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (RentPayment) TableName() string { return "rent_payments" }
