package events

// Billing event types emitted by the rent engine.
const (
	EventBookingCreated        = "booking.created"
	EventRentScheduleGenerated = "rent_schedule.generated"
	EventPaymentAuthorized     = "payment.authorized"
	EventPaymentDue            = "payment.due"
)

// BookingCreatedPayload captures the minimal data consumers need to
// react to a new booking.
type BookingCreatedPayload struct {
	BookingID         string `json:"booking_id"`
	DepositTotalCents int64  `json:"deposit_total_cents"`
	MonthlyTotalCents int64  `json:"monthly_total_cents"`
	PaymentCount      int    `json:"payment_count"`
}

// ToMap converts a payload into an outbox-friendly map.
func (p BookingCreatedPayload) ToMap() map[string]any {
	return map[string]any{
		"booking_id":          p.BookingID,
		"deposit_total_cents": p.DepositTotalCents,
		"monthly_total_cents": p.MonthlyTotalCents,
		"payment_count":       p.PaymentCount,
	}
}

// PaymentPayload captures the minimal data needed to act on a single
// scheduled rent payment.
type PaymentPayload struct {
	RentPaymentID string `json:"rent_payment_id"`
	BookingID     string `json:"booking_id"`
	AmountCents   int64  `json:"amount_cents"`
	DueDate       string `json:"due_date"`
}

// ToMap converts a payload into an outbox-friendly map.
func (p PaymentPayload) ToMap() map[string]any {
	return map[string]any{
		"rent_payment_id": p.RentPaymentID,
		"booking_id":      p.BookingID,
		"amount_cents":    p.AmountCents,
		"due_date":        p.DueDate,
	}
}
