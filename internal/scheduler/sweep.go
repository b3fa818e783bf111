package scheduler

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/stayloop/leasebill/internal/events"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// WorkPayment is the projection the sweep locks and updates.
type WorkPayment struct {
	ID          snowflake.ID
	BookingID   snowflake.ID
	AmountCents int64
	DueDate     time.Time
}

// RunDueSweep finds rent payments whose due date has arrived, marks
// them notified and publishes a payment.due event for each. Rows are
// claimed with SKIP LOCKED so concurrent sweeps never double-notify.
func (s *Scheduler) RunDueSweep(ctx context.Context) error {
	start := time.Now()
	defer func() {
		s.metrics.ObserveSweepDuration(time.Since(start))
	}()

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	for {
		processed, err := s.sweepBatch(ctx, today, now)
		if err != nil {
			return err
		}
		if processed == 0 {
			break
		}
	}

	return s.refreshBacklogGauges(ctx, today, now)
}

func (s *Scheduler) sweepBatch(ctx context.Context, today, now time.Time) (int, error) {
	limit := s.cfg.BatchSize
	if limit <= 0 {
		limit = 100
	}

	processed := 0
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		payments, err := s.fetchPaymentsForWork(ctx, tx, today, limit)
		if err != nil {
			return err
		}
		if len(payments) == 0 {
			return nil
		}

		for _, payment := range payments {
			if err := tx.WithContext(ctx).Exec(
				`UPDATE rent_payments
				 SET due_notified_at = ?, updated_at = ?
				 WHERE id = ? AND due_notified_at IS NULL`,
				now,
				now,
				payment.ID,
			).Error; err != nil {
				s.metrics.IncNotified("failed")
				return err
			}

			if err := s.outbox.PublishTx(ctx, tx, events.Event{
				BookingID: payment.BookingID,
				Type:      events.EventPaymentDue,
				Payload: events.PaymentPayload{
					RentPaymentID: strconv.FormatInt(int64(payment.ID), 10),
					BookingID:     strconv.FormatInt(int64(payment.BookingID), 10),
					AmountCents:   payment.AmountCents,
					DueDate:       payment.DueDate.Format("2006-01-02"),
				}.ToMap(),
				DedupeKey: "payment_due:" + strconv.FormatInt(int64(payment.ID), 10),
			}); err != nil {
				s.metrics.IncNotified("failed")
				return err
			}
			s.metrics.IncNotified("success")
			processed++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if processed > 0 {
		s.log.Info("payment due batch notified", zap.Int("count", processed))
	}
	return processed, nil
}

func (s *Scheduler) fetchPaymentsForWork(ctx context.Context, tx *gorm.DB, today time.Time, limit int) ([]WorkPayment, error) {
	var payments []WorkPayment
	err := tx.WithContext(ctx).Raw(
		`SELECT id, booking_id, amount_cents, due_date
		 FROM rent_payments
		 WHERE due_date <= ? AND due_notified_at IS NULL
		 ORDER BY due_date ASC, id ASC
		 FOR UPDATE SKIP LOCKED
		 LIMIT ?`,
		today,
		limit,
	).Scan(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (s *Scheduler) refreshBacklogGauges(ctx context.Context, today, now time.Time) error {
	var backlog int64
	if err := s.db.WithContext(ctx).Raw(
		`SELECT COUNT(1)
		 FROM rent_payments
		 WHERE due_date <= ? AND due_notified_at IS NULL`,
		today,
	).Scan(&backlog).Error; err != nil {
		return err
	}
	s.metrics.SetDueBacklog(int(backlog))

	var oldest sql.NullTime
	if err := s.db.WithContext(ctx).Raw(
		`SELECT MIN(due_date)
		 FROM rent_payments
		 WHERE due_date <= ? AND due_notified_at IS NULL`,
		today,
	).Scan(&oldest).Error; err != nil {
		return err
	}
	if oldest.Valid {
		s.metrics.SetDueOldest(now.Sub(oldest.Time))
	} else {
		s.metrics.SetDueOldest(0)
	}
	return nil
}
