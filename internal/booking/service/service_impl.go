package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/bwmarrin/snowflake"
	auditdomain "github.com/stayloop/leasebill/internal/audit/domain"
	auditservice "github.com/stayloop/leasebill/internal/audit/service"
	bookingdomain "github.com/stayloop/leasebill/internal/booking/domain"
	chargedomain "github.com/stayloop/leasebill/internal/charge/domain"
	"github.com/stayloop/leasebill/internal/clock"
	"github.com/stayloop/leasebill/internal/events"
	ledgerdomain "github.com/stayloop/leasebill/internal/ledger/domain"
	scheduledomain "github.com/stayloop/leasebill/internal/schedule/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	clk      clock.Clock
	calc     *chargedomain.Calculator
	schedule scheduledomain.Service
	ledger   ledgerdomain.Service
	outbox   *events.Outbox
	audit    auditservice.Recorder
	currency string
}

type ServiceParam struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Clock    clock.Clock
	Calc     *chargedomain.Calculator
	Schedule scheduledomain.Service
	Ledger   ledgerdomain.Service
	Outbox   *events.Outbox
	Audit    auditservice.Recorder
}

func NewService(p ServiceParam) bookingdomain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("booking.service"),
		genID:    p.GenID,
		clk:      p.Clock,
		calc:     p.Calc,
		schedule: p.Schedule,
		ledger:   p.Ledger,
		outbox:   p.Outbox,
		audit:    p.Audit,
		currency: "usd",
	}
}

// CreateBooking prices the stay, generates its rent calendar and
// persists everything in one transaction.
func (s *Service) CreateBooking(ctx context.Context, req bookingdomain.CreateBookingRequest) (*bookingdomain.CreateBookingResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	start := dateOnly(req.StartDate)
	end := dateOnly(req.EndDate)
	stayDays := int(end.Sub(start).Hours()/24) + 1
	durationMonths := bookingdomain.DurationMonths(stayDays)

	deposit := s.calc.BuildDepositCharges(chargedomain.DepositParams{
		SecurityDepositCents:  req.SecurityDepositCents,
		PetCount:              req.PetCount,
		PetDepositPerPetCents: req.PetDepositPerPetCents,
		IncludeCardFee:        req.UsingCard,
	})
	monthly := s.calc.BuildMonthlyRentCharges(chargedomain.MonthlyRentParams{
		BaseRentCents:      req.MonthlyRentCents,
		PetCount:           req.PetCount,
		PetRentPerPetCents: req.PetRentPerPetCents,
		DurationMonths:     durationMonths,
		IncludeCardFee:     req.UsingCard,
	})

	now := s.clk.Now()
	booking := bookingdomain.Booking{
		ID:                    s.genID.Generate(),
		ListingID:             req.ListingID,
		TenantID:              req.TenantID,
		Status:                bookingdomain.BookingStatusActive,
		StartDate:             start,
		EndDate:               end,
		MonthlyRentCents:      req.MonthlyRentCents,
		SecurityDepositCents:  req.SecurityDepositCents,
		PetCount:              req.PetCount,
		PetRentPerPetCents:    req.PetRentPerPetCents,
		PetDepositPerPetCents: req.PetDepositPerPetCents,
		UsingCard:             req.UsingCard,
		Currency:              s.currency,
		StripePaymentMethodID: req.StripePaymentMethodID,
		DepositTotalCents:     deposit.TotalAmountCents,
		MonthlyTotalCents:     monthly.TotalAmountCents,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	// Rent installments are scheduled on the recurring principal; fees
	// live on the stored breakdown, not on every installment.
	payments := scheduledomain.GeneratePayments(
		booking.ID,
		monthly.BaseAmountCents,
		start,
		end,
		req.StripePaymentMethodID,
		now,
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		charges := make([]bookingdomain.BookingCharge, 0, len(deposit.Charges)+len(monthly.Charges))
		charges = append(charges, s.toBookingCharges(booking.ID, bookingdomain.ChargeScopeDeposit, deposit.Charges, now)...)
		charges = append(charges, s.toBookingCharges(booking.ID, bookingdomain.ChargeScopeMonthlyRent, monthly.Charges, now)...)
		if err := tx.Create(&charges).Error; err != nil {
			return err
		}

		created, err := s.schedule.CreateScheduleTx(ctx, tx, payments)
		if err != nil {
			return err
		}
		payments = created

		if err := s.postDepositEntry(ctx, tx, booking, deposit); err != nil {
			return err
		}

		bookingID := strconv.FormatInt(int64(booking.ID), 10)
		if err := s.outbox.PublishTx(ctx, tx, events.Event{
			BookingID: booking.ID,
			Type:      events.EventBookingCreated,
			Payload: events.BookingCreatedPayload{
				BookingID:         bookingID,
				DepositTotalCents: deposit.TotalAmountCents,
				MonthlyTotalCents: monthly.TotalAmountCents,
				PaymentCount:      len(payments),
			}.ToMap(),
			DedupeKey: "booking_created:" + bookingID,
		}); err != nil {
			return err
		}
		if err := s.outbox.PublishTx(ctx, tx, events.Event{
			BookingID: booking.ID,
			Type:      events.EventRentScheduleGenerated,
			Payload: map[string]any{
				"booking_id":    bookingID,
				"payment_count": len(payments),
			},
			DedupeKey: "rent_schedule:" + bookingID,
		}); err != nil {
			return err
		}
		if len(payments) > 0 && payments[0].PaymentAuthorizedAt != nil {
			first := payments[0]
			firstID := strconv.FormatInt(int64(first.ID), 10)
			if err := s.outbox.PublishTx(ctx, tx, events.Event{
				BookingID: booking.ID,
				Type:      events.EventPaymentAuthorized,
				Payload: events.PaymentPayload{
					RentPaymentID: firstID,
					BookingID:     bookingID,
					AmountCents:   first.AmountCents,
					DueDate:       first.DueDate.Format("2006-01-02"),
				}.ToMap(),
				DedupeKey: "payment_authorized:" + firstID,
			}); err != nil {
				return err
			}
		}

		return s.audit.RecordTx(ctx, tx, auditservice.Record{
			BookingID:  &booking.ID,
			Action:     auditdomain.ActionBookingCreated,
			TargetType: auditdomain.TargetTypeBooking,
			TargetID:   bookingID,
			Metadata: map[string]any{
				"deposit_total_cents": deposit.TotalAmountCents,
				"monthly_total_cents": monthly.TotalAmountCents,
				"payment_count":       len(payments),
			},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("booking created",
		zap.Int64("booking_id", int64(booking.ID)),
		zap.Int64("deposit_total_cents", deposit.TotalAmountCents),
		zap.Int64("monthly_total_cents", monthly.TotalAmountCents),
		zap.Int("payment_count", len(payments)),
	)

	return &bookingdomain.CreateBookingResult{
		Booking:  booking,
		Deposit:  deposit,
		Monthly:  monthly,
		Payments: payments,
	}, nil
}

func (s *Service) GetBooking(ctx context.Context, id snowflake.ID) (*bookingdomain.Booking, error) {
	if id == 0 {
		return nil, bookingdomain.ErrBookingNotFound
	}
	var booking bookingdomain.Booking
	err := s.db.WithContext(ctx).First(&booking, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, bookingdomain.ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *Service) ListCharges(ctx context.Context, bookingID snowflake.ID, scope bookingdomain.ChargeScope) ([]bookingdomain.BookingCharge, error) {
	if bookingID == 0 {
		return nil, bookingdomain.ErrBookingNotFound
	}
	query := s.db.WithContext(ctx).Where("booking_id = ?", bookingID)
	if scope != "" {
		query = query.Where("scope = ?", scope)
	}
	var charges []bookingdomain.BookingCharge
	if err := query.Order("id ASC").Find(&charges).Error; err != nil {
		return nil, err
	}
	return charges, nil
}

// postDepositEntry records the deposit obligation: the receivable on
// one side, held deposits and earned fees on the other.
func (s *Service) postDepositEntry(ctx context.Context, tx *gorm.DB, booking bookingdomain.Booking, deposit chargedomain.ChargeBreakdown) error {
	receivable, err := s.ledger.AccountByCode(ctx, ledgerdomain.AccountCodeRentReceivable)
	if err != nil {
		return err
	}
	held, err := s.ledger.AccountByCode(ctx, ledgerdomain.AccountCodeDepositsHeld)
	if err != nil {
		return err
	}
	feeRevenue, err := s.ledger.AccountByCode(ctx, ledgerdomain.AccountCodeFeeRevenue)
	if err != nil {
		return err
	}

	lines := []ledgerdomain.LedgerEntryLine{
		{
			AccountID: receivable.ID,
			Direction: ledgerdomain.LedgerEntryDirectionDebit,
			Amount:    deposit.TotalAmountCents,
		},
		{
			AccountID: held.ID,
			Direction: ledgerdomain.LedgerEntryDirectionCredit,
			Amount:    deposit.BaseAmountCents,
		},
	}
	if fees := deposit.TotalAmountCents - deposit.BaseAmountCents; fees > 0 {
		lines = append(lines, ledgerdomain.LedgerEntryLine{
			AccountID: feeRevenue.ID,
			Direction: ledgerdomain.LedgerEntryDirectionCredit,
			Amount:    fees,
		})
	}

	return s.ledger.CreateEntryTx(
		ctx, tx,
		ledgerdomain.SourceTypeBooking,
		booking.ID,
		booking.Currency,
		booking.CreatedAt,
		lines,
	)
}

func (s *Service) toBookingCharges(bookingID snowflake.ID, scope bookingdomain.ChargeScope, charges []chargedomain.Charge, now time.Time) []bookingdomain.BookingCharge {
	rows := make([]bookingdomain.BookingCharge, 0, len(charges))
	for _, charge := range charges {
		rows = append(rows, bookingdomain.BookingCharge{
			ID:          s.genID.Generate(),
			BookingID:   bookingID,
			Scope:       scope,
			Category:    string(charge.Category),
			AmountCents: charge.AmountCents,
			IsApplied:   charge.IsApplied,
			Metadata:    charge.Metadata,
			CreatedAt:   now,
		})
	}
	return rows
}

func validateRequest(req bookingdomain.CreateBookingRequest) error {
	if req.ListingID == 0 {
		return bookingdomain.ErrInvalidListing
	}
	if req.TenantID == 0 {
		return bookingdomain.ErrInvalidTenant
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() || req.EndDate.Before(req.StartDate) {
		return bookingdomain.ErrInvalidDateRange
	}
	if req.MonthlyRentCents <= 0 {
		return bookingdomain.ErrInvalidMonthlyRent
	}
	if req.SecurityDepositCents < 0 {
		return bookingdomain.ErrInvalidDeposit
	}
	if req.PetCount < 0 || req.PetRentPerPetCents < 0 || req.PetDepositPerPetCents < 0 {
		return bookingdomain.ErrInvalidPetTerms
	}
	if req.StripePaymentMethodID == "" {
		return bookingdomain.ErrMissingPaymentMethod
	}
	return nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
