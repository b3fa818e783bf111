package service

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	scheduledomain "github.com/stayloop/leasebill/internal/schedule/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
}

func NewService(p ServiceParam) scheduledomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("schedule.service"),
		genID: p.GenID,
	}
}

// CreateScheduleTx inserts a generated calendar inside an existing
// transaction. A booking's schedule is written exactly once; finding
// rows for the booking already present is a caller bug.
func (s *Service) CreateScheduleTx(ctx context.Context, tx *gorm.DB, payments []scheduledomain.RentPayment) ([]scheduledomain.RentPayment, error) {
	if len(payments) == 0 {
		return nil, scheduledomain.ErrEmptySchedule
	}
	bookingID := payments[0].BookingID
	if bookingID == 0 {
		return nil, scheduledomain.ErrInvalidBookingID
	}

	var existing int64
	if err := tx.WithContext(ctx).
		Model(&scheduledomain.RentPayment{}).
		Where("booking_id = ?", bookingID).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, scheduledomain.ErrScheduleExists
	}

	now := time.Now().UTC()
	for i := range payments {
		payments[i].ID = s.genID.Generate()
		payments[i].CreatedAt = now
		payments[i].UpdatedAt = now
	}
	if err := tx.WithContext(ctx).Create(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (s *Service) ListByBooking(ctx context.Context, bookingID snowflake.ID) ([]scheduledomain.RentPayment, error) {
	if bookingID == 0 {
		return nil, scheduledomain.ErrInvalidBookingID
	}
	var payments []scheduledomain.RentPayment
	err := s.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("due_date ASC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}
