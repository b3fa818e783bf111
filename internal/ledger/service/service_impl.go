package service

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	ledgerdomain "github.com/stayloop/leasebill/internal/ledger/domain"
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

func NewService(p ServiceParam) ledgerdomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("ledger.service"),
		genID: p.GenID,
	}
}

// CreateEntryTx posts a balanced double-entry record inside an existing
// transaction. Lines must already reference resolved account IDs.
func (s *Service) CreateEntryTx(
	ctx context.Context,
	tx *gorm.DB,
	sourceType string,
	sourceID snowflake.ID,
	currency string,
	occurredAt time.Time,
	lines []ledgerdomain.LedgerEntryLine,
) error {
	switch sourceType {
	case ledgerdomain.SourceTypeBooking,
		ledgerdomain.SourceTypeRentPayment,
		ledgerdomain.SourceTypeAdjustment,
		ledgerdomain.SourceTypeRefund:
	default:
		return ledgerdomain.ErrInvalidSourceType
	}
	if sourceID == 0 {
		return ledgerdomain.ErrInvalidSourceID
	}
	if currency == "" {
		return ledgerdomain.ErrInvalidCurrency
	}
	if occurredAt.IsZero() {
		return ledgerdomain.ErrInvalidOccurredAt
	}
	for _, line := range lines {
		if line.AccountID == 0 {
			return ledgerdomain.ErrInvalidAccount
		}
	}
	if err := ledgerdomain.ValidateBalanced(lines); err != nil {
		return err
	}

	entry := ledgerdomain.LedgerEntry{
		ID:         s.genID.Generate(),
		SourceType: sourceType,
		SourceID:   sourceID,
		Currency:   currency,
		OccurredAt: occurredAt.UTC(),
	}
	if err := tx.WithContext(ctx).Create(&entry).Error; err != nil {
		return err
	}

	for i := range lines {
		lines[i].ID = s.genID.Generate()
		lines[i].LedgerEntryID = entry.ID
	}
	if err := tx.WithContext(ctx).Create(&lines).Error; err != nil {
		return err
	}

	s.log.Debug("ledger entry posted",
		zap.String("source_type", sourceType),
		zap.Int64("source_id", int64(sourceID)),
		zap.Int("lines", len(lines)),
	)
	return nil
}

func (s *Service) AccountByCode(ctx context.Context, code string) (*ledgerdomain.LedgerAccount, error) {
	var account ledgerdomain.LedgerAccount
	err := s.db.WithContext(ctx).
		Where("code = ?", code).
		First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ledgerdomain.ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}
