package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	ledgerdomain "github.com/stayloop/leasebill/internal/ledger/domain"
	"gorm.io/gorm"
)

var defaultAccounts = []struct {
	code string
	name string
}{
	{ledgerdomain.AccountCodeRentReceivable, "Rent Receivable"},
	{ledgerdomain.AccountCodeDepositsHeld, "Deposits Held"},
	{ledgerdomain.AccountCodeFeeRevenue, "Fee Revenue"},
	{ledgerdomain.AccountCodeCashClearing, "Cash Clearing"},
}

// EnsureLedgerAccounts seeds the chart of accounts for startup bootstrap.
func EnsureLedgerAccounts(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, account := range defaultAccounts {
			var existing ledgerdomain.LedgerAccount
			err := tx.WithContext(ctx).Where("code = ?", account.code).First(&existing).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			row := ledgerdomain.LedgerAccount{
				ID:        node.Generate(),
				Code:      account.code,
				Name:      account.name,
				CreatedAt: time.Now().UTC(),
			}
			if err := tx.WithContext(ctx).Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
