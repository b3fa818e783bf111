package domain

import "testing"

func line(direction LedgerEntryDirection, amount int64) LedgerEntryLine {
	return LedgerEntryLine{Direction: direction, Amount: amount}
}

func TestValidateBalanced(t *testing.T) {
	err := ValidateBalanced([]LedgerEntryLine{
		line(LedgerEntryDirectionDebit, 103814),
		line(LedgerEntryDirectionCredit, 100000),
		line(LedgerEntryDirectionCredit, 3814),
	})
	if err != nil {
		t.Fatalf("expected balanced entry, got %v", err)
	}
}

func TestValidateBalancedRejectsUnbalanced(t *testing.T) {
	err := ValidateBalanced([]LedgerEntryLine{
		line(LedgerEntryDirectionDebit, 1000),
		line(LedgerEntryDirectionCredit, 999),
	})
	if err != ErrUnbalancedEntry {
		t.Fatalf("expected ErrUnbalancedEntry, got %v", err)
	}
}

func TestValidateBalancedRejectsSingleLine(t *testing.T) {
	err := ValidateBalanced([]LedgerEntryLine{line(LedgerEntryDirectionDebit, 1000)})
	if err != ErrInvalidEntryLines {
		t.Fatalf("expected ErrInvalidEntryLines, got %v", err)
	}
}

func TestValidateBalancedRejectsNegativeAmount(t *testing.T) {
	err := ValidateBalanced([]LedgerEntryLine{
		line(LedgerEntryDirectionDebit, -5),
		line(LedgerEntryDirectionCredit, -5),
	})
	if err != ErrInvalidLineAmount {
		t.Fatalf("expected ErrInvalidLineAmount, got %v", err)
	}
}

func TestValidateBalancedRejectsUnknownDirection(t *testing.T) {
	err := ValidateBalanced([]LedgerEntryLine{
		line(LedgerEntryDirectionDebit, 10),
		line(LedgerEntryDirection("sideways"), 10),
	})
	if err != ErrInvalidLineDirection {
		t.Fatalf("expected ErrInvalidLineDirection, got %v", err)
	}
}
