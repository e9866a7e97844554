package sideeffect

import (
	"context"
	"fmt"
	"time"

	"github.com/finsuite/erp-approvals/pkg/apperrors"
	"github.com/finsuite/erp-approvals/pkg/models"
	"github.com/finsuite/erp-approvals/pkg/storage"
)

// BankAccountLedger creates the single accounts-ledger entry for an approved
// bank account.
type BankAccountLedger struct {
	Ledger storage.LedgerStore
}

// Make sure we conform to the interface
var _ Handler = (*BankAccountLedger)(nil)

// Apply creates one ledger entry. Overdraft accounts open on the credit
// side, everything else on the debit side.
func (h *BankAccountLedger) Apply(ctx context.Context, entity models.Approvable) (*models.SideEffectResult, error) {
	account, ok := entity.(*models.BankAccount)
	if !ok {
		return nil, fmt.Errorf("bank account ledger handler received %T", entity)
	}

	balanceType := models.BalanceDebit
	if account.AccountType == "OD" {
		balanceType = models.BalanceCredit
	}

	entry := models.LedgerEntry{
		EntryID:        models.LedgerEntryID(account.EntityType(), account.EntityID()),
		LedgerName:     account.Name,
		SourceType:     account.EntityType(),
		SourceID:       account.EntityID(),
		AccountGroupID: account.AccountGroupID,
		OpeningBalance: account.OpeningBalance,
		BalanceType:    balanceType,
		CreatedAt:      time.Now(),
	}

	if err := h.Ledger.CreateLedgerEntry(ctx, &entry); err != nil {
		return nil, err
	}

	return &models.SideEffectResult{LedgerEntries: []models.LedgerEntry{entry}}, nil
}

// LoanLedger creates the single accounts-ledger entry for an approved loan.
type LoanLedger struct {
	Ledger   storage.LedgerStore
	Entities storage.EntityReader
}

// Make sure we conform to the interface
var _ Handler = (*LoanLedger)(nil)

// Apply creates one ledger entry. Loans onboarded in "existing" mode open at
// their current outstanding balance rather than the sanctioned amount; the
// debit/credit side follows the owning account group's nature.
func (h *LoanLedger) Apply(ctx context.Context, entity models.Approvable) (*models.SideEffectResult, error) {
	loan, ok := entity.(*models.Loan)
	if !ok {
		return nil, fmt.Errorf("loan ledger handler received %T", entity)
	}

	nature, err := resolveGroupNature(ctx, h.Entities, loan.AccountGroupID)
	if err != nil {
		return nil, err
	}

	opening := loan.LoanAmount
	if loan.Mode == models.LoanModeExisting {
		opening = loan.CurrentBalance
	}

	entry := models.LedgerEntry{
		EntryID:        models.LedgerEntryID(loan.EntityType(), loan.EntityID()),
		LedgerName:     loan.Name,
		SourceType:     loan.EntityType(),
		SourceID:       loan.EntityID(),
		AccountGroupID: loan.AccountGroupID,
		OpeningBalance: opening,
		BalanceType:    nature.BalanceSide(),
		CreatedAt:      time.Now(),
	}

	if err := h.Ledger.CreateLedgerEntry(ctx, &entry); err != nil {
		return nil, err
	}

	return &models.SideEffectResult{LedgerEntries: []models.LedgerEntry{entry}}, nil
}

// resolveGroupNature loads an account group and returns its nature.
func resolveGroupNature(ctx context.Context, entities storage.EntityReader, groupID string) (models.GroupNature, error) {
	if groupID == "" {
		return "", apperrors.Dependency("account group reference is missing")
	}

	raw, err := entities.GetEntity(ctx, models.EntityTypeAccountGroup, groupID)
	if err != nil {
		return "", apperrors.Dependency("account group %s could not be resolved", groupID)
	}
	group, ok := raw.(*models.AccountGroup)
	if !ok {
		return "", fmt.Errorf("account group lookup returned %T", raw)
	}

	return group.Nature, nil
}
