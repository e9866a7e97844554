package sideeffect

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finsuite/erp-approvals/pkg/models"
	"github.com/finsuite/erp-approvals/pkg/sequence"
	"github.com/finsuite/erp-approvals/pkg/storage"
)

// SubClientOnboarding creates the derived records for an approved sub-client:
// always one accounts-ledger entry, plus one opening-balance invoice per
// cost-centre line when the sub-client carries an opening balance.
type SubClientOnboarding struct {
	Ledger      storage.LedgerStore
	Invoices    storage.InvoiceStore
	CostCentres storage.CostCentreStore
	Entities    storage.EntityReader
}

// Make sure we conform to the interface
var _ Handler = (*SubClientOnboarding)(nil)

// Apply creates the ledger entry and the per-line invoices. Lines are
// processed independently: a line with a missing code/name or an unresolvable
// cost-centre reference is skipped and counted, and the remaining lines still
// go through.
func (h *SubClientOnboarding) Apply(ctx context.Context, entity models.Approvable) (*models.SideEffectResult, error) {
	sub, ok := entity.(*models.SubClient)
	if !ok {
		return nil, fmt.Errorf("sub-client onboarding handler received %T", entity)
	}

	nature, err := resolveGroupNature(ctx, h.Entities, sub.AccountGroupID)
	if err != nil {
		return nil, err
	}

	entry := models.LedgerEntry{
		EntryID:        models.LedgerEntryID(sub.EntityType(), sub.EntityID()),
		LedgerName:     sub.Name,
		SourceType:     sub.EntityType(),
		SourceID:       sub.EntityID(),
		AccountGroupID: sub.AccountGroupID,
		OpeningBalance: sub.OpeningBalance,
		BalanceType:    nature.BalanceSide(),
		CreatedAt:      time.Now(),
	}
	if err := h.Ledger.CreateLedgerEntry(ctx, &entry); err != nil {
		return nil, err
	}

	result := &models.SideEffectResult{LedgerEntries: []models.LedgerEntry{entry}}
	if !sub.HasOpeningBalance {
		return result, nil
	}

	for _, line := range sub.CostCentreLines {
		inv, err := h.invoiceForLine(ctx, sub, line)
		if err != nil {
			slog.Warn("skipping opening-balance line",
				"subClientId", sub.EntityID(),
				"costCentre", line.CostCentreCode,
				"error", err)
			result.Failed++
			result.Failures = append(result.Failures, err.Error())
			continue
		}
		result.Invoices = append(result.Invoices, *inv)
	}

	return result, nil
}

func (h *SubClientOnboarding) invoiceForLine(ctx context.Context, sub *models.SubClient, line models.CostCentreBalance) (*models.Invoice, error) {
	if line.CostCentreCode == "" || line.CostCentreName == "" {
		return nil, fmt.Errorf("cost centre code or name missing on balance line")
	}
	if _, err := h.CostCentres.GetCostCentre(ctx, line.CostCentreCode); err != nil {
		return nil, err
	}

	inv := models.Invoice{
		InvoiceNumber:  sequence.OpeningBalanceInvoiceNumber(sub.Code, line.CostCentreCode),
		SubClientID:    sub.EntityID(),
		SubClientCode:  sub.Code,
		CostCentreCode: line.CostCentreCode,
		InvoiceDate:    line.AsOf,
		Basic:          line.Basic,
		CGST:           line.CGST,
		SGST:           line.SGST,
		IGST:           line.IGST,
		BalanceBasic:   line.Basic,
		BalanceCGST:    line.CGST,
		BalanceSGST:    line.SGST,
		BalanceIGST:    line.IGST,
		CreatedAt:      time.Now(),
	}

	if err := h.Invoices.CreateInvoice(ctx, &inv); err != nil {
		return nil, err
	}

	return &inv, nil
}
