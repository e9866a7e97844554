package storage

import (
	"context"

	"github.com/finsuite/erp-approvals/pkg/models"
)

// LedgerStore manages derived accounts-ledger entries.
type LedgerStore interface {
	// CreateLedgerEntry persists a derived entry. The deterministic entry id
	// makes a retried write fail with a DuplicateError instead of doubling.
	CreateLedgerEntry(ctx context.Context, entry *models.LedgerEntry) error

	// ListLedgerEntries retrieves the most recent derived entries.
	ListLedgerEntries(ctx context.Context, limit int32) ([]models.LedgerEntry, error)
}

// InvoiceStore manages derived opening-balance invoices.
type InvoiceStore interface {
	// CreateInvoice persists an invoice. Fails with a DuplicateError when the
	// invoice number is already taken.
	CreateInvoice(ctx context.Context, inv *models.Invoice) error

	// ListInvoicesBySubClient returns the invoices raised for a sub-client.
	ListInvoicesBySubClient(ctx context.Context, subClientID string) ([]models.Invoice, error)
}

// CostCentreStore resolves cost-centre references on opening-balance lines.
type CostCentreStore interface {
	// GetCostCentre looks up a cost centre by code. Absent centres yield a
	// DependencyError.
	GetCostCentre(ctx context.Context, code string) (*models.CostCentre, error)
}
