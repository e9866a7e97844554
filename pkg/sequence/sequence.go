// Package sequence produces the human-readable identifiers used across the
// system: client codes, sub-client codes and invoice numbers. Numbering is
// backed by an atomic per-scope counter, so concurrent creations in the same
// scope can never compute the same suffix.
package sequence

import (
	"context"
	"fmt"
	"time"

	"github.com/finsuite/erp-approvals/pkg/apperrors"
	"github.com/finsuite/erp-approvals/pkg/storage"
)

const (
	// ClientPrefix is the fixed prefix of top-level client codes.
	ClientPrefix = "SC"

	// codeWidth is the zero-padded width of every numeric suffix.
	codeWidth = 3

	clientScope    = "clients"
	subClientScope = "sub-clients"
	invoiceScope   = "invoices"
)

// Generator hands out codes from scoped atomic counters.
type Generator struct {
	Counters storage.SequenceStore
}

// NewGenerator creates a Generator over the given counter store.
func NewGenerator(counters storage.SequenceStore) *Generator {
	return &Generator{Counters: counters}
}

// NextClientCode returns the next globally sequenced client code:
// SC001, SC002, ...
func (g *Generator) NextClientCode(ctx context.Context) (string, error) {
	n, err := g.Counters.Next(ctx, clientScope)
	if err != nil {
		return "", &apperrors.CodeGenerationError{Scope: clientScope, Err: err}
	}
	return fmt.Sprintf("%s%0*d", ClientPrefix, codeWidth, n), nil
}

// NextSubClientCode returns the next code under a parent client. The suffix
// is sequenced per parent and appended to the parent's own code, so SC001's
// sub-clients are SC001001, SC001002, ...
func (g *Generator) NextSubClientCode(ctx context.Context, parentCode string) (string, error) {
	if parentCode == "" {
		return "", &apperrors.CodeGenerationError{Scope: subClientScope, Err: fmt.Errorf("parent client code is empty")}
	}
	scope := subClientScope + "#" + parentCode
	n, err := g.Counters.Next(ctx, scope)
	if err != nil {
		return "", &apperrors.CodeGenerationError{Scope: scope, Err: err}
	}
	return fmt.Sprintf("%s%0*d", parentCode, codeWidth, n), nil
}

// NextInvoiceNumber returns the next invoice number for the financial year
// the invoice date falls in: <org>/<FY>/<seq>, e.g. ACME/2025-26/007.
func (g *Generator) NextInvoiceNumber(ctx context.Context, org string, date time.Time) (string, error) {
	fy := FinancialYear(date)
	scope := invoiceScope + "#" + fy
	n, err := g.Counters.Next(ctx, scope)
	if err != nil {
		return "", &apperrors.CodeGenerationError{Scope: scope, Err: err}
	}
	return fmt.Sprintf("%s/%s/%0*d", org, fy, codeWidth, n), nil
}

// FinancialYear renders the April-to-March accounting year a date falls in as
// YYYY-YY. January through March belong to the year that started the previous
// April.
func FinancialYear(date time.Time) string {
	year := date.Year()
	if date.Month() < time.April {
		year--
	}
	return fmt.Sprintf("%d-%02d", year, (year+1)%100)
}

// OpeningBalanceInvoiceNumber builds the deterministic number used for
// opening-balance invoices. These are keyed by sub-client and cost centre
// rather than sequenced, so re-running the side effect collides instead of
// numbering a duplicate.
func OpeningBalanceInvoiceNumber(subClientCode, costCentreCode string) string {
	return fmt.Sprintf("OPENING_BAL_%s_%s", subClientCode, costCentreCode)
}
