package models

import "time"

// LedgerEntry is the accounts-ledger record derived exactly once from an
// approved bank account, loan or sub-client. EntryID is deterministic
// (source type + source id) so a retried write collides instead of
// duplicating.
type LedgerEntry struct {
	EntryID        string      `json:"entry_id" dynamodbav:"entry_id"`
	LedgerName     string      `json:"ledger_name" dynamodbav:"ledger_name"`
	SourceType     EntityType  `json:"source_type" dynamodbav:"source_type"`
	SourceID       string      `json:"source_id" dynamodbav:"source_id"`
	AccountGroupID string      `json:"account_group_id" dynamodbav:"account_group_id"`
	OpeningBalance int64       `json:"opening_balance" dynamodbav:"opening_balance"`
	BalanceType    BalanceType `json:"balance_type" dynamodbav:"balance_type"`
	CreatedAt      time.Time   `json:"created_at" dynamodbav:"created_at"`
	GSI1PK         string      `json:"-" dynamodbav:"gsi1pk"`
}

// LedgerEntryID builds the deterministic key for a derived ledger entry.
func LedgerEntryID(sourceType EntityType, sourceID string) string {
	return string(sourceType) + "#" + sourceID
}

// Invoice is an opening-balance invoice derived from one cost-centre line of
// an approved sub-client. The Balance* fields start equal to the originals
// and are drawn down by later receipt/credit-note processing.
type Invoice struct {
	InvoiceNumber  string    `json:"invoice_number" dynamodbav:"invoice_number"`
	SubClientID    string    `json:"sub_client_id" dynamodbav:"sub_client_id"`
	SubClientCode  string    `json:"sub_client_code" dynamodbav:"sub_client_code"`
	CostCentreCode string    `json:"cost_centre_code" dynamodbav:"cost_centre_code"`
	InvoiceDate    time.Time `json:"invoice_date" dynamodbav:"invoice_date"`
	Basic          int64     `json:"basic" dynamodbav:"basic"`
	CGST           int64     `json:"cgst" dynamodbav:"cgst"`
	SGST           int64     `json:"sgst" dynamodbav:"sgst"`
	IGST           int64     `json:"igst" dynamodbav:"igst"`
	BalanceBasic   int64     `json:"balance_basic" dynamodbav:"balance_basic"`
	BalanceCGST    int64     `json:"balance_cgst" dynamodbav:"balance_cgst"`
	BalanceSGST    int64     `json:"balance_sgst" dynamodbav:"balance_sgst"`
	BalanceIGST    int64     `json:"balance_igst" dynamodbav:"balance_igst"`
	CreatedAt      time.Time `json:"created_at" dynamodbav:"created_at"`
}

// Total is the gross invoice amount.
func (i *Invoice) Total() int64 {
	return i.Basic + i.CGST + i.SGST + i.IGST
}

// SideEffectResult reports what a post-approval handler produced. Failed
// counts skipped derived records (e.g. invoice lines with unresolvable cost
// centres); the entity stays Approved regardless.
type SideEffectResult struct {
	LedgerEntries []LedgerEntry `json:"ledger_entries,omitempty"`
	Invoices      []Invoice     `json:"invoices,omitempty"`
	Failed        int           `json:"failed"`
	Failures      []string      `json:"failures,omitempty"`
}
