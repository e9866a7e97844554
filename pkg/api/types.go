// Package api holds the wire-level request and response shapes of the HTTP
// boundary. Domain models stay internal; pkg/mapping converts between the
// two.
package api

import (
	"encoding/json"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Envelope is the uniform response wrapper.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Actor identifies who is making a workflow call. Authentication happens
// upstream; this is the already-resolved identity.
type Actor struct {
	ID          string `json:"id"`
	RoleID      int    `json:"role_id"`
	DisplayName string `json:"display_name"`
}

// CreateRequest wraps a new entity payload with the creating actor. Entity is
// decoded per entity type by the mapping layer.
type CreateRequest struct {
	Actor   Actor           `json:"actor"`
	Remarks string          `json:"remarks,omitempty"`
	Entity  json.RawMessage `json:"entity"`
}

// ActionRequest is the body of verify and reject calls.
type ActionRequest struct {
	Actor   Actor  `json:"actor"`
	Remarks string `json:"remarks"`
}

// NewClient is the creation payload for a client.
type NewClient struct {
	Name        string `json:"name"`
	GSTIN       string `json:"gstin,omitempty"`
	Address     string `json:"address,omitempty"`
	ContactName string `json:"contact_name,omitempty"`
}

// NewCostCentreLine is one opening-balance line on a new sub-client.
type NewCostCentreLine struct {
	CostCentreCode string             `json:"cost_centre_code"`
	CostCentreName string             `json:"cost_centre_name"`
	Basic          int64              `json:"basic"`
	CGST           int64              `json:"cgst"`
	SGST           int64              `json:"sgst"`
	IGST           int64              `json:"igst"`
	AsOf           openapi_types.Date `json:"as_of"`
}

// NewSubClient is the creation payload for a sub-client.
type NewSubClient struct {
	Name              string              `json:"name"`
	ClientID          string              `json:"client_id"`
	AccountGroupID    string              `json:"account_group_id"`
	HasOpeningBalance bool                `json:"has_opening_balance"`
	OpeningBalance    int64               `json:"opening_balance"`
	CostCentreLines   []NewCostCentreLine `json:"cost_centre_lines,omitempty"`
}

// NewBankAccount is the creation payload for a bank account.
type NewBankAccount struct {
	Name           string `json:"name"`
	AccountNumber  string `json:"account_number"`
	AccountType    string `json:"account_type"`
	AccountGroupID string `json:"account_group_id"`
	OpeningBalance int64  `json:"opening_balance"`
	BankName       string `json:"bank_name,omitempty"`
	IFSC           string `json:"ifsc,omitempty"`
}

// NewLoan is the creation payload for a loan.
type NewLoan struct {
	Name           string `json:"name"`
	Mode           string `json:"mode"`
	LoanAmount     int64  `json:"loan_amount"`
	CurrentBalance int64  `json:"current_balance"`
	AccountGroupID string `json:"account_group_id"`
	Lender         string `json:"lender,omitempty"`
}

// NewGeneralLedger is the creation payload for a general ledger head.
type NewGeneralLedger struct {
	Name           string `json:"name"`
	AccountGroupID string `json:"account_group_id"`
	OpeningBalance int64  `json:"opening_balance"`
	BalanceType    string `json:"balance_type"`
}

// NewClientPO is the creation payload for a client purchase order.
type NewClientPO struct {
	PONumber   string             `json:"po_number"`
	ClientID   string             `json:"client_id"`
	Amount     int64              `json:"amount"`
	PODate     openapi_types.Date `json:"po_date"`
	Descriptor string             `json:"descriptor,omitempty"`
}

// NewAccountGroup is the creation payload for an account group.
type NewAccountGroup struct {
	Name   string `json:"name"`
	Nature string `json:"nature"`
	Parent string `json:"parent,omitempty"`
}

// VerifyResponse is the data of a successful verify call.
type VerifyResponse struct {
	Outcome       string      `json:"outcome"`
	Entity        interface{} `json:"entity"`
	LedgerEntries interface{} `json:"ledger_entries,omitempty"`
	Invoices      interface{} `json:"invoices,omitempty"`
	Failed        int         `json:"failed,omitempty"`
}

// PendingCountResponse is the data of a pending-count call.
type PendingCountResponse struct {
	RoleID  int `json:"role_id"`
	Pending int `json:"pending"`
}
