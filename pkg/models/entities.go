package models

import (
	"time"
)

// EntityType identifies an approvable entity collection. The values double as
// the URL path segments used by the HTTP boundary.
type EntityType string

const (
	EntityTypeClient        EntityType = "clients"
	EntityTypeSubClient     EntityType = "sub-clients"
	EntityTypeBankAccount   EntityType = "bank-accounts"
	EntityTypeLoan          EntityType = "loans"
	EntityTypeGeneralLedger EntityType = "general-ledgers"
	EntityTypeClientPO      EntityType = "client-pos"
	EntityTypeAccountGroup  EntityType = "account-groups"
)

// ApprovalStatus is the lifecycle state of an approvable entity.
type ApprovalStatus string

const (
	StatusVerification ApprovalStatus = "Verification"
	StatusReturned     ApprovalStatus = "Returned"
	StatusApproved     ApprovalStatus = "Approved"
	StatusRejected     ApprovalStatus = "Rejected"
)

// BalanceType distinguishes debit from credit opening balances.
type BalanceType string

const (
	BalanceDebit  BalanceType = "Dr"
	BalanceCredit BalanceType = "Cr"
)

// ApprovalState carries the workflow position shared by every approvable
// entity. It is embedded in each concrete entity and mutated only through the
// storage layer's conditional updates.
type ApprovalState struct {
	ID         string         `json:"id" dynamodbav:"id"`
	WorkflowID int            `json:"workflow_id" dynamodbav:"workflow_id"`
	Status     ApprovalStatus `json:"status" dynamodbav:"status"`
	LevelID    int            `json:"level_id" dynamodbav:"level_id"`
	CreatedAt  time.Time      `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at" dynamodbav:"updated_at"`
}

// Approvable is the capability every workflow-managed entity implements.
type Approvable interface {
	EntityID() string
	EntityType() EntityType
	Approval() *ApprovalState
}

func (a *ApprovalState) EntityID() string         { return a.ID }
func (a *ApprovalState) Approval() *ApprovalState { return a }

// Actor is the resolved identity attached to every workflow call. The core
// never authenticates; it consumes whatever the boundary resolved.
type Actor struct {
	ID          string `json:"id"`
	RoleID      int    `json:"role_id"`
	DisplayName string `json:"display_name"`
}

// Client is a top-level customer. Its code is globally sequenced (SC001, ...).
type Client struct {
	ApprovalState
	Code        string `json:"code" dynamodbav:"code"`
	Name        string `json:"name" dynamodbav:"name"`
	GSTIN       string `json:"gstin,omitempty" dynamodbav:"gstin,omitempty"`
	Address     string `json:"address,omitempty" dynamodbav:"address,omitempty"`
	ContactName string `json:"contact_name,omitempty" dynamodbav:"contact_name,omitempty"`
}

func (c *Client) EntityType() EntityType { return EntityTypeClient }

// CostCentreBalance is one opening-balance line of a sub-client, attributed to
// a cost centre. Amounts are stored in minor units.
type CostCentreBalance struct {
	CostCentreCode string    `json:"cost_centre_code" dynamodbav:"cost_centre_code"`
	CostCentreName string    `json:"cost_centre_name" dynamodbav:"cost_centre_name"`
	Basic          int64     `json:"basic" dynamodbav:"basic"`
	CGST           int64     `json:"cgst" dynamodbav:"cgst"`
	SGST           int64     `json:"sgst" dynamodbav:"sgst"`
	IGST           int64     `json:"igst" dynamodbav:"igst"`
	AsOf           time.Time `json:"as_of" dynamodbav:"as_of"`
}

// SubClient is a billing unit under a parent client. Its code extends the
// parent's (SC001 -> SC001001).
type SubClient struct {
	ApprovalState
	Code              string              `json:"code" dynamodbav:"code"`
	Name              string              `json:"name" dynamodbav:"name"`
	ClientID          string              `json:"client_id" dynamodbav:"client_id"`
	AccountGroupID    string              `json:"account_group_id" dynamodbav:"account_group_id"`
	HasOpeningBalance bool                `json:"has_opening_balance" dynamodbav:"has_opening_balance"`
	OpeningBalance    int64               `json:"opening_balance" dynamodbav:"opening_balance"`
	CostCentreLines   []CostCentreBalance `json:"cost_centre_lines,omitempty" dynamodbav:"cost_centre_lines,omitempty"`
}

func (s *SubClient) EntityType() EntityType { return EntityTypeSubClient }

// BankAccount is an approvable bank or overdraft account.
type BankAccount struct {
	ApprovalState
	Name           string `json:"name" dynamodbav:"name"`
	AccountNumber  string `json:"account_number" dynamodbav:"account_number"`
	AccountType    string `json:"account_type" dynamodbav:"account_type"` // Savings, Current, OD
	AccountGroupID string `json:"account_group_id" dynamodbav:"account_group_id"`
	OpeningBalance int64  `json:"opening_balance" dynamodbav:"opening_balance"`
	BankName       string `json:"bank_name,omitempty" dynamodbav:"bank_name,omitempty"`
	IFSC           string `json:"ifsc,omitempty" dynamodbav:"ifsc,omitempty"`
}

func (b *BankAccount) EntityType() EntityType { return EntityTypeBankAccount }

// LoanMode distinguishes freshly disbursed loans from loans onboarded with an
// outstanding balance.
type LoanMode string

const (
	LoanModeNew      LoanMode = "new"
	LoanModeExisting LoanMode = "existing"
)

// Loan is an approvable loan account.
type Loan struct {
	ApprovalState
	Name           string   `json:"name" dynamodbav:"name"`
	Mode           LoanMode `json:"mode" dynamodbav:"mode"`
	LoanAmount     int64    `json:"loan_amount" dynamodbav:"loan_amount"`
	CurrentBalance int64    `json:"current_balance" dynamodbav:"current_balance"`
	AccountGroupID string   `json:"account_group_id" dynamodbav:"account_group_id"`
	Lender         string   `json:"lender,omitempty" dynamodbav:"lender,omitempty"`
}

func (l *Loan) EntityType() EntityType { return EntityTypeLoan }

// GeneralLedger is a manually created ledger head routed through approval.
type GeneralLedger struct {
	ApprovalState
	Name           string      `json:"name" dynamodbav:"name"`
	AccountGroupID string      `json:"account_group_id" dynamodbav:"account_group_id"`
	OpeningBalance int64       `json:"opening_balance" dynamodbav:"opening_balance"`
	BalanceType    BalanceType `json:"balance_type" dynamodbav:"balance_type"`
}

func (g *GeneralLedger) EntityType() EntityType { return EntityTypeGeneralLedger }

// POStatus is the user-facing status mirrored from a client PO's workflow
// position.
type POStatus string

const (
	POStatusDraft      POStatus = "Draft"
	POStatusInProgress POStatus = "InProgress"
	POStatusApproved   POStatus = "Approved"
)

// ClientPO is a client purchase order.
type ClientPO struct {
	ApprovalState
	PONumber   string    `json:"po_number" dynamodbav:"po_number"`
	ClientID   string    `json:"client_id" dynamodbav:"client_id"`
	Amount     int64     `json:"amount" dynamodbav:"amount"`
	PODate     time.Time `json:"po_date" dynamodbav:"po_date"`
	POStatus   POStatus  `json:"po_status" dynamodbav:"po_status"`
	Descriptor string    `json:"descriptor,omitempty" dynamodbav:"descriptor,omitempty"`
}

func (p *ClientPO) EntityType() EntityType { return EntityTypeClientPO }

// GroupNature classifies an account group; it decides the debit/credit side of
// derived ledger entries.
type GroupNature string

const (
	NatureAsset     GroupNature = "Asset"
	NatureLiability GroupNature = "Liability"
	NatureIncome    GroupNature = "Income"
	NatureExpense   GroupNature = "Expense"
)

// AccountGroup is an approvable grouping of ledger heads.
type AccountGroup struct {
	ApprovalState
	Name   string      `json:"name" dynamodbav:"name"`
	Nature GroupNature `json:"nature" dynamodbav:"nature"`
	Parent string      `json:"parent,omitempty" dynamodbav:"parent,omitempty"`
}

func (a *AccountGroup) EntityType() EntityType { return EntityTypeAccountGroup }

// BalanceSide maps a group nature to the side its opening balances post on.
// Asset and Expense groups post debits; Liability and Income groups credits.
func (n GroupNature) BalanceSide() BalanceType {
	switch n {
	case NatureAsset, NatureExpense:
		return BalanceDebit
	default:
		return BalanceCredit
	}
}

// NewApprovable returns a zero value of the concrete entity behind a type,
// used by the storage layer to unmarshal records.
func NewApprovable(t EntityType) (Approvable, bool) {
	switch t {
	case EntityTypeClient:
		return &Client{}, true
	case EntityTypeSubClient:
		return &SubClient{}, true
	case EntityTypeBankAccount:
		return &BankAccount{}, true
	case EntityTypeLoan:
		return &Loan{}, true
	case EntityTypeGeneralLedger:
		return &GeneralLedger{}, true
	case EntityTypeClientPO:
		return &ClientPO{}, true
	case EntityTypeAccountGroup:
		return &AccountGroup{}, true
	}
	return nil, false
}

// CostCentre is a lookup record that opening-balance invoice lines must
// resolve against.
type CostCentre struct {
	Code string `json:"code" dynamodbav:"code"`
	Name string `json:"name" dynamodbav:"name"`
}
