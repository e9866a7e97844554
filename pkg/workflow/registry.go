package workflow

import (
	"context"
	"fmt"

	"github.com/finsuite/erp-approvals/pkg/apperrors"
	"github.com/finsuite/erp-approvals/pkg/models"
	"github.com/finsuite/erp-approvals/pkg/sequence"
	"github.com/finsuite/erp-approvals/pkg/storage"
	"github.com/finsuite/erp-approvals/pkg/workflow/sideeffect"
)

// Workflow IDs, one per approvable entity type. Routing tables are configured
// against these.
const (
	WorkflowClient        = 1
	WorkflowSubClient     = 2
	WorkflowBankAccount   = 3
	WorkflowLoan          = 4
	WorkflowGeneralLedger = 5
	WorkflowClientPO      = 6
	WorkflowAccountGroup  = 7
)

// Definition is everything the engine needs to run one entity type through
// the shared state machine.
type Definition struct {
	WorkflowID int

	// Validate checks type-specific required fields before anything persists.
	Validate func(models.Approvable) error

	// Prepare runs after validation and before persistence: code assignment,
	// reference resolution, initial mirrored status. Optional.
	Prepare func(ctx context.Context, entity models.Approvable) error

	// SideEffect fires on terminal approval.
	SideEffect sideeffect.Handler

	// OnRejected fires on terminal rejection. Optional.
	OnRejected func(ctx context.Context, entity models.Approvable) error

	// Message renders the pending-notification text for a new entity.
	Message func(models.Approvable) string
}

// Registry maps entity types to their workflow definitions.
type Registry map[models.EntityType]*Definition

// Lookup resolves an entity type or fails with a NotFoundError.
func (r Registry) Lookup(t models.EntityType) (*Definition, error) {
	def, ok := r[t]
	if !ok {
		return nil, apperrors.NotFound("entity type", string(t))
	}
	return def, nil
}

// RegistryDeps are the collaborators the default definitions close over.
type RegistryDeps struct {
	Entities    storage.EntityStore
	Ledger      storage.LedgerStore
	Invoices    storage.InvoiceStore
	CostCentres storage.CostCentreStore
	Sequences   *sequence.Generator
}

// NewRegistry wires the default definition for every approvable entity type.
func NewRegistry(deps RegistryDeps) Registry {
	return Registry{
		models.EntityTypeClient: {
			WorkflowID: WorkflowClient,
			Validate: func(e models.Approvable) error {
				c := e.(*models.Client)
				if c.Name == "" {
					return apperrors.Validation("client name is required")
				}
				return nil
			},
			Prepare: func(ctx context.Context, e models.Approvable) error {
				c := e.(*models.Client)
				code, err := deps.Sequences.NextClientCode(ctx)
				if err != nil {
					return err
				}
				c.Code = code
				return nil
			},
			SideEffect: sideeffect.None{},
			Message: func(e models.Approvable) string {
				c := e.(*models.Client)
				return fmt.Sprintf("Client %s (%s) is awaiting verification", c.Name, c.Code)
			},
		},

		models.EntityTypeSubClient: {
			WorkflowID: WorkflowSubClient,
			Validate: func(e models.Approvable) error {
				s := e.(*models.SubClient)
				switch {
				case s.Name == "":
					return apperrors.Validation("sub-client name is required")
				case s.ClientID == "":
					return apperrors.Validation("parent client is required")
				case s.AccountGroupID == "":
					return apperrors.Validation("account group is required")
				case s.HasOpeningBalance && len(s.CostCentreLines) == 0:
					return apperrors.Validation("opening balance requires at least one cost centre line")
				}
				return nil
			},
			Prepare: func(ctx context.Context, e models.Approvable) error {
				s := e.(*models.SubClient)
				raw, err := deps.Entities.GetEntity(ctx, models.EntityTypeClient, s.ClientID)
				if err != nil {
					return apperrors.Dependency("parent client %s could not be resolved", s.ClientID)
				}
				parent := raw.(*models.Client)
				code, err := deps.Sequences.NextSubClientCode(ctx, parent.Code)
				if err != nil {
					return err
				}
				s.Code = code
				return nil
			},
			SideEffect: &sideeffect.SubClientOnboarding{
				Ledger:      deps.Ledger,
				Invoices:    deps.Invoices,
				CostCentres: deps.CostCentres,
				Entities:    deps.Entities,
			},
			Message: func(e models.Approvable) string {
				s := e.(*models.SubClient)
				return fmt.Sprintf("Sub-client %s (%s) is awaiting verification", s.Name, s.Code)
			},
		},

		models.EntityTypeBankAccount: {
			WorkflowID: WorkflowBankAccount,
			Validate: func(e models.Approvable) error {
				b := e.(*models.BankAccount)
				switch {
				case b.Name == "":
					return apperrors.Validation("account name is required")
				case b.AccountNumber == "":
					return apperrors.Validation("account number is required")
				case b.AccountType == "":
					return apperrors.Validation("account type is required")
				case b.AccountGroupID == "":
					return apperrors.Validation("account group is required")
				}
				return nil
			},
			SideEffect: &sideeffect.BankAccountLedger{Ledger: deps.Ledger},
			Message: func(e models.Approvable) string {
				b := e.(*models.BankAccount)
				return fmt.Sprintf("Bank account %s is awaiting verification", b.Name)
			},
		},

		models.EntityTypeLoan: {
			WorkflowID: WorkflowLoan,
			Validate: func(e models.Approvable) error {
				l := e.(*models.Loan)
				switch {
				case l.Name == "":
					return apperrors.Validation("loan name is required")
				case l.AccountGroupID == "":
					return apperrors.Validation("account group is required")
				case l.Mode != models.LoanModeNew && l.Mode != models.LoanModeExisting:
					return apperrors.Validation("loan mode must be new or existing")
				case l.LoanAmount <= 0:
					return apperrors.Validation("loan amount must be positive")
				}
				return nil
			},
			SideEffect: &sideeffect.LoanLedger{Ledger: deps.Ledger, Entities: deps.Entities},
			Message: func(e models.Approvable) string {
				l := e.(*models.Loan)
				return fmt.Sprintf("Loan %s is awaiting verification", l.Name)
			},
		},

		models.EntityTypeGeneralLedger: {
			WorkflowID: WorkflowGeneralLedger,
			Validate: func(e models.Approvable) error {
				g := e.(*models.GeneralLedger)
				switch {
				case g.Name == "":
					return apperrors.Validation("ledger name is required")
				case g.AccountGroupID == "":
					return apperrors.Validation("account group is required")
				case g.BalanceType != models.BalanceDebit && g.BalanceType != models.BalanceCredit:
					return apperrors.Validation("balance type must be Dr or Cr")
				}
				return nil
			},
			SideEffect: sideeffect.None{},
			Message: func(e models.Approvable) string {
				g := e.(*models.GeneralLedger)
				return fmt.Sprintf("General ledger %s is awaiting verification", g.Name)
			},
		},

		models.EntityTypeClientPO: {
			WorkflowID: WorkflowClientPO,
			Validate: func(e models.Approvable) error {
				p := e.(*models.ClientPO)
				switch {
				case p.PONumber == "":
					return apperrors.Validation("PO number is required")
				case p.ClientID == "":
					return apperrors.Validation("client is required")
				case p.Amount <= 0:
					return apperrors.Validation("PO amount must be positive")
				}
				return nil
			},
			Prepare: func(ctx context.Context, e models.Approvable) error {
				// Entering Verification mirrors as InProgress on the PO.
				e.(*models.ClientPO).POStatus = models.POStatusInProgress
				return nil
			},
			SideEffect: &sideeffect.POStatusMirror{Entities: deps.Entities},
			OnRejected: func(ctx context.Context, e models.Approvable) error {
				return deps.Entities.SetPOStatus(ctx, e.EntityID(), models.POStatusDraft)
			},
			Message: func(e models.Approvable) string {
				p := e.(*models.ClientPO)
				return fmt.Sprintf("Purchase order %s is awaiting verification", p.PONumber)
			},
		},

		models.EntityTypeAccountGroup: {
			WorkflowID: WorkflowAccountGroup,
			Validate: func(e models.Approvable) error {
				g := e.(*models.AccountGroup)
				if g.Name == "" {
					return apperrors.Validation("group name is required")
				}
				switch g.Nature {
				case models.NatureAsset, models.NatureLiability, models.NatureIncome, models.NatureExpense:
					return nil
				}
				return apperrors.Validation("group nature must be Asset, Liability, Income or Expense")
			},
			SideEffect: sideeffect.None{},
			Message: func(e models.Approvable) string {
				g := e.(*models.AccountGroup)
				return fmt.Sprintf("Account group %s is awaiting verification", g.Name)
			},
		},
	}
}
