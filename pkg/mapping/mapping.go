// Package mapping converts between the API wire shapes and the internal
// domain models.
package mapping

import (
	"encoding/json"

	"github.com/finsuite/erp-approvals/pkg/api"
	"github.com/finsuite/erp-approvals/pkg/apperrors"
	"github.com/finsuite/erp-approvals/pkg/models"
	"github.com/finsuite/erp-approvals/pkg/workflow"
)

// ToDomainActor converts an API actor to the domain model.
func ToDomainActor(a api.Actor) models.Actor {
	return models.Actor{
		ID:          a.ID,
		RoleID:      a.RoleID,
		DisplayName: a.DisplayName,
	}
}

// ToDomainEntity decodes a creation payload into the concrete domain entity
// for an entity type. Malformed payloads surface as ValidationErrors; field
// presence is checked later by the workflow registry.
func ToDomainEntity(t models.EntityType, raw json.RawMessage) (models.Approvable, error) {
	if len(raw) == 0 {
		return nil, apperrors.Validation("entity payload is required")
	}

	switch t {
	case models.EntityTypeClient:
		var p api.NewClient
		if err := decode(raw, &p); err != nil {
			return nil, err
		}
		return &models.Client{
			Name:        p.Name,
			GSTIN:       p.GSTIN,
			Address:     p.Address,
			ContactName: p.ContactName,
		}, nil

	case models.EntityTypeSubClient:
		var p api.NewSubClient
		if err := decode(raw, &p); err != nil {
			return nil, err
		}
		lines := make([]models.CostCentreBalance, len(p.CostCentreLines))
		for i, l := range p.CostCentreLines {
			lines[i] = models.CostCentreBalance{
				CostCentreCode: l.CostCentreCode,
				CostCentreName: l.CostCentreName,
				Basic:          l.Basic,
				CGST:           l.CGST,
				SGST:           l.SGST,
				IGST:           l.IGST,
				AsOf:           l.AsOf.Time,
			}
		}
		return &models.SubClient{
			Name:              p.Name,
			ClientID:          p.ClientID,
			AccountGroupID:    p.AccountGroupID,
			HasOpeningBalance: p.HasOpeningBalance,
			OpeningBalance:    p.OpeningBalance,
			CostCentreLines:   lines,
		}, nil

	case models.EntityTypeBankAccount:
		var p api.NewBankAccount
		if err := decode(raw, &p); err != nil {
			return nil, err
		}
		return &models.BankAccount{
			Name:           p.Name,
			AccountNumber:  p.AccountNumber,
			AccountType:    p.AccountType,
			AccountGroupID: p.AccountGroupID,
			OpeningBalance: p.OpeningBalance,
			BankName:       p.BankName,
			IFSC:           p.IFSC,
		}, nil

	case models.EntityTypeLoan:
		var p api.NewLoan
		if err := decode(raw, &p); err != nil {
			return nil, err
		}
		return &models.Loan{
			Name:           p.Name,
			Mode:           models.LoanMode(p.Mode),
			LoanAmount:     p.LoanAmount,
			CurrentBalance: p.CurrentBalance,
			AccountGroupID: p.AccountGroupID,
			Lender:         p.Lender,
		}, nil

	case models.EntityTypeGeneralLedger:
		var p api.NewGeneralLedger
		if err := decode(raw, &p); err != nil {
			return nil, err
		}
		return &models.GeneralLedger{
			Name:           p.Name,
			AccountGroupID: p.AccountGroupID,
			OpeningBalance: p.OpeningBalance,
			BalanceType:    models.BalanceType(p.BalanceType),
		}, nil

	case models.EntityTypeClientPO:
		var p api.NewClientPO
		if err := decode(raw, &p); err != nil {
			return nil, err
		}
		return &models.ClientPO{
			PONumber:   p.PONumber,
			ClientID:   p.ClientID,
			Amount:     p.Amount,
			PODate:     p.PODate.Time,
			POStatus:   models.POStatusDraft,
			Descriptor: p.Descriptor,
		}, nil

	case models.EntityTypeAccountGroup:
		var p api.NewAccountGroup
		if err := decode(raw, &p); err != nil {
			return nil, err
		}
		return &models.AccountGroup{
			Name:   p.Name,
			Nature: models.GroupNature(p.Nature),
			Parent: p.Parent,
		}, nil
	}

	return nil, apperrors.NotFound("entity type", string(t))
}

// ToVerifyResponse converts an engine verify result to the API shape.
func ToVerifyResponse(result *workflow.VerifyResult) *api.VerifyResponse {
	resp := &api.VerifyResponse{
		Outcome: string(result.Outcome),
		Entity:  result.Entity,
	}
	if result.Derived != nil {
		if len(result.Derived.LedgerEntries) > 0 {
			resp.LedgerEntries = result.Derived.LedgerEntries
		}
		if len(result.Derived.Invoices) > 0 {
			resp.Invoices = result.Derived.Invoices
		}
		resp.Failed = result.Derived.Failed
	}
	return resp
}

func decode(raw json.RawMessage, target interface{}) error {
	if err := json.Unmarshal(raw, target); err != nil {
		return apperrors.Validation("invalid entity payload: %v", err)
	}
	return nil
}
