package sideeffect

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/finsuite/erp-approvals/pkg/apperrors"
	"github.com/finsuite/erp-approvals/pkg/models"
	"github.com/finsuite/erp-approvals/pkg/storage/mocks"
)

func subClientFixture(lines []models.CostCentreBalance) *models.SubClient {
	return &models.SubClient{
		ApprovalState:     models.ApprovalState{ID: "sc1"},
		Code:              "SC001001",
		Name:              "Acme North",
		ClientID:          "c1",
		AccountGroupID:    "ag-debtors",
		HasOpeningBalance: len(lines) > 0,
		OpeningBalance:    120000,
		CostCentreLines:   lines,
	}
}

func newOnboardingMocks() (*SubClientOnboarding, *mocks.LedgerStore, *mocks.InvoiceStore, *mocks.CostCentreStore, *mocks.EntityStore) {
	ledger := new(mocks.LedgerStore)
	invoices := new(mocks.InvoiceStore)
	costCentres := new(mocks.CostCentreStore)
	entities := new(mocks.EntityStore)
	entities.On("GetEntity", mock.Anything, models.EntityTypeAccountGroup, "ag-debtors").Return(&models.AccountGroup{
		ApprovalState: models.ApprovalState{ID: "ag-debtors"},
		Name:          "Sundry Debtors",
		Nature:        models.NatureAsset,
	}, nil).Maybe()

	handler := &SubClientOnboarding{
		Ledger:      ledger,
		Invoices:    invoices,
		CostCentres: costCentres,
		Entities:    entities,
	}
	return handler, ledger, invoices, costCentres, entities
}

func TestSubClientOnboarding(t *testing.T) {
	asOf := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Ledger Entry Plus One Invoice Per Line", func(t *testing.T) {
		handler, ledger, invoices, costCentres, _ := newOnboardingMocks()

		ledger.On("CreateLedgerEntry", mock.Anything, mock.AnythingOfType("*models.LedgerEntry")).Return(nil)
		costCentres.On("GetCostCentre", mock.Anything, "CC01").Return(&models.CostCentre{Code: "CC01", Name: "North"}, nil)
		costCentres.On("GetCostCentre", mock.Anything, "CC02").Return(&models.CostCentre{Code: "CC02", Name: "South"}, nil)
		invoices.On("CreateInvoice", mock.Anything, mock.AnythingOfType("*models.Invoice")).Return(nil)

		sub := subClientFixture([]models.CostCentreBalance{
			{CostCentreCode: "CC01", CostCentreName: "North", Basic: 50000, CGST: 4500, SGST: 4500, AsOf: asOf},
			{CostCentreCode: "CC02", CostCentreName: "South", Basic: 60000, IGST: 10800, AsOf: asOf},
		})

		result, err := handler.Apply(context.Background(), sub)

		assert.NoError(t, err)
		assert.Len(t, result.LedgerEntries, 1)
		assert.Len(t, result.Invoices, 2)
		assert.Zero(t, result.Failed)

		first := result.Invoices[0]
		assert.Equal(t, "OPENING_BAL_SC001001_CC01", first.InvoiceNumber)
		assert.Equal(t, int64(50000), first.Basic)
		// Balances start equal to the originals.
		assert.Equal(t, first.Basic, first.BalanceBasic)
		assert.Equal(t, first.CGST, first.BalanceCGST)
		assert.Equal(t, asOf, first.InvoiceDate)
		invoices.AssertNumberOfCalls(t, "CreateInvoice", 2)
	})

	t.Run("Bad Line Is Skipped Others Go Through", func(t *testing.T) {
		handler, ledger, invoices, costCentres, _ := newOnboardingMocks()

		ledger.On("CreateLedgerEntry", mock.Anything, mock.Anything).Return(nil)
		costCentres.On("GetCostCentre", mock.Anything, "CC-GONE").Return(nil, apperrors.Dependency("cost centre CC-GONE could not be resolved"))
		costCentres.On("GetCostCentre", mock.Anything, "CC02").Return(&models.CostCentre{Code: "CC02", Name: "South"}, nil)
		invoices.On("CreateInvoice", mock.Anything, mock.AnythingOfType("*models.Invoice")).Return(nil)

		sub := subClientFixture([]models.CostCentreBalance{
			{CostCentreCode: "CC-GONE", CostCentreName: "Ghost", Basic: 100, AsOf: asOf},
			{CostCentreCode: "", CostCentreName: "Anonymous", Basic: 200, AsOf: asOf},
			{CostCentreCode: "CC02", CostCentreName: "South", Basic: 300, AsOf: asOf},
		})

		result, err := handler.Apply(context.Background(), sub)

		assert.NoError(t, err)
		assert.Len(t, result.Invoices, 1)
		assert.Equal(t, 2, result.Failed)
		assert.Len(t, result.Failures, 2)
		invoices.AssertNumberOfCalls(t, "CreateInvoice", 1)
	})

	t.Run("No Opening Balance Skips Invoices", func(t *testing.T) {
		handler, ledger, invoices, _, _ := newOnboardingMocks()

		ledger.On("CreateLedgerEntry", mock.Anything, mock.Anything).Return(nil)

		result, err := handler.Apply(context.Background(), subClientFixture(nil))

		assert.NoError(t, err)
		assert.Len(t, result.LedgerEntries, 1)
		assert.Empty(t, result.Invoices)
		invoices.AssertNotCalled(t, "CreateInvoice")
	})

	t.Run("Duplicate Invoice Number Counts As Failure", func(t *testing.T) {
		handler, ledger, invoices, costCentres, _ := newOnboardingMocks()

		ledger.On("CreateLedgerEntry", mock.Anything, mock.Anything).Return(nil)
		costCentres.On("GetCostCentre", mock.Anything, "CC01").Return(&models.CostCentre{Code: "CC01", Name: "North"}, nil)
		// Re-running the side effect collides on the deterministic number.
		invoices.On("CreateInvoice", mock.Anything, mock.Anything).Return(apperrors.Duplicate("invoice OPENING_BAL_SC001001_CC01 already exists"))

		sub := subClientFixture([]models.CostCentreBalance{
			{CostCentreCode: "CC01", CostCentreName: "North", Basic: 100, AsOf: asOf},
		})

		result, err := handler.Apply(context.Background(), sub)

		assert.NoError(t, err)
		assert.Equal(t, 1, result.Failed)
		assert.Empty(t, result.Invoices)
	})
}
