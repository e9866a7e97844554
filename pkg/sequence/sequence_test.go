package sequence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/finsuite/erp-approvals/pkg/apperrors"
	"github.com/finsuite/erp-approvals/pkg/storage/mocks"
)

func TestNextClientCode(t *testing.T) {
	t.Run("Formats With Fixed Prefix And Padding", func(t *testing.T) {
		counters := new(mocks.SequenceStore)
		counters.On("Next", mock.Anything, "clients").Return(int64(1), nil).Once()
		counters.On("Next", mock.Anything, "clients").Return(int64(42), nil).Once()

		gen := NewGenerator(counters)

		code, err := gen.NextClientCode(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "SC001", code)

		code, err = gen.NextClientCode(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "SC042", code)
		counters.AssertExpectations(t)
	})

	t.Run("Counter Failure Wraps As CodeGenerationError", func(t *testing.T) {
		counters := new(mocks.SequenceStore)
		counters.On("Next", mock.Anything, "clients").Return(int64(0), errors.New("throttled"))

		gen := NewGenerator(counters)

		_, err := gen.NextClientCode(context.Background())
		assert.Error(t, err)
		var cgErr *apperrors.CodeGenerationError
		assert.ErrorAs(t, err, &cgErr)
	})
}

func TestNextSubClientCode(t *testing.T) {
	t.Run("Extends Parent Code", func(t *testing.T) {
		counters := new(mocks.SequenceStore)
		counters.On("Next", mock.Anything, "sub-clients#SC001").Return(int64(1), nil).Once()
		counters.On("Next", mock.Anything, "sub-clients#SC001").Return(int64(2), nil).Once()
		counters.On("Next", mock.Anything, "sub-clients#SC007").Return(int64(1), nil).Once()

		gen := NewGenerator(counters)

		code, err := gen.NextSubClientCode(context.Background(), "SC001")
		assert.NoError(t, err)
		assert.Equal(t, "SC001001", code)

		code, err = gen.NextSubClientCode(context.Background(), "SC001")
		assert.NoError(t, err)
		assert.Equal(t, "SC001002", code)

		// Each parent numbers independently.
		code, err = gen.NextSubClientCode(context.Background(), "SC007")
		assert.NoError(t, err)
		assert.Equal(t, "SC007001", code)
		counters.AssertExpectations(t)
	})

	t.Run("Empty Parent Code Fails", func(t *testing.T) {
		counters := new(mocks.SequenceStore)
		gen := NewGenerator(counters)

		_, err := gen.NextSubClientCode(context.Background(), "")
		assert.Error(t, err)
		var cgErr *apperrors.CodeGenerationError
		assert.ErrorAs(t, err, &cgErr)
		counters.AssertNotCalled(t, "Next")
	})
}

func TestNextInvoiceNumber(t *testing.T) {
	counters := new(mocks.SequenceStore)
	counters.On("Next", mock.Anything, "invoices#2025-26").Return(int64(7), nil).Once()
	counters.On("Next", mock.Anything, "invoices#2024-25").Return(int64(1), nil).Once()

	gen := NewGenerator(counters)

	num, err := gen.NextInvoiceNumber(context.Background(), "ACME", time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)
	assert.Equal(t, "ACME/2025-26/007", num)

	// A March date numbers in the year that started the previous April.
	num, err = gen.NextInvoiceNumber(context.Background(), "ACME", time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)
	assert.Equal(t, "ACME/2024-25/001", num)
	counters.AssertExpectations(t)
}

func TestFinancialYear(t *testing.T) {
	cases := []struct {
		date time.Time
		want string
	}{
		{time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), "2025-26"},
		{time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC), "2024-25"},
		{time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC), "2025-26"},
		{time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), "2025-26"},
		{time.Date(2099, time.May, 1, 0, 0, 0, 0, time.UTC), "2099-00"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, FinancialYear(c.date), "date %s", c.date)
	}
}

func TestOpeningBalanceInvoiceNumber(t *testing.T) {
	assert.Equal(t, "OPENING_BAL_SC001001_CC01", OpeningBalanceInvoiceNumber("SC001001", "CC01"))
}
