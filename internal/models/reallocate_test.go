package models_test

import (
	"testing"

	"github.com/bucket-budget/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestReallocateBalance() {
	user := suite.createTestUser()
	source := suite.createTestBucket(user.ID, "Balance source", 100, 30)
	destination := suite.createTestBucket(user.ID, "Balance destination", 70, 50)

	destinationID := destination.ID
	buckets, err := models.ReallocateFunds(models.DB, user.ID, source.ID, &destinationID, decimal.NewFromFloat(20), models.ModeBalance, "")
	suite.Require().NoError(err)
	suite.Require().Len(buckets, 2)

	source, err = models.GetBucket(models.DB, source.ID, user.ID)
	suite.Require().NoError(err)
	suite.Assert().True(source.AllocatedAmount.Equal(decimal.NewFromFloat(100)), "allocated amount is %s", source.AllocatedAmount)
	suite.Assert().True(source.CurrentBalance.Equal(decimal.NewFromFloat(10)), "current balance is %s", source.CurrentBalance)

	destination, err = models.GetBucket(models.DB, destination.ID, user.ID)
	suite.Require().NoError(err)
	suite.Assert().True(destination.AllocatedAmount.Equal(decimal.NewFromFloat(70)), "allocated amount is %s", destination.AllocatedAmount)
	suite.Assert().True(destination.CurrentBalance.Equal(decimal.NewFromFloat(70)), "current balance is %s", destination.CurrentBalance)
}

// Returning cash to the unallocated pool shrinks the bucket's allocated
// amount so that the released money shows up as unallocated again.
func (suite *TestSuiteStandard) TestReallocateBalanceToPool() {
	user := suite.createTestUser()
	suite.createTestIncome(user.ID, 100)
	source := suite.createTestBucket(user.ID, "Pool return", 100, 60)

	_, err := models.ReallocateFunds(models.DB, user.ID, source.ID, nil, decimal.NewFromFloat(25), models.ModeBalance, "")
	suite.Require().NoError(err)

	source, err = models.GetBucket(models.DB, source.ID, user.ID)
	suite.Require().NoError(err)
	suite.Assert().True(source.AllocatedAmount.Equal(decimal.NewFromFloat(75)), "allocated amount is %s", source.AllocatedAmount)
	suite.Assert().True(source.CurrentBalance.Equal(decimal.NewFromFloat(35)), "current balance is %s", source.CurrentBalance)

	unallocated, err := models.UnallocatedFunds(models.DB, user.ID)
	suite.Require().NoError(err)
	suite.Assert().True(unallocated.Equal(decimal.NewFromFloat(25)), "unallocated is %s", unallocated)
}

func (suite *TestSuiteStandard) TestReallocateAllocation() {
	user := suite.createTestUser()
	source := suite.createTestBucket(user.ID, "Allocation source", 100, 30)
	destination := suite.createTestBucket(user.ID, "Allocation destination", 70, 50)

	destinationID := destination.ID
	_, err := models.ReallocateFunds(models.DB, user.ID, source.ID, &destinationID, decimal.NewFromFloat(40), models.ModeAllocation, "")
	suite.Require().NoError(err)

	source, err = models.GetBucket(models.DB, source.ID, user.ID)
	suite.Require().NoError(err)
	suite.Assert().True(source.AllocatedAmount.Equal(decimal.NewFromFloat(60)), "allocated amount is %s", source.AllocatedAmount)
	suite.Assert().True(source.CurrentBalance.Equal(decimal.NewFromFloat(-10)), "current balance is %s", source.CurrentBalance)

	destination, err = models.GetBucket(models.DB, destination.ID, user.ID)
	suite.Require().NoError(err)
	suite.Assert().True(destination.AllocatedAmount.Equal(decimal.NewFromFloat(110)), "allocated amount is %s", destination.AllocatedAmount)
	suite.Assert().True(destination.CurrentBalance.Equal(decimal.NewFromFloat(90)), "current balance is %s", destination.CurrentBalance)
}

// Verifies that a failing reallocation does not mutate anything and reports
// the available amount.
func (suite *TestSuiteStandard) TestReallocateInsufficientFunds() {
	user := suite.createTestUser()
	source := suite.createTestBucket(user.ID, "Insufficient source", 100, 30)
	destination := suite.createTestBucket(user.ID, "Insufficient destination", 0, 0)

	destinationID := destination.ID

	tests := []struct {
		name   string
		amount float64
		mode   models.ReallocationMode
	}{
		{"More than the balance", 31, models.ModeBalance},
		{"More than the allocation", 101, models.ModeAllocation},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, err := models.ReallocateFunds(models.DB, user.ID, source.ID, &destinationID, decimal.NewFromFloat(tt.amount), tt.mode, "")
			require.ErrorIs(t, err, models.ErrInsufficientFunds)
			assert.Contains(t, err.Error(), "Available:")

			s, err := models.GetBucket(models.DB, source.ID, user.ID)
			require.NoError(t, err)
			assert.True(t, s.AllocatedAmount.Equal(decimal.NewFromFloat(100)), "allocated amount is %s", s.AllocatedAmount)
			assert.True(t, s.CurrentBalance.Equal(decimal.NewFromFloat(30)), "current balance is %s", s.CurrentBalance)

			entries, err := models.AllocationHistories(models.DB, user.ID, 0)
			require.NoError(t, err)
			assert.Empty(t, entries)
		})
	}
}

func (suite *TestSuiteStandard) TestReallocateValidation() {
	user := suite.createTestUser()
	source := suite.createTestBucket(user.ID, "Validation source", 100, 100)
	sourceID := source.ID

	tests := []struct {
		name        string
		destination *uuid.UUID
		amount      float64
		mode        models.ReallocationMode
		err         error
	}{
		{"Zero amount", nil, 0, models.ModeBalance, models.ErrAmountNotPositive},
		{"Negative amount", nil, -10, models.ModeBalance, models.ErrAmountNotPositive},
		{"Invalid mode", nil, 10, "cheese", models.ErrTransferTypeInvalid},
		{"Allocation transfer without destination", nil, 10, models.ModeAllocation, models.ErrDestinationRequired},
		{"Source equals destination", &sourceID, 10, models.ModeBalance, models.ErrSourceEqualsDestination},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, err := models.ReallocateFunds(models.DB, user.ID, source.ID, tt.destination, decimal.NewFromFloat(tt.amount), tt.mode, "")
			require.ErrorIs(t, err, tt.err)
		})
	}
}

// The total money in the system does not change when funds are moved between
// buckets.
func (suite *TestSuiteStandard) TestReallocateConservation() {
	user := suite.createTestUser()
	suite.createTestIncome(user.ID, 300)

	source := suite.createTestBucket(user.ID, "Conservation source", 100, 100)
	destination := suite.createTestBucket(user.ID, "Conservation destination", 50, 50)

	total := func() decimal.Decimal {
		s, err := models.GetBucket(models.DB, source.ID, user.ID)
		suite.Require().NoError(err)
		d, err := models.GetBucket(models.DB, destination.ID, user.ID)
		suite.Require().NoError(err)
		unallocated, err := models.UnallocatedFunds(models.DB, user.ID)
		suite.Require().NoError(err)

		return s.CurrentBalance.Add(d.CurrentBalance).Add(unallocated)
	}

	before := total()

	destinationID := destination.ID
	_, err := models.ReallocateFunds(models.DB, user.ID, source.ID, &destinationID, decimal.NewFromFloat(30), models.ModeBalance, "")
	suite.Require().NoError(err)
	suite.Assert().True(total().Equal(before), "total changed from %s to %s", before, total())

	_, err = models.ReallocateFunds(models.DB, user.ID, source.ID, &destinationID, decimal.NewFromFloat(20), models.ModeAllocation, "")
	suite.Require().NoError(err)
	suite.Assert().True(total().Equal(before), "total changed from %s to %s", before, total())

	_, err = models.ReallocateFunds(models.DB, user.ID, source.ID, nil, decimal.NewFromFloat(10), models.ModeBalance, "")
	suite.Require().NoError(err)
	suite.Assert().True(total().Equal(before), "total changed from %s to %s", before, total())
}

func (suite *TestSuiteStandard) TestReallocateLedger() {
	user := suite.createTestUser()
	source := suite.createTestBucket(user.ID, "Ledger source", 100, 100)
	destination := suite.createTestBucket(user.ID, "Ledger destination", 0, 0)

	destinationID := destination.ID
	_, err := models.ReallocateFunds(models.DB, user.ID, source.ID, &destinationID, decimal.NewFromFloat(15), models.ModeBalance, "Topping up")
	suite.Require().NoError(err)

	entries, err := models.AllocationHistories(models.DB, user.ID, 0)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)

	entry := entries[0]
	suite.Assert().Equal(models.TransferReallocation, entry.TransferType)
	suite.Require().NotNil(entry.SourceBucketID)
	suite.Assert().Equal(source.ID, *entry.SourceBucketID)
	suite.Require().NotNil(entry.DestinationBucketID)
	suite.Assert().Equal(destination.ID, *entry.DestinationBucketID)
	suite.Assert().True(entry.Amount.Equal(decimal.NewFromFloat(15)), "amount is %s", entry.Amount)
	suite.Assert().Equal("Topping up", entry.Note)
}
