package models_test

import (
	"github.com/bucket-budget/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestUserDefaultBuckets() {
	user := suite.createTestUser()

	buckets, err := models.Buckets(models.DB, user.ID)
	suite.Require().NoError(err)
	suite.Require().Len(buckets, 4)

	names := make([]string, 0, len(buckets))
	for _, bucket := range buckets {
		names = append(names, bucket.Name)
		suite.Assert().True(bucket.AllocatedAmount.IsZero(), "allocated amount is %s", bucket.AllocatedAmount)
		suite.Assert().True(bucket.CurrentBalance.IsZero(), "current balance is %s", bucket.CurrentBalance)
	}

	suite.Assert().ElementsMatch([]string{"Groceries", "Transportation", "Entertainment", "Dining Out"}, names)
}

func (suite *TestSuiteStandard) TestUserUniqueConstraints() {
	user := suite.createTestUser()

	duplicateUsername := models.User{Username: user.Username, Email: "unique@example.com"}
	err := models.DB.Create(&duplicateUsername).Error
	suite.Require().ErrorIs(err, models.ErrUsernameNotUnique)

	duplicateEmail := models.User{Username: "unique", Email: user.Email}
	err = models.DB.Create(&duplicateEmail).Error
	suite.Require().ErrorIs(err, models.ErrEmailNotUnique)
}

func (suite *TestSuiteStandard) TestDeleteUser() {
	user := suite.createTestUser()
	other := suite.createTestUser()

	suite.createTestIncome(user.ID, 100)
	bucket := suite.createTestBucket(user.ID, "Deleted with account", 0, 0)

	transaction := models.Transaction{UserID: user.ID, BucketID: bucket.ID, Amount: decimal.NewFromFloat(10)}
	suite.Require().NoError(models.CreateTransaction(models.DB, &transaction))

	suite.Require().NoError(models.DeleteUser(models.DB, user.ID))

	_, err := models.GetUser(models.DB, user.ID)
	suite.Require().ErrorIs(err, models.ErrResourceNotFound)

	buckets, err := models.Buckets(models.DB, user.ID)
	suite.Require().NoError(err)
	suite.Assert().Empty(buckets)

	// Other users are not affected
	_, err = models.GetUser(models.DB, other.ID)
	suite.Require().NoError(err)
}

func (suite *TestSuiteStandard) TestWipeUserData() {
	user := suite.createTestUser()
	other := suite.createTestUser()

	suite.createTestIncome(user.ID, 100)
	bucket := suite.createTestBucket(user.ID, "Wiped bucket", 0, 0)

	_, err := models.AllocateFunds(models.DB, user.ID, []models.AllocationRequest{
		{BucketID: bucket.ID, Amount: decimal.NewFromFloat(50)},
	}, "")
	suite.Require().NoError(err)

	transaction := models.Transaction{UserID: user.ID, BucketID: bucket.ID, Amount: decimal.NewFromFloat(10)}
	suite.Require().NoError(models.CreateTransaction(models.DB, &transaction))

	otherIncome := suite.createTestIncome(other.ID, 25)

	suite.Require().NoError(models.WipeUserData(models.DB, user.ID))

	buckets, err := models.Buckets(models.DB, user.ID)
	suite.Require().NoError(err)
	suite.Assert().Empty(buckets)

	transactions, err := models.Transactions(models.DB, user.ID, 0)
	suite.Require().NoError(err)
	suite.Assert().Empty(transactions)

	records, err := models.IncomeRecords(models.DB, user.ID)
	suite.Require().NoError(err)
	suite.Assert().Empty(records)

	entries, err := models.AllocationHistories(models.DB, user.ID, 0)
	suite.Require().NoError(err)
	suite.Assert().Empty(entries)

	// The user itself is kept
	_, err = models.GetUser(models.DB, user.ID)
	suite.Require().NoError(err)

	// Other users' data stays untouched
	_, err = models.GetIncomeRecord(models.DB, otherIncome.ID, other.ID)
	suite.Require().NoError(err)

	otherBuckets, err := models.Buckets(models.DB, other.ID)
	suite.Require().NoError(err)
	suite.Assert().Len(otherBuckets, 4)
}
