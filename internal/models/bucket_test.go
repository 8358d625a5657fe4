package models_test

import (
	"github.com/bucket-budget/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestGetBucketOtherUser() {
	user := suite.createTestUser()
	other := suite.createTestUser()
	bucket := suite.createTestBucket(other.ID, "Not yours", 0, 0)

	_, err := models.GetBucket(models.DB, bucket.ID, user.ID)
	suite.Require().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestBucketNameUnique() {
	user := suite.createTestUser()
	other := suite.createTestUser()

	suite.createTestBucket(user.ID, "Groceries 2", 0, 0)

	duplicate := models.Bucket{UserID: user.ID, Name: "Groceries 2"}
	err := models.DB.Create(&duplicate).Error
	suite.Require().ErrorIs(err, models.ErrBucketNameNotUnique)

	// The same name is fine for another user
	sameName := models.Bucket{UserID: other.ID, Name: "Groceries 2"}
	err = models.DB.Create(&sameName).Error
	suite.Require().NoError(err)
}

func (suite *TestSuiteStandard) TestBucketSpent() {
	user := suite.createTestUser()
	bucket := suite.createTestBucket(user.ID, "Spending", 100, 100)

	spent, err := bucket.Spent(models.DB)
	suite.Require().NoError(err)
	suite.Assert().True(spent.IsZero(), "spent is %s", spent)

	for _, amount := range []float64{12.5, 7.5} {
		transaction := models.Transaction{UserID: user.ID, BucketID: bucket.ID, Amount: decimal.NewFromFloat(amount)}
		suite.Require().NoError(models.CreateTransaction(models.DB, &transaction))
	}

	spent, err = bucket.Spent(models.DB)
	suite.Require().NoError(err)
	suite.Assert().True(spent.Equal(decimal.NewFromFloat(20)), "spent is %s", spent)
}

func (suite *TestSuiteStandard) TestDeleteBucketCascades() {
	user := suite.createTestUser()
	bucket := suite.createTestBucket(user.ID, "Doomed", 50, 50)

	transaction := models.Transaction{UserID: user.ID, BucketID: bucket.ID, Amount: decimal.NewFromFloat(10)}
	suite.Require().NoError(models.CreateTransaction(models.DB, &transaction))

	suite.Require().NoError(models.DeleteBucket(models.DB, bucket.ID, user.ID))

	_, err := models.GetBucket(models.DB, bucket.ID, user.ID)
	suite.Require().ErrorIs(err, models.ErrResourceNotFound)

	transactions, err := models.Transactions(models.DB, user.ID, 0)
	suite.Require().NoError(err)
	suite.Assert().Empty(transactions)
}
