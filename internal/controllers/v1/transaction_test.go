package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/bucket-budget/backend/internal/controllers/v1"
	"github.com/bucket-budget/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	user := createTestUser(suite.T())
	bucket := createTestBucket(suite.T(), user, v1.BucketEditable{Name: "Lunch money"})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/buckets/allocate", v1.AllocateRequest{
		Allocations: map[string]string{bucket.Data.ID.String(): "100"},
	}, asUser(user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	transaction := createTestTransaction(suite.T(), user, v1.TransactionEditable{
		BucketID: bucket.Data.ID,
		Amount:   decimal.NewFromFloat(14.5),
		Note:     "Lunch",
	})

	suite.Require().NotNil(transaction.Data)
	suite.Assert().Equal(bucket.Data.ID, transaction.Data.BucketID)
	suite.Assert().Equal("Lunch", transaction.Data.Note)

	// The bucket balance shrinks, the allocation stays
	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/buckets/%s", bucket.Data.ID), "", asUser(user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var after v1.BucketResponse
	test.DecodeResponse(suite.T(), &r, &after)
	suite.Assert().True(after.Data.CurrentBalance.Equal(decimal.NewFromFloat(85.5)), "current balance is %s", after.Data.CurrentBalance)
	suite.Assert().True(after.Data.AllocatedAmount.Equal(decimal.NewFromFloat(100)), "allocated amount is %s", after.Data.AllocatedAmount)
	suite.Assert().True(after.Data.Spent.Equal(decimal.NewFromFloat(14.5)), "spent is %s", after.Data.Spent)
}

func (suite *TestSuiteStandard) TestTransactionsCreateInvalid() {
	user := createTestUser(suite.T())
	bucket := createTestBucket(suite.T(), user, v1.BucketEditable{Name: "Strict"})

	tests := []struct {
		name   string
		body   v1.TransactionEditable
		status int
	}{
		{"Negative amount", v1.TransactionEditable{BucketID: bucket.Data.ID, Amount: decimal.NewFromFloat(-5)}, http.StatusBadRequest},
		{"Zero amount", v1.TransactionEditable{BucketID: bucket.Data.ID}, http.StatusBadRequest},
		{"Unknown bucket", v1.TransactionEditable{BucketID: uuid.New(), Amount: decimal.NewFromFloat(5)}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			createTestTransaction(t, user, tt.body, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsList() {
	user := createTestUser(suite.T())
	first := createTestBucket(suite.T(), user, v1.BucketEditable{Name: "List first"})
	second := createTestBucket(suite.T(), user, v1.BucketEditable{Name: "List second"})

	createTestTransaction(suite.T(), user, v1.TransactionEditable{BucketID: first.Data.ID, Amount: decimal.NewFromFloat(1)})
	createTestTransaction(suite.T(), user, v1.TransactionEditable{BucketID: first.Data.ID, Amount: decimal.NewFromFloat(2)})
	createTestTransaction(suite.T(), user, v1.TransactionEditable{BucketID: second.Data.ID, Amount: decimal.NewFromFloat(3)})

	tests := []struct {
		name  string
		url   string
		count int
	}{
		{"All transactions", "http://example.com/v1/transactions", 3},
		{"Filter by bucket", fmt.Sprintf("http://example.com/v1/transactions?bucket=%s", first.Data.ID), 2},
		{"Limit", "http://example.com/v1/transactions?limit=1", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, tt.url, "", asUser(user))
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsListInvalidBucketFilter() {
	user := createTestUser(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?bucket=NotAUUID", "", asUser(user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	user := createTestUser(suite.T())
	bucket := createTestBucket(suite.T(), user, v1.BucketEditable{Name: "Refundable"})

	transaction := createTestTransaction(suite.T(), user, v1.TransactionEditable{
		BucketID: bucket.Data.ID,
		Amount:   decimal.NewFromFloat(30),
	})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.Data.ID), "", asUser(user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// The balance is restored
	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/buckets/%s", bucket.Data.ID), "", asUser(user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var after v1.BucketResponse
	test.DecodeResponse(suite.T(), &r, &after)
	suite.Assert().True(after.Data.CurrentBalance.IsZero(), "current balance is %s", after.Data.CurrentBalance)

	// Deleting again returns a 404
	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.Data.ID), "", asUser(user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestTransactionsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestTransactionsOptions() {
	user := createTestUser(suite.T())
	bucket := createTestBucket(suite.T(), user, v1.BucketEditable{Name: "Options"})
	transaction := createTestTransaction(suite.T(), user, v1.TransactionEditable{BucketID: bucket.Data.ID, Amount: decimal.NewFromFloat(1)})

	tests := []struct {
		name   string
		id     string
		status int
		allow  string
	}{
		{"No transaction with this ID", uuid.New().String(), http.StatusNotFound, ""},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest, ""},
		{"Transaction exists", transaction.Data.ID.String(), http.StatusNoContent, "OPTIONS, DELETE"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/transactions", tt.id)
			r := test.Request(t, http.MethodOptions, path, "", asUser(user))
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.allow != "" {
				assert.Equal(t, tt.allow, r.Header().Get("allow"))
			}
		})
	}

	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/transactions", "", asUser(user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", r.Header().Get("allow"))
}
