package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/bucket-budget/backend/internal/controllers/v1"
	"github.com/bucket-budget/backend/internal/models"
	"github.com/bucket-budget/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestBucketsCreate() {
	user := createTestUser(suite.T())

	bucket := createTestBucket(suite.T(), user, v1.BucketEditable{Name: "Holidays", IconName: "Beach"})

	suite.Require().NotNil(bucket.Data)
	suite.Assert().Equal("Holidays", bucket.Data.Name)
	suite.Assert().Equal("Beach", bucket.Data.IconName)
	suite.Assert().Equal(user.ID, bucket.Data.UserID)
	suite.Assert().True(bucket.Data.AllocatedAmount.IsZero())
	suite.Assert().True(bucket.Data.CurrentBalance.IsZero())
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/buckets/%s", bucket.Data.ID), bucket.Data.Links.Self)
}

func (suite *TestSuiteStandard) TestBucketsCreateDuplicateName() {
	user := createTestUser(suite.T())

	createTestBucket(suite.T(), user, v1.BucketEditable{Name: "Twice"})
	response := createTestBucket(suite.T(), user, v1.BucketEditable{Name: "Twice"}, http.StatusBadRequest)

	suite.Require().NotNil(response.Error)
	suite.Assert().Equal(models.ErrBucketNameNotUnique.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestBucketsList() {
	user := createTestUser(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/buckets", "", asUser(user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BucketListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// The default starter buckets
	suite.Assert().Len(response.Data, 4)
}

func (suite *TestSuiteStandard) TestBucketsListNameFilter() {
	user := createTestUser(suite.T())

	tests := []struct {
		name    string
		pattern string
		count   int
	}{
		{"Exact match", "Groceries", 1},
		{"Glob", "*n*", 3},
		{"Match all", "*", 4},
		{"No match", "Cheese", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/buckets?name=%s", tt.pattern), "", asUser(user))
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.BucketListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestBucketsGetSingle() {
	user := createTestUser(suite.T())
	bucket := createTestBucket(suite.T(), user, v1.BucketEditable{})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing bucket", bucket.Data.ID.String(), http.StatusOK},
		{"No bucket with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/buckets/%s", tt.id), "", asUser(user))
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// Buckets of other users look exactly like buckets that do not exist.
func (suite *TestSuiteStandard) TestBucketsOwnershipIsolation() {
	user := createTestUser(suite.T())
	other := createTestUser(suite.T())
	bucket := createTestBucket(suite.T(), other, v1.BucketEditable{})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/buckets/%s", bucket.Data.ID), "", asUser(user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/buckets/%s", bucket.Data.ID), "", asUser(user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBucketsUpdate() {
	user := createTestUser(suite.T())
	bucket := createTestBucket(suite.T(), user, v1.BucketEditable{Name: "Old name", IconName: "Old icon"})

	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/buckets/%s", bucket.Data.ID), map[string]any{
		"name": "New name",
	}, asUser(user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BucketResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("New name", response.Data.Name)

	// Fields not in the body stay untouched
	suite.Assert().Equal("Old icon", response.Data.IconName)
}

func (suite *TestSuiteStandard) TestBucketsDelete() {
	user := createTestUser(suite.T())
	bucket := createTestBucket(suite.T(), user, v1.BucketEditable{})

	transaction := createTestTransaction(suite.T(), user, v1.TransactionEditable{
		BucketID: bucket.Data.ID,
		Amount:   decimal.NewFromFloat(10),
	})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/buckets/%s", bucket.Data.ID), "", asUser(user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/buckets/%s", bucket.Data.ID), "", asUser(user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// The bucket's transactions are deleted with it
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "", asUser(user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var transactions v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &transactions)

	for _, tr := range transactions.Data {
		require.NotEqual(suite.T(), transaction.Data.ID, tr.ID)
	}
}

// TestBucketsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestBucketsOptions() {
	user := createTestUser(suite.T())

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No bucket with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Bucket exists", createTestBucket(suite.T(), user, v1.BucketEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/buckets", tt.id)
			r := test.Request(t, http.MethodOptions, path, "", asUser(user))
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestBucketsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestBucketsDBClosed() {
	user := createTestUser(suite.T())

	suite.CloseDB()

	// The user middleware cannot resolve the user anymore
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/buckets", v1.BucketEditable{Name: "Closed"}, asUser(user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}
