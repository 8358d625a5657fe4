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

func (suite *TestSuiteStandard) TestIncomeCreate() {
	user := createTestUser(suite.T())

	tests := []struct {
		name         string
		amount       float64
		expectedType string
	}{
		{"Income", 2317.34, "income"},
		{"Withdrawal", -100, "withdrawal"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			record := createTestIncome(t, user, v1.IncomeRecordEditable{Amount: decimal.NewFromFloat(tt.amount)})

			assert.NotNil(t, record.Data)
			assert.Equal(t, tt.expectedType, record.Data.Type)
		})
	}
}

func (suite *TestSuiteStandard) TestIncomeCreateZeroAmount() {
	user := createTestUser(suite.T())

	response := createTestIncome(suite.T(), user, v1.IncomeRecordEditable{Amount: decimal.Zero}, http.StatusBadRequest)
	suite.Require().NotNil(response.Error)
}

func (suite *TestSuiteStandard) TestIncomeList() {
	user := createTestUser(suite.T())

	createTestIncome(suite.T(), user, v1.IncomeRecordEditable{Amount: decimal.NewFromFloat(100), Note: "First"})
	createTestIncome(suite.T(), user, v1.IncomeRecordEditable{Amount: decimal.NewFromFloat(200), Note: "Second"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/income", "", asUser(user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.IncomeRecordListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)

	notes := []string{response.Data[0].Note, response.Data[1].Note}
	suite.Assert().ElementsMatch([]string{"First", "Second"}, notes)
}

func (suite *TestSuiteStandard) TestIncomeDelete() {
	user := createTestUser(suite.T())
	record := createTestIncome(suite.T(), user, v1.IncomeRecordEditable{Amount: decimal.NewFromFloat(50)})

	// The unallocated pool reflects the income
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/unallocated", "", asUser(user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var unallocated v1.UnallocatedResponse
	test.DecodeResponse(suite.T(), &r, &unallocated)
	suite.Assert().True(unallocated.Data.Equal(decimal.NewFromFloat(50)), "unallocated is %s", unallocated.Data)

	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/income/%s", record.Data.ID), "", asUser(user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// Deleting the record shrinks the pool again
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/unallocated", "", asUser(user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &unallocated)
	suite.Assert().True(unallocated.Data.IsZero(), "unallocated is %s", unallocated.Data)
}

func (suite *TestSuiteStandard) TestIncomeDeleteOtherUser() {
	user := createTestUser(suite.T())
	other := createTestUser(suite.T())
	record := createTestIncome(suite.T(), other, v1.IncomeRecordEditable{Amount: decimal.NewFromFloat(50)})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/income/%s", record.Data.ID), "", asUser(user))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestIncomeOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestIncomeOptions() {
	user := createTestUser(suite.T())
	record := createTestIncome(suite.T(), user, v1.IncomeRecordEditable{Amount: decimal.NewFromFloat(1)})

	tests := []struct {
		name   string
		id     string
		status int
		allow  string
	}{
		{"No income record with this ID", uuid.New().String(), http.StatusNotFound, ""},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest, ""},
		{"Income record exists", record.Data.ID.String(), http.StatusNoContent, "OPTIONS, DELETE"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/income", tt.id)
			r := test.Request(t, http.MethodOptions, path, "", asUser(user))
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.allow != "" {
				assert.Equal(t, tt.allow, r.Header().Get("allow"))
			}
		})
	}
}
