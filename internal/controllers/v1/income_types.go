package v1

import (
	"fmt"
	"time"

	"github.com/bucket-budget/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IncomeRecordEditable represents all user configurable parameters of an
// income record
type IncomeRecordEditable struct {
	Amount decimal.Decimal `json:"amount" example:"2317.34"`               // Positive for income, negative for a withdrawal
	Note   string          `json:"note" example:"Salary March" default:""` // Note for the record
	Date   time.Time       `json:"date" example:"2024-03-01T00:00:00Z"`    // Date of the record, defaults to now
}

func (editable IncomeRecordEditable) model() models.IncomeRecord {
	return models.IncomeRecord{
		Amount: editable.Amount,
		Note:   editable.Note,
		Date:   editable.Date,
	}
}

type IncomeRecordLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/income/9b9b4f2e-77e5-4b1c-a68a-1c7e0a43fbd1"` // The income record itself
}

type IncomeRecord struct {
	models.DefaultModel
	UserID uuid.UUID         `json:"userId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the owning user
	Amount decimal.Decimal   `json:"amount" example:"2317.34"`
	Type   string            `json:"type" example:"income" enums:"income,withdrawal"` // Derived from the sign of the amount
	Note   string            `json:"note" example:"Salary March" default:""`
	Date   time.Time         `json:"date" example:"2024-03-01T00:00:00Z"`
	Links  IncomeRecordLinks `json:"links"`
}

func newIncomeRecord(c *gin.Context, model models.IncomeRecord) IncomeRecord {
	url := c.GetString(string(models.ContextURL))

	return IncomeRecord{
		DefaultModel: model.DefaultModel,
		UserID:       model.UserID,
		Amount:       model.Amount,
		Type:         model.Type(),
		Note:         model.Note,
		Date:         model.Date,
		Links: IncomeRecordLinks{
			Self: fmt.Sprintf("%s/v1/income/%s", url, model.ID),
		},
	}
}

type IncomeRecordListResponse struct {
	Data  []IncomeRecord `json:"data"`                                                          // List of income records, newest first
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type IncomeRecordResponse struct {
	Data  *IncomeRecord `json:"data"`                                                          // Data for the income record
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
