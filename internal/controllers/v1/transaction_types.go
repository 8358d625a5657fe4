package v1

import (
	"fmt"
	"time"

	"github.com/bucket-budget/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEditable represents all user configurable parameters of a
// transaction
type TransactionEditable struct {
	BucketID uuid.UUID       `json:"bucketId" binding:"required" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Bucket the money is spent from
	Amount   decimal.Decimal `json:"amount" example:"14.50"`                                                     // Amount spent, must be positive
	Note     string          `json:"note" example:"Lunch" default:""`                                            // Note for the transaction
	Date     time.Time       `json:"date" example:"2024-03-17T00:00:00Z"`                                        // Date of the transaction, defaults to now
}

func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		BucketID: editable.BucketID,
		Amount:   editable.Amount,
		Note:     editable.Note,
		Date:     editable.Date,
	}
}

type TransactionLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/transactions/d9e4e4a4-b8c2-4c11-bc60-6ed54f3b5e28"` // The transaction itself
	Bucket string `json:"bucket" example:"https://example.com/api/v1/buckets/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`    // The bucket the transaction belongs to
}

type Transaction struct {
	models.DefaultModel
	UserID   uuid.UUID        `json:"userId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the owning user
	BucketID uuid.UUID        `json:"bucketId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`
	Amount   decimal.Decimal  `json:"amount" example:"14.50"`
	Note     string           `json:"note" example:"Lunch" default:""`
	Date     time.Time        `json:"date" example:"2024-03-17T00:00:00Z"`
	Links    TransactionLinks `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.ContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		UserID:       model.UserID,
		BucketID:     model.BucketID,
		Amount:       model.Amount,
		Note:         model.Note,
		Date:         model.Date,
		Links: TransactionLinks{
			Self:   fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Bucket: fmt.Sprintf("%s/v1/buckets/%s", url, model.BucketID),
		},
	}
}

type TransactionListResponse struct {
	Data  []Transaction `json:"data"`                                                          // List of transactions, newest first
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // Data for the transaction
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	Bucket string `form:"bucket" filterField:"false"` // By bucket ID
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of transactions to return, 0 returns all
}
