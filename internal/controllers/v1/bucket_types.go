package v1

import (
	"fmt"

	"github.com/bucket-budget/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BucketEditable represents all user configurable parameters of a bucket
type BucketEditable struct {
	Name     string `json:"name" example:"Groceries" default:""`     // Name of the bucket
	IconName string `json:"iconName" example:"Shopping" default:""`  // Icon the UI shows for the bucket
}

func (editable BucketEditable) model() models.Bucket {
	return models.Bucket{
		Name:     editable.Name,
		IconName: editable.IconName,
	}
}

type BucketLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/buckets/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                      // The bucket itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?bucket=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Transactions for this bucket
}

type Bucket struct {
	models.DefaultModel
	BucketEditable
	UserID          uuid.UUID       `json:"userId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the owning user
	AllocatedAmount decimal.Decimal `json:"allocatedAmount" example:"180.00"`                      // Cumulative budget assigned to the bucket
	CurrentBalance  decimal.Decimal `json:"currentBalance" example:"45.23"`                        // Money still available to spend
	Spent           decimal.Decimal `json:"spent" example:"134.77"`                                // Sum of all transactions of the bucket
	Links           BucketLinks     `json:"links"`
}

func newBucket(c *gin.Context, db *gorm.DB, model models.Bucket) (Bucket, error) {
	url := c.GetString(string(models.ContextURL))

	spent, err := model.Spent(db)
	if err != nil {
		return Bucket{}, err
	}

	return Bucket{
		DefaultModel: model.DefaultModel,
		BucketEditable: BucketEditable{
			Name:     model.Name,
			IconName: model.IconName,
		},
		UserID:          model.UserID,
		AllocatedAmount: model.AllocatedAmount,
		CurrentBalance:  model.CurrentBalance,
		Spent:           spent,
		Links: BucketLinks{
			Self:         fmt.Sprintf("%s/v1/buckets/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?bucket=%s", url, model.ID),
		},
	}, nil
}

type BucketListResponse struct {
	Data  []Bucket `json:"data"`                                                          // List of buckets
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BucketResponse struct {
	Data  *Bucket `json:"data"`                                                          // Data for the bucket
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BucketQueryFilter struct {
	Name string `form:"name" filterField:"false"` // By name, glob patterns are supported
}
