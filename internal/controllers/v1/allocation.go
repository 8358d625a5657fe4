package v1

import (
	"net/http"
	"sort"

	"github.com/bucket-budget/backend/internal/httputil"
	"github.com/bucket-budget/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegisterAllocationHistoryRoutes registers the routes for the allocation
// ledger with the RouterGroup that is passed.
func RegisterAllocationHistoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsAllocationHistoryList)
	r.GET("", GetAllocationHistory)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Router			/v1/allocations [options]
func OptionsAllocationHistoryList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Buckets
// @Success		204
// @Router			/v1/buckets/allocate [options]
func OptionsAllocate(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Buckets
// @Success		204
// @Router			/v1/buckets/reallocate [options]
func OptionsReallocate(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allocate funds
// @Description	Distributes funds from the unallocated pool into one or more buckets
// @Tags			Buckets
// @Accept			json
// @Produce		json
// @Success		200			{object}	EngineResponse
// @Failure		400			{object}	EngineResponse
// @Failure		404			{object}	EngineResponse
// @Failure		500			{object}	EngineResponse
// @Param			allocation	body		AllocateRequest	true	"Allocation"
// @Router			/v1/buckets/allocate [post]
func Allocate(c *gin.Context) {
	var body AllocateRequest

	err := httputil.BindData(c, &body)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EngineResponse{
			Error: &s,
		})
		return
	}

	// Maps have no order, sort the IDs so that the ledger entries are
	// created in a stable order
	ids := make([]string, 0, len(body.Allocations))
	for id := range body.Allocations {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	requests := make([]models.AllocationRequest, 0, len(ids))
	for _, id := range ids {
		bucketID, err := uuid.Parse(id)
		if err != nil {
			continue
		}

		amount, err := decimal.NewFromString(body.Allocations[id])
		if err != nil {
			continue
		}

		requests = append(requests, models.AllocationRequest{
			BucketID: bucketID,
			Amount:   amount,
		})
	}

	buckets, err := models.AllocateFunds(models.DB, currentUser(c).ID, requests, body.Note)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EngineResponse{
			Error: &s,
		})
		return
	}

	engineResponse(c, "Funds allocated successfully", buckets)
}

// @Summary		Reallocate funds
// @Description	Moves funds from one bucket to another bucket or back to the unallocated pool
// @Tags			Buckets
// @Accept			json
// @Produce		json
// @Success		200				{object}	EngineResponse
// @Failure		400				{object}	EngineResponse
// @Failure		404				{object}	EngineResponse
// @Failure		500				{object}	EngineResponse
// @Param			reallocation	body		ReallocateRequest	true	"Reallocation"
// @Router			/v1/buckets/reallocate [post]
func Reallocate(c *gin.Context) {
	var body ReallocateRequest

	err := httputil.BindData(c, &body)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EngineResponse{
			Error: &s,
		})
		return
	}

	buckets, err := models.ReallocateFunds(
		models.DB,
		currentUser(c).ID,
		body.SourceBucketID,
		body.DestinationBucketID,
		body.Amount,
		models.ReallocationMode(body.TransferType),
		body.Note,
	)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EngineResponse{
			Error: &s,
		})
		return
	}

	engineResponse(c, "Funds reallocated successfully", buckets)
}

// engineResponse writes the response for a successful engine operation,
// including the recomputed unallocated pool.
func engineResponse(c *gin.Context, message string, buckets []models.Bucket) {
	data := make([]Bucket, 0, len(buckets))
	for _, bucket := range buckets {
		apiResource, err := newBucket(c, models.DB, bucket)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), EngineResponse{
				Error: &s,
			})
			return
		}
		data = append(data, apiResource)
	}

	unallocated, err := models.UnallocatedFunds(models.DB, currentUser(c).ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EngineResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, EngineResponse{
		Data: &EngineResult{
			Message:     message,
			Buckets:     data,
			Unallocated: unallocated,
		},
	})
}

// @Summary		Get allocation history
// @Description	Returns the ledger of all allocation and reallocation transfers, newest first
// @Tags			Allocations
// @Produce		json
// @Success		200	{object}	AllocationHistoryListResponse
// @Failure		400	{object}	AllocationHistoryListResponse
// @Failure		500	{object}	AllocationHistoryListResponse
// @Router			/v1/allocations [get]
// @Param			limit	query	int	false	"Maximum number of ledger entries to return. Defaults to all."
func GetAllocationHistory(c *gin.Context) {
	var filter AllocationHistoryQueryFilter

	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, AllocationHistoryListResponse{
			Error: &s,
		})
		return
	}

	entries, err := models.AllocationHistories(models.DB, currentUser(c).ID, filter.Limit)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationHistoryListResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, AllocationHistoryListResponse{
		Data: entries,
	})
}
