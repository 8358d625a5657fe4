package v1

import (
	"github.com/bucket-budget/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AllocateRequest is the request body for funding buckets from the
// unallocated pool.
//
// Allocations maps bucket IDs to decimal amount strings. Entries with an
// unparseable ID or amount and entries with a non-positive amount are
// skipped.
type AllocateRequest struct {
	Allocations map[string]string `json:"allocations" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2:120.00"` // Bucket ID to amount
	Note        string            `json:"note" example:"March budget" default:""`                            // Note for the ledger entries
}

// ReallocateRequest is the request body for moving funds between buckets or
// back to the unallocated pool.
type ReallocateRequest struct {
	SourceBucketID      uuid.UUID       `json:"sourceBucketId" binding:"required" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Bucket the funds are taken from
	DestinationBucketID *uuid.UUID      `json:"destinationBucketId" example:"d9e4e4a4-b8c2-4c11-bc60-6ed54f3b5e28"`               // Receiving bucket, null for the unallocated pool
	Amount              decimal.Decimal `json:"amount" example:"30.00"`                          // Amount to move
	TransferType        string          `json:"transferType" example:"balance" enums:"balance,allocation"`
	Note                string          `json:"note" example:"Overspent on dining" default:""` // Note for the ledger entry
}

// EngineResult is the outcome of a successful allocate or reallocate call.
type EngineResult struct {
	Message     string          `json:"message" example:"Funds allocated successfully"`
	Buckets     []Bucket        `json:"buckets"`                     // All buckets the operation changed
	Unallocated decimal.Decimal `json:"unallocated" example:"64.50"` // The unallocated pool after the operation
}

type EngineResponse struct {
	Data  *EngineResult `json:"data"`                                                          // The outcome of the operation
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AllocationHistoryListResponse struct {
	Data  []models.AllocationHistory `json:"data"`                                                          // Ledger entries, newest first
	Error *string                    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AllocationHistoryQueryFilter struct {
	Limit int `form:"limit" filterField:"false"` // Maximum number of ledger entries to return, 0 returns all
}
