package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AllocationRequest is a single bucket funding within an AllocateFunds call.
type AllocationRequest struct {
	BucketID uuid.UUID
	Amount   decimal.Decimal
}

// AllocateFunds distributes funds from the unallocated pool into one or
// more buckets in a single operation.
//
// For every request, the bucket's allocated amount and current balance both
// grow by the requested amount and a ledger entry is appended. Requests
// with a non-positive amount are skipped silently, a bucket that does not
// exist or does not belong to the user fails the whole operation.
//
// Everything runs in one database transaction, so a failing request never
// leaves earlier requests of the same call applied.
//
// The engine does not check the requested total against the unallocated
// pool. Over-allocation is allowed and simply drives the pool negative,
// clients are expected to warn.
func AllocateFunds(db *gorm.DB, userID uuid.UUID, requests []AllocationRequest, note string) ([]Bucket, error) {
	buckets := make([]Bucket, 0, len(requests))

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, request := range requests {
			if !request.Amount.IsPositive() {
				continue
			}

			bucket, err := GetBucket(lockForUpdate(tx), request.BucketID, userID)
			if err != nil {
				return err
			}

			bucket.AllocatedAmount = bucket.AllocatedAmount.Add(request.Amount)
			bucket.CurrentBalance = bucket.CurrentBalance.Add(request.Amount)

			err = tx.Save(&bucket).Error
			if err != nil {
				return err
			}

			destinationID := bucket.ID
			entry := AllocationHistory{
				UserID:              userID,
				SourceBucketID:      nil,
				DestinationBucketID: &destinationID,
				Amount:              request.Amount,
				TransferType:        TransferAllocation,
				Note:                note,
			}

			err = tx.Create(&entry).Error
			if err != nil {
				return err
			}

			buckets = append(buckets, bucket)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return buckets, nil
}
