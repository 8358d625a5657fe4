package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReallocationMode selects which bucket fields a reallocation moves.
type ReallocationMode string

const (
	// ModeBalance moves spendable cash without changing the budget of
	// either bucket. For transfers back to the unallocated pool, the
	// source's allocated amount shrinks as well, otherwise the released
	// cash would never show up as unallocated again.
	ModeBalance ReallocationMode = "balance"
	// ModeAllocation moves both the budget and the cash (full re-budgeting).
	ModeAllocation ReallocationMode = "allocation"
)

// ReallocateFunds moves funds from one bucket to another bucket, or back to
// the unallocated pool when destinationID is nil.
//
// The amount must not exceed what is available in the selected mode: the
// source's current balance for ModeBalance, its allocated amount for
// ModeAllocation. On violation nothing is mutated and the returned error
// reports the available amount.
//
// Allocation transfers to the unallocated pool are not part of the public
// contract and are rejected.
//
// Both bucket writes and the ledger entry happen in one database
// transaction.
func ReallocateFunds(db *gorm.DB, userID uuid.UUID, sourceID uuid.UUID, destinationID *uuid.UUID, amount decimal.Decimal, mode ReallocationMode, note string) ([]Bucket, error) {
	if !amount.IsPositive() {
		return nil, ErrAmountNotPositive
	}

	if mode != ModeBalance && mode != ModeAllocation {
		return nil, ErrTransferTypeInvalid
	}

	if mode == ModeAllocation && destinationID == nil {
		return nil, ErrDestinationRequired
	}

	if destinationID != nil && *destinationID == sourceID {
		return nil, ErrSourceEqualsDestination
	}

	var buckets []Bucket

	err := db.Transaction(func(tx *gorm.DB) error {
		source, err := GetBucket(lockForUpdate(tx), sourceID, userID)
		if err != nil {
			return err
		}

		available := source.CurrentBalance
		if mode == ModeAllocation {
			available = source.AllocatedAmount
		}

		if amount.GreaterThan(available) {
			return errInsufficientFunds(available)
		}

		var destination *Bucket
		if destinationID != nil {
			bucket, err := GetBucket(lockForUpdate(tx), *destinationID, userID)
			if err != nil {
				return err
			}
			destination = &bucket
		}

		source.CurrentBalance = source.CurrentBalance.Sub(amount)

		switch {
		case mode == ModeBalance && destination != nil:
			destination.CurrentBalance = destination.CurrentBalance.Add(amount)

		case mode == ModeBalance && destination == nil:
			// Returning cash to the unallocated pool shrinks the bucket's
			// claim on the budget as well
			source.AllocatedAmount = source.AllocatedAmount.Sub(amount)

		case mode == ModeAllocation:
			source.AllocatedAmount = source.AllocatedAmount.Sub(amount)
			destination.AllocatedAmount = destination.AllocatedAmount.Add(amount)
			destination.CurrentBalance = destination.CurrentBalance.Add(amount)
		}

		err = tx.Save(&source).Error
		if err != nil {
			return err
		}

		buckets = append(buckets, source)

		if destination != nil {
			err = tx.Save(destination).Error
			if err != nil {
				return err
			}

			buckets = append(buckets, *destination)
		}

		entry := AllocationHistory{
			UserID:              userID,
			SourceBucketID:      &sourceID,
			DestinationBucketID: destinationID,
			Amount:              amount,
			TransferType:        TransferReallocation,
			Note:                note,
		}

		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, err
	}

	return buckets, nil
}
