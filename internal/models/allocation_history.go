package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransferType describes which kind of transfer a ledger entry records.
type TransferType string

const (
	// TransferAllocation is a transfer from the unallocated pool into a bucket.
	TransferAllocation TransferType = "allocation"
	// TransferReallocation is a transfer between buckets or from a bucket
	// back to the unallocated pool.
	TransferReallocation TransferType = "reallocation"
)

// AllocationHistory is the append-only audit trail of every allocation and
// reallocation transfer.
//
// Entries are only ever created, inside the same database transaction as
// the bucket mutation they describe. They are never read back to compute
// state.
type AllocationHistory struct {
	DefaultModel
	UserID              uuid.UUID       `json:"userId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`
	User                User            `json:"-"`
	SourceBucketID      *uuid.UUID      `json:"sourceBucketId"`      // nil for allocations from the unallocated pool
	DestinationBucketID *uuid.UUID      `json:"destinationBucketId"` // nil for reallocations back to the unallocated pool
	Amount              decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"45.23"`
	TransferType        TransferType    `json:"transferType" example:"allocation"`
	Note                string          `json:"note" example:"March budget" default:""`
	Date                time.Time       `json:"date" example:"2024-03-01T00:00:00Z"`
}

// BeforeSave sets the timezone for the Date to UTC.
func (h *AllocationHistory) BeforeSave(_ *gorm.DB) error {
	if h.Date.IsZero() {
		h.Date = time.Now().In(time.UTC)
	} else {
		h.Date = h.Date.In(time.UTC)
	}

	return nil
}

// AfterFind enforces dates to be in UTC.
func (h *AllocationHistory) AfterFind(tx *gorm.DB) error {
	err := h.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	h.Date = h.Date.In(time.UTC)
	return nil
}

// AllocationHistories returns the user's ledger entries, newest first. A
// limit of 0 returns all entries.
func AllocationHistories(db *gorm.DB, userID uuid.UUID, limit int) ([]AllocationHistory, error) {
	q := db.Where(&AllocationHistory{UserID: userID}).Order("created_at DESC")

	if limit > 0 {
		q = q.Limit(limit)
	}

	var entries []AllocationHistory
	err := q.Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}
