package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UnallocatedFunds computes the money that has been received as income but
// not yet assigned to any bucket:
//
//	sum(income record amounts) - sum(bucket allocated amounts)
//
// The value is derived on every call and never stored, so it stays
// consistent with the buckets and income records as long as those are only
// mutated through the engines.
func UnallocatedFunds(db *gorm.DB, userID uuid.UUID) (decimal.Decimal, error) {
	var income decimal.NullDecimal

	err := db.Model(&IncomeRecord{}).
		Select("SUM(amount)").
		Where(&IncomeRecord{UserID: userID}).
		Find(&income).
		Error
	if err != nil {
		return decimal.Zero, err
	}

	var allocated decimal.NullDecimal

	err = db.Model(&Bucket{}).
		Select("SUM(allocated_amount)").
		Where(&Bucket{UserID: userID}).
		Find(&allocated).
		Error
	if err != nil {
		return decimal.Zero, err
	}

	// Without any records, the sums are nil
	if !income.Valid {
		income.Decimal = decimal.Zero
	}

	if !allocated.Valid {
		allocated.Decimal = decimal.Zero
	}

	return income.Decimal.Sub(allocated.Decimal), nil
}
