package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Bucket represents a named budget category.
//
// AllocatedAmount is the cumulative budget assigned to the bucket (minus
// reallocations out of it), CurrentBalance the money that is still available
// to spend from it. Spending only decrements CurrentBalance, so a heavily
// used bucket can be at a balance of zero while its allocation stays
// positive.
type Bucket struct {
	DefaultModel
	UserID          uuid.UUID       `json:"userId" gorm:"uniqueIndex:bucket_name_user_id" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`
	User            User            `json:"-"`
	Name            string          `json:"name" gorm:"uniqueIndex:bucket_name_user_id" example:"Groceries" default:""`
	IconName        string          `json:"iconName" example:"Shopping" default:""`
	AllocatedAmount decimal.Decimal `json:"allocatedAmount" gorm:"type:DECIMAL(20,8)" example:"180.00"`
	CurrentBalance  decimal.Decimal `json:"currentBalance" gorm:"type:DECIMAL(20,8)" example:"45.23"`
}

// BeforeSave trims whitespace from string fields.
func (b *Bucket) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.IconName = strings.TrimSpace(b.IconName)
	return nil
}

// GetBucket returns the bucket with the ID if it belongs to the user.
//
// A bucket of another user results in the same "not found" error as a
// bucket that does not exist, so that the existence of other users' buckets
// is not leaked.
func GetBucket(db *gorm.DB, id uuid.UUID, userID uuid.UUID) (Bucket, error) {
	var bucket Bucket
	err := db.Where(&Bucket{UserID: userID}).First(&bucket, "buckets.id = ?", id).Error
	if err != nil {
		return Bucket{}, err
	}

	return bucket, nil
}

// Buckets returns all buckets of the user.
func Buckets(db *gorm.DB, userID uuid.UUID) ([]Bucket, error) {
	var buckets []Bucket
	err := db.Where(&Bucket{UserID: userID}).Order("name ASC").Find(&buckets).Error
	if err != nil {
		return nil, err
	}

	return buckets, nil
}

// Transactions returns all transactions for this bucket.
func (b Bucket) Transactions(db *gorm.DB) ([]Transaction, error) {
	var transactions []Transaction
	err := db.Where(&Transaction{BucketID: b.ID}).Order("created_at DESC").Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// Spent returns the sum of all transactions for this bucket.
func (b Bucket) Spent(db *gorm.DB) (decimal.Decimal, error) {
	var spent decimal.NullDecimal

	err := db.Model(&Transaction{}).
		Select("SUM(amount)").
		Where(&Transaction{BucketID: b.ID}).
		Find(&spent).
		Error
	if err != nil {
		return decimal.Zero, err
	}

	// If no transactions are found, the value is nil
	if !spent.Valid {
		return decimal.Zero, nil
	}

	return spent.Decimal, nil
}

// DeleteBucket deletes the bucket and all its transactions.
func DeleteBucket(db *gorm.DB, id uuid.UUID, userID uuid.UUID) error {
	bucket, err := GetBucket(db, id, userID)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where(&Transaction{BucketID: bucket.ID}).Delete(&Transaction{}).Error
		if err != nil {
			return err
		}

		return tx.Delete(&bucket).Error
	})
}
