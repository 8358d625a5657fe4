package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction represents money spent from a bucket.
type Transaction struct {
	DefaultModel
	UserID   uuid.UUID       `json:"userId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`
	User     User            `json:"-"`
	BucketID uuid.UUID       `json:"bucketId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`
	Bucket   Bucket          `json:"-"`
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"14.50"`
	Note     string          `json:"note" example:"Lunch" default:""`
	Date     time.Time       `json:"date" example:"2024-03-17T00:00:00Z"`
}

// BeforeSave sets the timezone for the Date to UTC and trims whitespace.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Note = strings.TrimSpace(t.Note)

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}

// AfterFind enforces dates to be in UTC.
func (t *Transaction) AfterFind(tx *gorm.DB) error {
	err := t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return nil
}

// CreateTransaction records a spend against a bucket and decrements the
// bucket's current balance, both in one database transaction.
func CreateTransaction(db *gorm.DB, transaction *Transaction) error {
	if !transaction.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	return db.Transaction(func(tx *gorm.DB) error {
		bucket, err := GetBucket(lockForUpdate(tx), transaction.BucketID, transaction.UserID)
		if err != nil {
			return err
		}

		err = tx.Create(transaction).Error
		if err != nil {
			return err
		}

		bucket.CurrentBalance = bucket.CurrentBalance.Sub(transaction.Amount)
		return tx.Save(&bucket).Error
	})
}

// DeleteTransaction deletes a transaction and restores the balance of its
// bucket.
func DeleteTransaction(db *gorm.DB, id uuid.UUID, userID uuid.UUID) error {
	var transaction Transaction
	err := db.Where(&Transaction{UserID: userID}).First(&transaction, "transactions.id = ?", id).Error
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Delete(&transaction).Error
		if err != nil {
			return err
		}

		// The bucket may already be gone when transactions are cleaned up
		// after a bucket deletion
		bucket, err := GetBucket(lockForUpdate(tx), transaction.BucketID, userID)
		if err != nil {
			return nil
		}

		bucket.CurrentBalance = bucket.CurrentBalance.Add(transaction.Amount)
		return tx.Save(&bucket).Error
	})
}

// Transactions returns the user's transactions, newest first. A limit of 0
// returns all transactions.
func Transactions(db *gorm.DB, userID uuid.UUID, limit int) ([]Transaction, error) {
	q := db.Where(&Transaction{UserID: userID}).Order("created_at DESC")

	if limit > 0 {
		q = q.Limit(limit)
	}

	var transactions []Transaction
	err := q.Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}
