package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// IncomeRecord represents an adjustment of the unallocated pool.
//
// A positive amount is income, a negative amount removes funds from the
// pool. The sign is kept instead of a separate withdrawal table so that the
// unallocated funds are a plain sum over all records.
type IncomeRecord struct {
	DefaultModel
	UserID uuid.UUID       `json:"userId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`
	User   User            `json:"-"`
	Amount decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"2317.34"`
	Note   string          `json:"note" example:"Salary March" default:""`
	Date   time.Time       `json:"date" example:"2024-03-01T00:00:00Z"`
}

// Type returns whether the record is income or a withdrawal from the
// unallocated pool.
func (i IncomeRecord) Type() string {
	if i.Amount.IsNegative() {
		return "withdrawal"
	}

	return "income"
}

// BeforeSave sets the timezone for the Date to UTC and trims whitespace.
func (i *IncomeRecord) BeforeSave(_ *gorm.DB) error {
	i.Note = strings.TrimSpace(i.Note)

	if i.Date.IsZero() {
		i.Date = time.Now().In(time.UTC)
	} else {
		i.Date = i.Date.In(time.UTC)
	}

	return nil
}

// AfterFind enforces dates to be in UTC.
func (i *IncomeRecord) AfterFind(tx *gorm.DB) error {
	err := i.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	i.Date = i.Date.In(time.UTC)
	return nil
}

// GetIncomeRecord returns the income record with the ID if it belongs to
// the user.
func GetIncomeRecord(db *gorm.DB, id uuid.UUID, userID uuid.UUID) (IncomeRecord, error) {
	var record IncomeRecord
	err := db.Where(&IncomeRecord{UserID: userID}).First(&record, "income_records.id = ?", id).Error
	if err != nil {
		return IncomeRecord{}, err
	}

	return record, nil
}

// IncomeRecords returns all income records of the user, newest first.
func IncomeRecords(db *gorm.DB, userID uuid.UUID) ([]IncomeRecord, error) {
	var records []IncomeRecord
	err := db.Where(&IncomeRecord{UserID: userID}).Order("created_at DESC").Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}
