package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// Engine errors
	ErrAmountNotPositive       = errors.New("the amount must be positive")
	ErrAmountZero              = errors.New("the amount must not be zero")
	ErrInsufficientFunds       = errors.New("insufficient funds")
	ErrTransferTypeInvalid     = errors.New("the transfer type must be either \"balance\" or \"allocation\"")
	ErrDestinationRequired     = errors.New("a destination bucket is required for allocation transfers")
	ErrSourceEqualsDestination = errors.New("source and destination buckets must be different")
	ErrBucketNameNotUnique     = errors.New("the bucket name is already in use")
	ErrUsernameNotUnique       = errors.New("this username is already taken")
	ErrEmailNotUnique          = errors.New("a user with this email already exists")
	ErrCurrencyInvalid         = errors.New("the currency must be a valid ISO 4217 code")
)

// errInsufficientFunds wraps ErrInsufficientFunds with the amount that is
// available for the requested transfer so that clients can display it.
// The amount is formatted with locale aware digit grouping.
func errInsufficientFunds(available decimal.Decimal) error {
	p := message.NewPrinter(language.AmericanEnglish)
	f, _ := available.Round(2).Float64()
	return fmt.Errorf("%w. Available: %s", ErrInsufficientFunds, p.Sprintf("%.2f", f))
}
