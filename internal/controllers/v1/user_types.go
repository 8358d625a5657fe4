package v1

import (
	"github.com/bucket-budget/backend/internal/models"
	"github.com/shopspring/decimal"
)

// UserEditable represents all user configurable parameters of a user
type UserEditable struct {
	Name     string `json:"name" example:"Morre" default:""`                  // Display name
	Username string `json:"username" binding:"required" example:"morre"`     // Unique login name
	Email    string `json:"email" binding:"required" example:"morre@example.com"`
	Currency string `json:"currency" example:"USD" default:"USD"` // ISO 4217 code used for display
}

func (editable UserEditable) model() models.User {
	return models.User{
		Name:     editable.Name,
		Username: editable.Username,
		Email:    editable.Email,
		Currency: editable.Currency,
	}
}

type UserResponse struct {
	Data  *models.User `json:"data"`                                                // Data for the user
	Error *string      `json:"error" example:"this username is already taken"`      // The error, if any occurred
}

// UnallocatedResponse reports the derived unallocated pool of the current
// user.
type UnallocatedResponse struct {
	Data  *decimal.Decimal `json:"data" example:"64.50"`                                               // The unallocated funds
	Error *string          `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}
