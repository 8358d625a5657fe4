package v1

import (
	bb_uuid "github.com/bucket-budget/backend/internal/uuid"
)

type URIID struct {
	ID bb_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}
