package inventory

import "RentalCopilot/pkg/response"

var (
	ErrItemNotFound    = response.NewError(404, "inventory item not found")
	ErrInvalidCategory = response.NewError(400, "unknown inventory category")
)
