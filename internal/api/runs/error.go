package runs

import "RentalCopilot/pkg/response"

var (
	ErrRunNotFound = response.NewError(404, "run not found")
)
