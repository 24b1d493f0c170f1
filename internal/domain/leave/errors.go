package leave

import "errors"

var (
	ErrLeaveNotFound         = errors.New("Leave application not found")
	ErrLeaveNotDeletable     = errors.New("Leave application not found or cannot be deleted")
	ErrLeaveAlreadyProcessed = errors.New("Leave application already processed")
)
