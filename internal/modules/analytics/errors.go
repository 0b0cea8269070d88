package analytics

import "errors"

var (
	ErrUnknownEventType = errors.New("unknown event type")
	ErrInvalidRetention = errors.New("retention must be at least one day")
)
