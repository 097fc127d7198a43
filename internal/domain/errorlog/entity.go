package errorlog

import "time"

type ErrorLog struct {
	ID             string
	ErrorMessage   string
	ErrorType      string
	ErrorTimestamp time.Time
	UserID         *string

	// DTO / Join
	UserEmail *string
}
