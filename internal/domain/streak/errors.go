package streak

import "errors"

var (
	ErrStreakNotFound = errors.New("streak not found")
)
