package errorlog

import "errors"

var (
	ErrErrorLogNotFound = errors.New("error log not found")
)
