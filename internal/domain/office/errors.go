package office

import "errors"

var (
	ErrOfficePolicyNotFound = errors.New("office settings not found")
	ErrOfficePolicyExists   = errors.New("office settings already exist")
)
