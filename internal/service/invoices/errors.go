package invoices

import (
	"errors"
)

var (
	ErrInvalidPeriod   = errors.New("invalid settlement period")
	ErrVersionConflict = errors.New("invoice version already exists")
	ErrRateLimited     = errors.New("rate limited")
)
