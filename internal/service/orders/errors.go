package orders

import (
	"errors"
)

var ErrInvalidRange = errors.New("invalid date range")
