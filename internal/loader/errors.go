package loader

import (
	"errors"
	"fmt"
)

var (
	ErrMissingInput = errors.New("input workbook not found")
	ErrMissingSheet = fmt.Errorf("%w: required sheet missing", ErrMissingInput)
)
