package holiday

import "errors"

// Holiday domain errors
var (
	ErrHolidayExists = errors.New("holiday already exists for this name and date")
)
