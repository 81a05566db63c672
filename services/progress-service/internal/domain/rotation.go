package domain

import (
	"fmt"
	"time"
)

// SelectUnitForDate maps a calendar date onto 1..totalUnits. The date is read
// as the integer YYYYMMDD and reduced modulo totalUnits, so both partners of a
// couple land on the same unit on the same day.
func SelectUnitForDate(date time.Time, totalUnits int) (int, error) {
	if totalUnits < 1 {
		return 0, fmt.Errorf("%w: totalUnits must be positive, got %d", ErrInvalidArgument, totalUnits)
	}
	y, m, d := date.Date()
	derived := y*10000 + int(m)*100 + d
	return derived%totalUnits + 1, nil
}
