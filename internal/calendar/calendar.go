// Package calendar maps a date onto the two grid cells it blocks.
package calendar

import (
	"fmt"
	"strconv"
	"time"

	"svw.info/calpuzzle/internal/domain"
)

const (
	monthsPerRow = 6
	daysPerRow   = 7
	firstDayRow  = 2
)

var monthLabels = [12]string{
	"JAN", "FEB", "MAR", "APR", "MAY", "JUN",
	"JUL", "AUG", "SEP", "OCT", "NOV", "DEC",
}

// FromTime returns the puzzle date for t in t's own location.
func FromTime(t time.Time) domain.Date {
	return domain.Date{Month: int(t.Month()) - 1, Day: t.Day()}
}

// Validate checks that d names a month cell and a day cell.
func Validate(d domain.Date) error {
	if d.Month < 0 || d.Month > 11 {
		return fmt.Errorf("%w: month %d", domain.ErrInvalidDate, d.Month)
	}
	if d.Day < 1 || d.Day > 31 {
		return fmt.Errorf("%w: day %d", domain.ErrInvalidDate, d.Day)
	}
	return nil
}

// MonthCell is where month m (0-based) sits: two rows of six.
func MonthCell(m int) domain.CellCoord {
	return domain.CellCoord{Row: m / monthsPerRow, Col: m % monthsPerRow}
}

// DayCell is where day-of-month d sits: rows of seven from row 2.
func DayCell(d int) domain.CellCoord {
	return domain.CellCoord{Row: (d-1)/daysPerRow + firstDayRow, Col: (d - 1) % daysPerRow}
}

// BlockedCells returns the month cell and the day cell for d, in that order.
func BlockedCells(d domain.Date) ([]domain.CellCoord, error) {
	if err := Validate(d); err != nil {
		return nil, err
	}
	return []domain.CellCoord{MonthCell(d.Month), DayCell(d.Day)}, nil
}

// Label is the text printed on a grid cell. ok is false for cells that
// carry no label.
func Label(c domain.CellCoord) (string, bool) {
	switch {
	case c.Row < 0 || c.Col < 0:
		return "", false
	case c.Row < firstDayRow:
		if c.Col >= monthsPerRow {
			return "", false
		}
		return monthLabels[c.Row*monthsPerRow+c.Col], true
	case c.Col < daysPerRow:
		day := (c.Row-firstDayRow)*daysPerRow + c.Col + 1
		if day > 31 {
			return "", false
		}
		return strconv.Itoa(day), true
	}
	return "", false
}

// DisplayText renders d as shown above the board, e.g. "October 19".
func DisplayText(d domain.Date) string {
	return fmt.Sprintf("%s %d", time.Month(d.Month+1), d.Day)
}
