// Package season partitions the day log by a date-derived season key.
package season

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pable/go-fieldday-stats/internal/model"
)

var ErrBadDate = errors.New("unparseable date")

// Key extracts the season key from a MM/DD/YY date: the trailing two-digit
// year. Dates that do not end in a parseable year yield ErrBadDate.
func Key(date string) (int, error) {
	parts := strings.Split(strings.TrimSpace(date), "/")
	yr := parts[len(parts)-1]
	n, err := strconv.Atoi(yr)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadDate, date)
	}
	return n, nil
}

// Warning records a row skipped during partitioning.
type Warning struct {
	Row  int64
	Date string
	Err  error
}

func (w Warning) String() string {
	return fmt.Sprintf("row %d (%s): %v", w.Row, w.Date, w.Err)
}

// Partition returns the rows belonging to the given season key, preserving
// log order. Rows whose date cannot be resolved are skipped with a warning
// rather than aborting the run.
func Partition(rows []model.DayRow, key int) ([]model.DayRow, []Warning) {
	var out []model.DayRow
	var warns []Warning
	for _, row := range rows {
		k, err := Key(row.Date)
		if err != nil {
			warns = append(warns, Warning{Row: row.ID, Date: row.Date, Err: err})
			continue
		}
		if k == key {
			out = append(out, row)
		}
	}
	return out, warns
}

// Label renders a season key as its display label, e.g. 23 → "2023".
func Label(key int) string {
	return fmt.Sprintf("20%02d", key)
}
