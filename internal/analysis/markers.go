package analysis

import (
	"fmt"
	"strings"
	"time"

	"github.com/blaisecz/fitbit-sleep/internal/domain"
)

// DefaultReferenceDay marks the start of each week on time-series charts.
const DefaultReferenceDay = time.Monday

// ParseWeekday resolves an English weekday name, case-insensitively.
// An empty name yields DefaultReferenceDay.
func ParseWeekday(name string) (time.Weekday, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultReferenceDay, nil
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), name) {
			return d, nil
		}
	}
	return DefaultReferenceDay, fmt.Errorf("%w: unknown weekday %q", domain.ErrInvalidInput, name)
}

// WeeklyMarkers returns the sleep dates whose dayOfWeek is the reference day.
func WeeklyMarkers(table *domain.SleepTable, weekday time.Weekday) []time.Time {
	var dates []time.Time
	for _, r := range table.Rows {
		if day, _ := r.Values[domain.ColumnDayOfWeek].(string); day == weekday.String() {
			dates = append(dates, r.Date)
		}
	}
	return dates
}
