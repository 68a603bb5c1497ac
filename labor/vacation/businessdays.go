package vacation

import (
	"github.com/Abraxas-365/laboral/labor/holiday"
	"github.com/Abraxas-365/laboral/pkg/kernel"
)

// IsBusinessDay reports whether d is a weekday that is not a holiday
func IsBusinessDay(d kernel.Date, holidays holiday.Set) bool {
	return !d.IsWeekend() && !holidays.Contains(d)
}

// CountBusinessDays counts the business days in [start, end], both inclusive.
// A reversed range is rejected rather than swapped.
func CountBusinessDays(start, end kernel.Date, holidays holiday.Set) (int, error) {
	if start.IsZero() || end.IsZero() {
		return 0, ErrInvalidRange().WithDetail("reason", "missing endpoint")
	}
	if start.After(end) {
		return 0, ErrInvalidRange().
			WithDetail("start_date", start.String()).
			WithDetail("end_date", end.String()).
			WithDetail("reason", "start after end")
	}

	count := 0
	for d := start; !d.After(end); d = d.AddDays(1) {
		if IsBusinessDay(d, holidays) {
			count++
		}
	}
	return count, nil
}

// YearsSpanned lists the calendar years touched by [start, end]
func YearsSpanned(start, end kernel.Date) []int {
	if start.After(end) {
		start, end = end, start
	}
	years := make([]int, 0, end.Year()-start.Year()+1)
	for y := start.Year(); y <= end.Year(); y++ {
		years = append(years, y)
	}
	return years
}
