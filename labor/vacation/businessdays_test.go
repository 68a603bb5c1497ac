package vacation

import (
	"testing"

	"github.com/Abraxas-365/laboral/labor/holiday"
	"github.com/Abraxas-365/laboral/pkg/errx"
	"github.com/Abraxas-365/laboral/pkg/kernel"
)

func holidaySet(dates ...string) holiday.Set {
	list := make([]holiday.Holiday, 0, len(dates))
	for _, d := range dates {
		list = append(list, holiday.Holiday{Date: kernel.MustParseDate(d), Title: "test"})
	}
	return holiday.NewSet(list)
}

func TestCountBusinessDays(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		holidays holiday.Set
		want     int
	}{
		{name: "full work week", start: "2025-01-06", end: "2025-01-10", want: 5},
		{name: "weekend only", start: "2025-01-04", end: "2025-01-05", want: 0},
		{name: "single monday", start: "2025-01-06", end: "2025-01-06", want: 1},
		{name: "two weeks", start: "2025-01-06", end: "2025-01-19", want: 10},
		{name: "new year holiday", start: "2024-12-30", end: "2025-01-03", holidays: holidaySet("2025-01-01"), want: 4},
		{name: "fiestas patrias", start: "2025-09-15", end: "2025-09-19", holidays: holidaySet("2025-09-18", "2025-09-19"), want: 3},
		{name: "holiday on weekend", start: "2025-06-16", end: "2025-06-22", holidays: holidaySet("2025-06-21"), want: 5},
		{name: "only a holiday", start: "2025-05-01", end: "2025-05-01", holidays: holidaySet("2025-05-01"), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CountBusinessDays(kernel.MustParseDate(tt.start), kernel.MustParseDate(tt.end), tt.holidays)
			if err != nil {
				t.Fatalf("CountBusinessDays error = %v", err)
			}
			if got != tt.want {
				t.Errorf("CountBusinessDays(%s, %s) = %d, want %d", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestCountBusinessDays_NoHolidaysWeekdaysOnly(t *testing.T) {
	// Mon..Fri of any week has n = days + 1
	start := kernel.MustParseDate("2025-03-03")
	for n := 0; n < 5; n++ {
		end := start.AddDays(n)
		got, err := CountBusinessDays(start, end, nil)
		if err != nil {
			t.Fatalf("error = %v", err)
		}
		if got != start.DaysUntil(end)+1 {
			t.Errorf("%s..%s = %d, want %d", start, end, got, n+1)
		}
	}
}

func TestCountBusinessDays_InvalidRange(t *testing.T) {
	_, err := CountBusinessDays(kernel.MustParseDate("2025-01-10"), kernel.MustParseDate("2025-01-06"), nil)
	if !errx.IsCode(err, CodeInvalidRange) {
		t.Fatalf("reversed range error = %v, want %s", err, CodeInvalidRange)
	}

	_, err = CountBusinessDays(kernel.Date{}, kernel.MustParseDate("2025-01-06"), nil)
	if !errx.IsCode(err, CodeInvalidRange) {
		t.Fatalf("missing start error = %v, want %s", err, CodeInvalidRange)
	}
}

func TestYearsSpanned(t *testing.T) {
	got := YearsSpanned(kernel.MustParseDate("2024-12-23"), kernel.MustParseDate("2025-01-03"))
	if len(got) != 2 || got[0] != 2024 || got[1] != 2025 {
		t.Errorf("YearsSpanned = %v, want [2024 2025]", got)
	}
}

func TestBooking_Overlaps(t *testing.T) {
	b := Booking{StartDate: kernel.MustParseDate("2025-02-10"), EndDate: kernel.MustParseDate("2025-02-14")}

	tests := []struct {
		start, end string
		want       bool
	}{
		{"2025-02-03", "2025-02-07", false},
		{"2025-02-03", "2025-02-10", true},
		{"2025-02-12", "2025-02-12", true},
		{"2025-02-14", "2025-02-20", true},
		{"2025-02-15", "2025-02-20", false},
		{"2025-02-01", "2025-02-28", true},
	}
	for _, tt := range tests {
		if got := b.Overlaps(kernel.MustParseDate(tt.start), kernel.MustParseDate(tt.end)); got != tt.want {
			t.Errorf("Overlaps(%s, %s) = %v, want %v", tt.start, tt.end, got, tt.want)
		}
	}
}
