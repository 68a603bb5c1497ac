package workentry

import (
	"time"

	"github.com/Abraxas-365/laboral/pkg/kernel"
)

// OvertimeSurcharge is the legal multiplier applied to overtime hours
const OvertimeSurcharge = 1.5

// WorkEntry is a day of recorded work
type WorkEntry struct {
	ID          kernel.WorkEntryID `db:"id" json:"id"`
	UserID      kernel.UserID      `db:"user_id" json:"userId"`
	Date        kernel.Date        `db:"date" json:"date"`
	HoursWorked float64            `db:"hours_worked" json:"hoursWorked"`
	IsOvertime  bool               `db:"is_overtime" json:"isOvertime"`
	Notes       string             `db:"notes" json:"notes"`
	CreatedAt   time.Time          `db:"created_at" json:"createdAt"`
}

// BelongsTo checks entry ownership
func (w *WorkEntry) BelongsTo(userID kernel.UserID) bool {
	return w.UserID == userID
}

// InPeriod reports whether the entry falls in [from, to]; zero bounds are open
func (w *WorkEntry) InPeriod(from, to kernel.Date) bool {
	if !from.IsZero() && w.Date.Before(from) {
		return false
	}
	if !to.IsZero() && w.Date.After(to) {
		return false
	}
	return true
}

// Summary aggregates worked hours and the overtime they earn
type Summary struct {
	From          *kernel.Date `json:"from,omitempty"`
	To            *kernel.Date `json:"to,omitempty"`
	HourlyRate    float64      `json:"hourlyRate"`
	TotalHours    float64      `json:"totalHours"`
	OvertimeHours float64      `json:"overtimeHours"`
	OvertimePay   float64      `json:"overtimePay"`
}

// Summarize totals the entries inside [from, to] at the given hourly rate
func Summarize(entries []WorkEntry, hourlyRate float64, from, to kernel.Date) Summary {
	s := Summary{HourlyRate: hourlyRate}
	if !from.IsZero() {
		s.From = &from
	}
	if !to.IsZero() {
		s.To = &to
	}

	for i := range entries {
		e := &entries[i]
		if !e.InPeriod(from, to) {
			continue
		}
		s.TotalHours += e.HoursWorked
		if e.IsOvertime {
			s.OvertimeHours += e.HoursWorked
		}
	}
	s.OvertimePay = s.OvertimeHours * hourlyRate * OvertimeSurcharge
	return s
}
