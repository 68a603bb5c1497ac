package workentry

import (
	"testing"

	"github.com/Abraxas-365/laboral/pkg/errx"
	"github.com/Abraxas-365/laboral/pkg/kernel"
)

func entry(date string, hours float64, overtime bool) WorkEntry {
	return WorkEntry{Date: kernel.MustParseDate(date), HoursWorked: hours, IsOvertime: overtime}
}

func TestSummarize(t *testing.T) {
	entries := []WorkEntry{
		entry("2025-03-10", 9, false),
		entry("2025-03-11", 2.5, true),
		entry("2025-03-12", 1.5, true),
		entry("2025-04-01", 3, true),
	}

	tests := []struct {
		name          string
		from, to      string
		wantTotal     float64
		wantOvertime  float64
		wantOvertimeP float64
	}{
		{name: "all time", wantTotal: 16, wantOvertime: 7, wantOvertimeP: 105000},
		{name: "march", from: "2025-03-01", to: "2025-03-31", wantTotal: 13, wantOvertime: 4, wantOvertimeP: 60000},
		{name: "inclusive bounds", from: "2025-03-11", to: "2025-03-11", wantTotal: 2.5, wantOvertime: 2.5, wantOvertimeP: 37500},
		{name: "open start", to: "2025-03-10", wantTotal: 9},
		{name: "empty period", from: "2026-01-01", wantTotal: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var from, to kernel.Date
			if tt.from != "" {
				from = kernel.MustParseDate(tt.from)
			}
			if tt.to != "" {
				to = kernel.MustParseDate(tt.to)
			}

			got := Summarize(entries, 10000, from, to)
			if got.TotalHours != tt.wantTotal || got.OvertimeHours != tt.wantOvertime || got.OvertimePay != tt.wantOvertimeP {
				t.Errorf("Summarize() = %+v, want total=%v overtime=%v pay=%v", got, tt.wantTotal, tt.wantOvertime, tt.wantOvertimeP)
			}
			if (tt.from == "") != (got.From == nil) {
				t.Errorf("From = %v", got.From)
			}
		})
	}
}

func TestCreateWorkEntryRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateWorkEntryRequest
		wantErr bool
	}{
		{name: "ok", req: CreateWorkEntryRequest{Date: kernel.MustParseDate("2025-03-10"), HoursWorked: 8, Notes: "  turno  "}},
		{name: "missing date", req: CreateWorkEntryRequest{HoursWorked: 8}, wantErr: true},
		{name: "zero hours", req: CreateWorkEntryRequest{Date: kernel.MustParseDate("2025-03-10")}, wantErr: true},
		{name: "too many hours", req: CreateWorkEntryRequest{Date: kernel.MustParseDate("2025-03-10"), HoursWorked: 25}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				if !errx.IsCode(err, CodeInvalidEntry) {
					t.Errorf("Validate() error = %v, want invalid entry", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if tt.req.Notes != "turno" {
				t.Errorf("Notes = %q, want trimmed", tt.req.Notes)
			}
		})
	}
}

func TestSummaryRequest_Validate(t *testing.T) {
	reversed := SummaryRequest{From: kernel.MustParseDate("2025-04-01"), To: kernel.MustParseDate("2025-03-01")}
	if err := reversed.Validate(); !errx.IsCode(err, CodeInvalidEntry) {
		t.Errorf("reversed period error = %v", err)
	}
	if err := (SummaryRequest{HourlyRate: -1}).Validate(); err == nil {
		t.Error("negative rate should be rejected")
	}
	if err := (SummaryRequest{}).Validate(); err != nil {
		t.Errorf("empty request error = %v", err)
	}
}
