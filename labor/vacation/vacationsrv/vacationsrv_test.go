package vacationsrv

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/Abraxas-365/laboral/labor/holiday"
	"github.com/Abraxas-365/laboral/labor/holiday/holidayinfra"
	"github.com/Abraxas-365/laboral/labor/holiday/holidaysrv"
	"github.com/Abraxas-365/laboral/labor/vacation"
	"github.com/Abraxas-365/laboral/pkg/errx"
	"github.com/Abraxas-365/laboral/pkg/kernel"
)

// ============================================================================
// Fakes
// ============================================================================

type memoryRepo struct {
	bookings  map[kernel.VacationID]vacation.Booking
	createErr error
	creates   int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{bookings: make(map[kernel.VacationID]vacation.Booking)}
}

func (r *memoryRepo) Create(_ context.Context, b *vacation.Booking) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.creates++
	r.bookings[b.ID] = *b
	return nil
}

func (r *memoryRepo) Delete(_ context.Context, id kernel.VacationID, userID kernel.UserID) error {
	b, ok := r.bookings[id]
	if !ok || b.UserID != userID {
		return vacation.ErrBookingNotFound()
	}
	delete(r.bookings, id)
	return nil
}

func (r *memoryRepo) ListByUser(_ context.Context, userID kernel.UserID) ([]vacation.Booking, error) {
	var out []vacation.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

func (r *memoryRepo) SumDaysTaken(ctx context.Context, userID kernel.UserID) (int, error) {
	list, _ := r.ListByUser(ctx, userID)
	return vacation.UsedDays(list), nil
}

func (r *memoryRepo) ExistsOverlap(_ context.Context, userID kernel.UserID, start, end kernel.Date) (bool, error) {
	for _, b := range r.bookings {
		if b.UserID == userID && b.Overlaps(start, end) {
			return true, nil
		}
	}
	return false, nil
}

type memorySettings struct {
	data map[kernel.UserID]vacation.Settings
}

func newMemorySettings() *memorySettings {
	return &memorySettings{data: make(map[kernel.UserID]vacation.Settings)}
}

func (m *memorySettings) Get(_ context.Context, userID kernel.UserID) (*vacation.Settings, error) {
	s, ok := m.data[userID]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m *memorySettings) Upsert(_ context.Context, s *vacation.Settings) error {
	m.data[s.UserID] = *s
	return nil
}

type fixedHolidays []holiday.Holiday

func (f fixedHolidays) FetchHolidays(_ context.Context, year int) []holiday.Holiday {
	return holiday.FilterByYear(f, year)
}

type failingSource struct{}

func (failingSource) Fetch(context.Context, int) ([]holiday.Holiday, error) {
	return nil, errors.New("dial tcp: i/o timeout")
}

// countingSource fails every fetch and records how often it was asked
type countingSource struct {
	calls int
}

func (c *countingSource) Fetch(context.Context, int) ([]holiday.Holiday, error) {
	c.calls++
	return nil, errors.New("connection refused")
}

const user = kernel.UserID("user-1")

func dateRef(s string) *kernel.Date {
	d := kernel.MustParseDate(s)
	return &d
}

func request(start, end string) vacation.BookingRequest {
	return vacation.BookingRequest{StartDate: dateRef(start), EndDate: dateRef(end)}
}

func newService(holidays vacation.HolidayProvider) (*VacationService, *memoryRepo, *memorySettings) {
	repo := newMemoryRepo()
	settings := newMemorySettings()
	return NewVacationService(repo, settings, holidays, false), repo, settings
}

func withOverride(settings *memorySettings, total int) {
	settings.data[user] = vacation.Settings{UserID: user, TotalAnnualDaysOverride: &total}
}

// ============================================================================
// Tests
// ============================================================================

func TestRequestBooking_FullWeek(t *testing.T) {
	svc, repo, _ := newService(fixedHolidays{})

	b, err := svc.RequestBooking(context.Background(), user, request("2025-01-06", "2025-01-10"))
	if err != nil {
		t.Fatalf("RequestBooking() error = %v", err)
	}
	if b.DaysTaken != 5 {
		t.Errorf("DaysTaken = %d, want 5", b.DaysTaken)
	}
	if b.Status != vacation.BookingStatusPlanned {
		t.Errorf("Status = %s", b.Status)
	}
	if b.ID.IsEmpty() || b.UserID != user {
		t.Errorf("booking = %+v", b)
	}
	if repo.creates != 1 {
		t.Errorf("creates = %d, want 1", repo.creates)
	}
}

func TestRequestBooking_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		override *int
		req      vacation.BookingRequest
		wantCode errx.Code
	}{
		{
			name:     "weekend only",
			req:      request("2025-01-04", "2025-01-05"),
			wantCode: vacation.CodeNoBusinessDays,
		},
		{
			name:     "missing end",
			req:      vacation.BookingRequest{StartDate: dateRef("2025-01-06")},
			wantCode: vacation.CodeInvalidRange,
		},
		{
			name:     "reversed",
			req:      request("2025-01-10", "2025-01-06"),
			wantCode: vacation.CodeInvalidRange,
		},
		{
			name:     "over balance",
			override: intRef(10),
			req:      request("2025-01-06", "2025-01-21"),
			wantCode: vacation.CodeInsufficientBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, settings := newService(fixedHolidays{})
			if tt.override != nil {
				withOverride(settings, *tt.override)
			}

			_, err := svc.RequestBooking(context.Background(), user, tt.req)
			if !errx.IsCode(err, tt.wantCode) {
				t.Fatalf("error = %v, want %s", err, tt.wantCode)
			}
			if repo.creates != 0 {
				t.Errorf("creates = %d, nothing should be persisted", repo.creates)
			}
		})
	}
}

func TestRequestBooking_InsufficientBalanceDetails(t *testing.T) {
	svc, _, settings := newService(fixedHolidays{})
	withOverride(settings, 10)

	_, err := svc.RequestBooking(context.Background(), user, request("2025-01-06", "2025-01-21"))

	var e *errx.Error
	if !errors.As(err, &e) {
		t.Fatalf("error = %v, want *errx.Error", err)
	}
	if e.Details["requested"] != 12 || e.Details["available"] != 10 {
		t.Errorf("details = %v, want requested=12 available=10", e.Details)
	}
}

func TestRequestBooking_BalanceAccumulates(t *testing.T) {
	svc, _, settings := newService(fixedHolidays{})
	withOverride(settings, 7)
	ctx := context.Background()

	if _, err := svc.RequestBooking(ctx, user, request("2025-01-06", "2025-01-10")); err != nil {
		t.Fatalf("first booking error = %v", err)
	}
	if _, err := svc.RequestBooking(ctx, user, request("2025-02-03", "2025-02-05")); !errx.IsCode(err, vacation.CodeInsufficientBalance) {
		t.Fatalf("second booking error = %v, want insufficient balance", err)
	}
	if _, err := svc.RequestBooking(ctx, user, request("2025-02-03", "2025-02-04")); err != nil {
		t.Fatalf("exact fit error = %v", err)
	}
}

func TestRequestBooking_Overlap(t *testing.T) {
	svc, _, _ := newService(fixedHolidays{})
	ctx := context.Background()

	if _, err := svc.RequestBooking(ctx, user, request("2025-03-03", "2025-03-07")); err != nil {
		t.Fatalf("first booking error = %v", err)
	}
	_, err := svc.RequestBooking(ctx, user, request("2025-03-07", "2025-03-11"))
	if !errx.IsCode(err, vacation.CodeOverlappingBooking) {
		t.Fatalf("error = %v, want %s", err, vacation.CodeOverlappingBooking)
	}

	svc.allowOverlap = true
	if _, err := svc.RequestBooking(ctx, user, request("2025-03-07", "2025-03-11")); err != nil {
		t.Fatalf("overlap allowed error = %v", err)
	}
}

func TestRequestBooking_IgnoresClientDays(t *testing.T) {
	svc, _, _ := newService(fixedHolidays{
		{Date: kernel.MustParseDate("2025-09-18"), Title: "Fiestas Patrias"},
		{Date: kernel.MustParseDate("2025-09-19"), Title: "Glorias del Ejército"},
	})

	req := request("2025-09-15", "2025-09-19")
	claimed := 5
	req.DaysTaken = &claimed

	b, err := svc.RequestBooking(context.Background(), user, req)
	if err != nil {
		t.Fatalf("RequestBooking() error = %v", err)
	}
	if b.DaysTaken != 3 {
		t.Errorf("DaysTaken = %d, want 3", b.DaysTaken)
	}
}

func TestRequestBooking_StoreFailure(t *testing.T) {
	svc, repo, _ := newService(fixedHolidays{})
	repo.createErr = errors.New("connection reset")

	_, err := svc.RequestBooking(context.Background(), user, request("2025-01-06", "2025-01-10"))
	if !errx.IsCode(err, vacation.CodeStoreFailure) {
		t.Fatalf("error = %v, want %s", err, vacation.CodeStoreFailure)
	}
}

func TestRequestBooking_HolidaySourceDown(t *testing.T) {
	holidays := holidaysrv.NewHolidayService(failingSource{}, holidayinfra.NewStaticSource(), nil, 0)
	svc, repo, _ := newService(holidays)

	b, err := svc.RequestBooking(context.Background(), user, request("2025-09-15", "2025-09-19"))
	if err != nil {
		t.Fatalf("RequestBooking() error = %v", err)
	}
	if b.DaysTaken != 3 {
		t.Errorf("DaysTaken = %d, want 3 with the static holidays", b.DaysTaken)
	}
	if repo.creates != 1 {
		t.Errorf("creates = %d, want 1", repo.creates)
	}
}

func TestBooking_OversizedRangeSkipsHolidayLookups(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
	}{
		{name: "two millennia", start: "2000-01-01", end: "4000-12-31"},
		{name: "just over a year", start: "2025-01-01", end: "2026-01-02"},
		{name: "before supported years", start: "1850-03-01", end: "1850-03-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote := &countingSource{}
			holidays := holidaysrv.NewHolidayService(remote, holidayinfra.NewStaticSource(), nil, 0)
			svc, repo, _ := newService(holidays)

			_, err := svc.PreviewBooking(context.Background(), user, request(tt.start, tt.end))
			if !errx.IsCode(err, vacation.CodeInvalidRange) {
				t.Fatalf("PreviewBooking() error = %v, want %s", err, vacation.CodeInvalidRange)
			}
			_, err = svc.RequestBooking(context.Background(), user, request(tt.start, tt.end))
			if !errx.IsCode(err, vacation.CodeInvalidRange) {
				t.Fatalf("RequestBooking() error = %v, want %s", err, vacation.CodeInvalidRange)
			}
			if remote.calls != 0 {
				t.Errorf("remote calls = %d, want 0", remote.calls)
			}
			if repo.creates != 0 {
				t.Errorf("creates = %d, want 0", repo.creates)
			}
		})
	}
}

func TestRequestBooking_SpansYears(t *testing.T) {
	svc, _, _ := newService(fixedHolidays{
		{Date: kernel.MustParseDate("2024-12-25"), Title: "Navidad"},
		{Date: kernel.MustParseDate("2025-01-01"), Title: "Año Nuevo"},
	})

	b, err := svc.RequestBooking(context.Background(), user, request("2024-12-23", "2025-01-03"))
	if err != nil {
		t.Fatalf("RequestBooking() error = %v", err)
	}
	if b.DaysTaken != 8 {
		t.Errorf("DaysTaken = %d, want 8", b.DaysTaken)
	}
}

func TestDeleteBooking_Twice(t *testing.T) {
	svc, _, settings := newService(fixedHolidays{})
	withOverride(settings, 15)
	ctx := context.Background()

	b, err := svc.RequestBooking(ctx, user, request("2025-01-06", "2025-01-10"))
	if err != nil {
		t.Fatalf("RequestBooking() error = %v", err)
	}

	if err := svc.DeleteBooking(ctx, b.ID, "someone-else"); !errx.IsCode(err, vacation.CodeBookingNotFound) {
		t.Fatalf("foreign delete error = %v, want not found", err)
	}
	if err := svc.DeleteBooking(ctx, b.ID, user); err != nil {
		t.Fatalf("DeleteBooking() error = %v", err)
	}
	if err := svc.DeleteBooking(ctx, b.ID, user); !errx.IsCode(err, vacation.CodeBookingNotFound) {
		t.Fatalf("second delete error = %v, want not found", err)
	}

	balance, err := svc.GetBalance(ctx, user)
	if err != nil {
		t.Fatalf("GetBalance() error = %v", err)
	}
	if balance.RemainingDays != 15 || balance.UsedDays != 0 {
		t.Errorf("balance = %+v, want all 15 days back", balance)
	}
}

func TestGetBalance(t *testing.T) {
	svc, _, settings := newService(fixedHolidays{})
	settings.data[user] = vacation.Settings{UserID: user, YearsOfService: 16}
	ctx := context.Background()

	if _, err := svc.RequestBooking(ctx, user, request("2025-02-10", "2025-02-14")); err != nil {
		t.Fatalf("RequestBooking() error = %v", err)
	}
	if _, err := svc.RequestBooking(ctx, user, request("2025-01-06", "2025-01-07")); err != nil {
		t.Fatalf("RequestBooking() error = %v", err)
	}

	balance, err := svc.GetBalance(ctx, user)
	if err != nil {
		t.Fatalf("GetBalance() error = %v", err)
	}
	if balance.Entitlement.TotalAnnualDays != 17 {
		t.Errorf("total = %d, want 17", balance.Entitlement.TotalAnnualDays)
	}
	if balance.UsedDays != 7 || balance.RemainingDays != 10 {
		t.Errorf("used/remaining = %d/%d, want 7/10", balance.UsedDays, balance.RemainingDays)
	}
	if balance.MaxAccumulation != 34 {
		t.Errorf("MaxAccumulation = %d, want 34", balance.MaxAccumulation)
	}
	if len(balance.Bookings) != 2 || balance.Bookings[0].StartDate.String() != "2025-01-06" {
		t.Errorf("bookings not ordered by start date: %v", balance.Bookings)
	}
}

func TestPreviewBooking(t *testing.T) {
	svc, repo, _ := newService(fixedHolidays{{Date: kernel.MustParseDate("2025-05-01"), Title: "Día del Trabajador"}})

	p, err := svc.PreviewBooking(context.Background(), user, request("2025-04-28", "2025-05-02"))
	if err != nil {
		t.Fatalf("PreviewBooking() error = %v", err)
	}
	if p.BusinessDays != 4 || !p.Fits || p.Available != 15 {
		t.Errorf("preview = %+v", p)
	}
	if len(p.HolidaysInRange) != 1 {
		t.Errorf("HolidaysInRange = %v", p.HolidaysInRange)
	}
	if repo.creates != 0 {
		t.Error("preview must not persist")
	}
}

func TestUpdateSettings(t *testing.T) {
	svc, _, _ := newService(fixedHolidays{})
	ctx := context.Background()

	resp, err := svc.UpdateSettings(ctx, user, vacation.UpdateSettingsRequest{YearsOfService: intRef(13)})
	if err != nil {
		t.Fatalf("UpdateSettings() error = %v", err)
	}
	if resp.Entitlement.TotalAnnualDays != 16 || resp.Entitlement.Overridden {
		t.Errorf("entitlement = %+v, want 16 computed", resp.Entitlement)
	}

	resp, _ = svc.UpdateSettings(ctx, user, vacation.UpdateSettingsRequest{TotalAnnualDays: intRef(22)})
	if resp.Entitlement.TotalAnnualDays != 22 || !resp.Entitlement.Overridden {
		t.Errorf("entitlement = %+v, want 22 overridden", resp.Entitlement)
	}
	if resp.Settings.YearsOfService != 13 {
		t.Errorf("years should be kept, got %d", resp.Settings.YearsOfService)
	}

	resp, _ = svc.UpdateSettings(ctx, user, vacation.UpdateSettingsRequest{ClearOverride: true})
	if resp.Entitlement.TotalAnnualDays != 16 {
		t.Errorf("after clear = %d, want 16", resp.Entitlement.TotalAnnualDays)
	}

	_, err = svc.UpdateSettings(ctx, user, vacation.UpdateSettingsRequest{YearsOfService: intRef(-1)})
	if !errx.IsCode(err, vacation.CodeInvalidSettings) {
		t.Errorf("negative years error = %v", err)
	}
}

func intRef(n int) *int { return &n }
