package vacationsrv

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Abraxas-365/laboral/internal/metrics"
	"github.com/Abraxas-365/laboral/labor/holiday"
	"github.com/Abraxas-365/laboral/labor/vacation"
	"github.com/Abraxas-365/laboral/pkg/errx"
	"github.com/Abraxas-365/laboral/pkg/kernel"
	"github.com/Abraxas-365/laboral/pkg/logx"
)

// VacationService validates and records vacation bookings against the user's balance
type VacationService struct {
	repo         vacation.Repository
	settingsRepo vacation.SettingsRepository
	holidays     vacation.HolidayProvider
	allowOverlap bool
}

// NewVacationService creates a new instance of the vacation service
func NewVacationService(
	repo vacation.Repository,
	settingsRepo vacation.SettingsRepository,
	holidays vacation.HolidayProvider,
	allowOverlap bool,
) *VacationService {
	return &VacationService{
		repo:         repo,
		settingsRepo: settingsRepo,
		holidays:     holidays,
		allowOverlap: allowOverlap,
	}
}

// quote is what a range would cost against the current balance
type quote struct {
	days        int
	inRange     []holiday.Holiday
	entitlement vacation.Entitlement
	used        int
}

func (q quote) available() int {
	return q.entitlement.Remaining(q.used)
}

// RequestBooking validates the range and persists it. Nothing is stored when any check fails.
func (s *VacationService) RequestBooking(ctx context.Context, userID kernel.UserID, req vacation.BookingRequest) (*vacation.Booking, error) {
	start, end, err := req.Range()
	if err != nil {
		metrics.VacationBookings.WithLabelValues(metrics.OutcomeInvalidRange).Inc()
		return nil, err
	}

	q, err := s.quote(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	if q.days == 0 {
		metrics.VacationBookings.WithLabelValues(metrics.OutcomeNoBusinessDays).Inc()
		return nil, vacation.ErrNoBusinessDays().
			WithDetail("startDate", start.String()).
			WithDetail("endDate", end.String())
	}

	if available := q.available(); q.days > available {
		metrics.VacationBookings.WithLabelValues(metrics.OutcomeInsufficientBalance).Inc()
		return nil, vacation.ErrInsufficientBalance(q.days, max(available, 0))
	}

	if !s.allowOverlap {
		overlaps, err := s.repo.ExistsOverlap(ctx, userID, start, end)
		if err != nil {
			return nil, errx.Wrap(err, "failed to check overlapping vacations", errx.TypeInternal)
		}
		if overlaps {
			metrics.VacationBookings.WithLabelValues(metrics.OutcomeOverlap).Inc()
			return nil, vacation.ErrOverlappingBooking().
				WithDetail("startDate", start.String()).
				WithDetail("endDate", end.String())
		}
	}

	if req.DaysTaken != nil && *req.DaysTaken != q.days {
		logx.Infof("Client sent daysTaken=%d for %s..%s, recomputed %d (user %s)",
			*req.DaysTaken, start, end, q.days, userID)
	}

	booking := &vacation.Booking{
		ID:        kernel.NewVacationID(uuid.NewString()),
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
		DaysTaken: q.days,
		Status:    vacation.BookingStatusPlanned,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		metrics.VacationBookings.WithLabelValues(metrics.OutcomeStoreFailure).Inc()
		logx.Errorf("Failed to save vacation for user %s: %v", userID, err)
		return nil, vacation.ErrStoreFailure(err)
	}

	metrics.VacationBookings.WithLabelValues(metrics.OutcomeCreated).Inc()
	metrics.VacationDaysBooked.Add(float64(q.days))
	logx.Infof("Vacation %s booked for user %s: %s..%s (%d days)", booking.ID, userID, start, end, q.days)

	return booking, nil
}

// PreviewBooking runs the range and balance checks without persisting anything
func (s *VacationService) PreviewBooking(ctx context.Context, userID kernel.UserID, req vacation.BookingRequest) (*vacation.PreviewResponse, error) {
	start, end, err := req.Range()
	if err != nil {
		return nil, err
	}

	q, err := s.quote(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	available := q.available()
	return &vacation.PreviewResponse{
		StartDate:       start,
		EndDate:         end,
		BusinessDays:    q.days,
		Available:       available,
		Fits:            q.days > 0 && q.days <= available,
		HolidaysInRange: q.inRange,
	}, nil
}

// DeleteBooking removes a booking owned by userID, freeing its days
func (s *VacationService) DeleteBooking(ctx context.Context, bookingID kernel.VacationID, userID kernel.UserID) error {
	if err := s.repo.Delete(ctx, bookingID, userID); err != nil {
		return errx.Wrap(err, "failed to delete vacation", errx.TypeInternal)
	}

	logx.Infof("Vacation %s deleted by user %s", bookingID, userID)
	return nil
}

// ListBookings returns the user's bookings ordered by start date
func (s *VacationService) ListBookings(ctx context.Context, userID kernel.UserID) ([]vacation.Booking, error) {
	bookings, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list vacations", errx.TypeInternal)
	}
	if bookings == nil {
		bookings = []vacation.Booking{}
	}
	return bookings, nil
}

// GetBalance derives the balance from the entitlement and the stored bookings
func (s *VacationService) GetBalance(ctx context.Context, userID kernel.UserID) (*vacation.BalanceResponse, error) {
	settings, err := s.settings(ctx, userID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.ListBookings(ctx, userID)
	if err != nil {
		return nil, err
	}

	ent := settings.Entitlement()
	used := vacation.UsedDays(bookings)

	return &vacation.BalanceResponse{
		Entitlement:     ent,
		MaxAccumulation: ent.MaxAccumulation(),
		UsedDays:        used,
		RemainingDays:   ent.Remaining(used),
		Bookings:        bookings,
	}, nil
}

// GetEntitlement returns the saved inputs and the entitlement derived from them
func (s *VacationService) GetEntitlement(ctx context.Context, userID kernel.UserID) (*vacation.EntitlementResponse, error) {
	settings, err := s.settings(ctx, userID)
	if err != nil {
		return nil, err
	}
	return entitlementResponse(settings), nil
}

// UpdateSettings edits tenure and the manual total. A manual total is kept until cleared.
func (s *VacationService) UpdateSettings(ctx context.Context, userID kernel.UserID, req vacation.UpdateSettingsRequest) (*vacation.EntitlementResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	settings, err := s.settings(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.YearsOfService != nil {
		settings.YearsOfService = *req.YearsOfService
	}
	if req.ClearOverride {
		settings.TotalAnnualDaysOverride = nil
	}
	if req.TotalAnnualDays != nil {
		total := *req.TotalAnnualDays
		settings.TotalAnnualDaysOverride = &total
	}
	settings.UpdatedAt = time.Now()

	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, errx.Wrap(err, "failed to save vacation settings", errx.TypeInternal)
	}

	return entitlementResponse(settings), nil
}

func (s *VacationService) settings(ctx context.Context, userID kernel.UserID) (*vacation.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx, userID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to load vacation settings", errx.TypeInternal)
	}
	if settings == nil {
		settings = vacation.DefaultSettings(userID)
	}
	return settings, nil
}

func (s *VacationService) quote(ctx context.Context, userID kernel.UserID, start, end kernel.Date) (*quote, error) {
	var lists [][]holiday.Holiday
	for _, year := range vacation.YearsSpanned(start, end) {
		lists = append(lists, s.holidays.FetchHolidays(ctx, year))
	}
	set := holiday.NewSet(lists...)

	days, err := vacation.CountBusinessDays(start, end, set)
	if err != nil {
		return nil, err
	}

	settings, err := s.settings(ctx, userID)
	if err != nil {
		return nil, err
	}

	used, err := s.repo.SumDaysTaken(ctx, userID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to sum booked days", errx.TypeInternal)
	}

	inRange := []holiday.Holiday{}
	for _, list := range lists {
		for _, h := range list {
			if !h.Date.Before(start) && !h.Date.After(end) {
				inRange = append(inRange, h)
			}
		}
	}

	return &quote{
		days:        days,
		inRange:     inRange,
		entitlement: settings.Entitlement(),
		used:        used,
	}, nil
}

func entitlementResponse(settings *vacation.Settings) *vacation.EntitlementResponse {
	ent := settings.Entitlement()
	return &vacation.EntitlementResponse{
		Settings:        *settings,
		Entitlement:     ent,
		MaxAccumulation: ent.MaxAccumulation(),
	}
}
