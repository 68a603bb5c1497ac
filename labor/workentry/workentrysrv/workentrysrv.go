package workentrysrv

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Abraxas-365/laboral/labor/workentry"
	"github.com/Abraxas-365/laboral/pkg/errx"
	"github.com/Abraxas-365/laboral/pkg/kernel"
	"github.com/Abraxas-365/laboral/pkg/logx"
)

// WorkEntryService records worked hours and computes overtime pay
type WorkEntryService struct {
	repo workentry.Repository
}

// NewWorkEntryService creates a new instance of the work entry service
func NewWorkEntryService(repo workentry.Repository) *WorkEntryService {
	return &WorkEntryService{
		repo: repo,
	}
}

// ListEntries returns the user's entries, most recent first
func (s *WorkEntryService) ListEntries(ctx context.Context, userID kernel.UserID) ([]workentry.WorkEntry, error) {
	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list work entries", errx.TypeInternal)
	}
	if entries == nil {
		entries = []workentry.WorkEntry{}
	}
	return entries, nil
}

// CreateEntry records a day of work
func (s *WorkEntryService) CreateEntry(ctx context.Context, userID kernel.UserID, req workentry.CreateWorkEntryRequest) (*workentry.WorkEntry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entry := &workentry.WorkEntry{
		ID:          kernel.NewWorkEntryID(uuid.NewString()),
		UserID:      userID,
		Date:        req.Date,
		HoursWorked: req.HoursWorked,
		IsOvertime:  req.IsOvertime,
		Notes:       req.Notes,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, errx.Wrap(err, "failed to create work entry", errx.TypeInternal)
	}

	logx.Debugf("Work entry %s: %.2fh on %s (overtime=%t)", entry.ID, entry.HoursWorked, entry.Date, entry.IsOvertime)
	return entry, nil
}

// DeleteEntry removes an entry owned by userID
func (s *WorkEntryService) DeleteEntry(ctx context.Context, id kernel.WorkEntryID, userID kernel.UserID) error {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return errx.Wrap(err, "failed to load work entry", errx.TypeInternal)
	}
	if !entry.BelongsTo(userID) {
		return workentry.ErrNotOwner().WithDetail("id", id.String())
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return errx.Wrap(err, "failed to delete work entry", errx.TypeInternal)
	}
	return nil
}

// Summary totals hours in the period and prices overtime at the hourly rate
func (s *WorkEntryService) Summary(ctx context.Context, userID kernel.UserID, req workentry.SummaryRequest) (*workentry.Summary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.ListEntries(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := workentry.Summarize(entries, req.HourlyRate, req.From, req.To)
	return &summary, nil
}
