package contractsrv

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/Abraxas-365/laboral/labor/contract"
	"github.com/Abraxas-365/laboral/labor/vacation"
	"github.com/Abraxas-365/laboral/pkg/errx"
	"github.com/Abraxas-365/laboral/pkg/fsx"
	"github.com/Abraxas-365/laboral/pkg/kernel"
	"github.com/Abraxas-365/laboral/pkg/logx"
)

// ContractService provides business operations for employment contracts
type ContractService struct {
	repo  contract.Repository
	files fsx.FileSystem
	today func() kernel.Date
}

// NewContractService creates a new instance of the contract service.
// files may be nil, in which case uploads only record the contract.
func NewContractService(repo contract.Repository, files fsx.FileSystem) *ContractService {
	return &ContractService{
		repo:  repo,
		files: files,
		today: kernel.Today,
	}
}

// Upload describes a received contract file
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ListContracts returns the user's contracts, newest first
func (s *ContractService) ListContracts(ctx context.Context, userID kernel.UserID) ([]contract.Contract, error) {
	contracts, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list contracts", errx.TypeInternal)
	}
	if contracts == nil {
		contracts = []contract.Contract{}
	}
	return contracts, nil
}

// CreateContract adds a contract for the user
func (s *ContractService) CreateContract(ctx context.Context, userID kernel.UserID, req contract.CreateContractRequest) (*contract.Contract, error) {
	if err := req.Normalize(); err != nil {
		return nil, err
	}

	now := time.Now()
	c := &contract.Contract{
		ID:           kernel.NewContractID(uuid.NewString()),
		UserID:       userID,
		Company:      req.Company,
		Role:         req.Role,
		StartDate:    req.StartDate,
		Type:         req.Type,
		HoursPerWeek: *req.HoursPerWeek,
		Active:       *req.Active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, errx.Wrap(err, "failed to create contract", errx.TypeInternal)
	}
	return c, nil
}

// UpdateContract edits a contract owned by userID
func (s *ContractService) UpdateContract(ctx context.Context, id kernel.ContractID, userID kernel.UserID, req contract.UpdateContractRequest) (*contract.Contract, error) {
	c, err := s.owned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if err := req.Apply(c); err != nil {
		return nil, err
	}
	c.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, errx.Wrap(err, "failed to update contract", errx.TypeInternal)
	}
	return c, nil
}

// DeleteContract removes a contract and its stored file
func (s *ContractService) DeleteContract(ctx context.Context, id kernel.ContractID, userID kernel.UserID) error {
	c, err := s.owned(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return errx.Wrap(err, "failed to delete contract", errx.TypeInternal)
	}

	if c.FileKey != nil && s.files != nil {
		if err := s.files.DeleteFile(ctx, *c.FileKey); err != nil {
			logx.Warnf("Contract %s deleted but file %s was kept: %v", id, *c.FileKey, err)
		}
	}
	return nil
}

// UploadContract stores the file and records an imported contract starting today
func (s *ContractService) UploadContract(ctx context.Context, userID kernel.UserID, up Upload) (*contract.Contract, error) {
	if up.Body == nil || up.Filename == "" {
		return nil, contract.ErrMissingFile()
	}

	now := time.Now()
	c := &contract.Contract{
		ID:           kernel.NewContractID(uuid.NewString()),
		UserID:       userID,
		Company:      contract.ImportedCompany,
		Role:         up.Filename,
		StartDate:    s.today(),
		Type:         contract.ContractTypeIndefinite,
		HoursPerWeek: contract.MaxHoursPerWeek,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if s.files != nil {
		key := fsx.Join("contracts", userID.String(), fmt.Sprintf("%s-%s", c.ID, fsx.SanitizeName(up.Filename)))
		if err := s.files.WriteFile(ctx, key, up.Body, up.Size, up.ContentType); err != nil {
			return nil, contract.ErrUploadFailed().WithCause(err)
		}
		c.FileKey = &key
	} else {
		logx.Warnf("No file storage configured, contract %s recorded without file", c.ID)
	}

	if err := s.repo.Create(ctx, c); err != nil {
		if c.FileKey != nil {
			if derr := s.files.DeleteFile(ctx, *c.FileKey); derr != nil {
				logx.Warnf("Contract %s not recorded, orphaned file %s kept: %v", c.ID, *c.FileKey, derr)
			}
		}
		return nil, errx.Wrap(err, "failed to create contract", errx.TypeInternal)
	}

	logx.Infof("Contract file %q uploaded by user %s", up.Filename, userID)
	return c, nil
}

// Tenure derives years of service from the earliest active contract
func (s *ContractService) Tenure(ctx context.Context, userID kernel.UserID) (*contract.TenureResponse, error) {
	contracts, err := s.ListContracts(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &contract.TenureResponse{SuggestedEntitlement: vacation.ComputeEntitlement(0)}
	earliest := contract.EarliestActive(contracts)
	if earliest == nil {
		return resp, nil
	}

	since := earliest.StartDate
	resp.Since = &since
	resp.YearsOfService = earliest.YearsOfService(s.today())
	resp.SuggestedEntitlement = vacation.ComputeEntitlement(resp.YearsOfService)
	return resp, nil
}

func (s *ContractService) owned(ctx context.Context, id kernel.ContractID, userID kernel.UserID) (*contract.Contract, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errx.Wrap(err, "failed to load contract", errx.TypeInternal)
	}
	if !c.BelongsTo(userID) {
		return nil, contract.ErrNotOwner().WithDetail("id", id.String())
	}
	return c, nil
}
