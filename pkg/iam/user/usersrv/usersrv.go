package usersrv

import (
	"context"

	"github.com/Abraxas-365/laboral/pkg/errx"
	"github.com/Abraxas-365/laboral/pkg/iam/user"
	"github.com/Abraxas-365/laboral/pkg/kernel"
	"github.com/Abraxas-365/laboral/pkg/logx"
)

// UserService provides profile operations on the authenticated user
type UserService struct {
	userRepo user.Repository
}

func NewUserService(userRepo user.Repository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetProfile returns the full user record
func (s *UserService) GetProfile(ctx context.Context, userID kernel.UserID) (*user.User, error) {
	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to load user", errx.TypeInternal)
	}
	return u, nil
}

// UpdateProfile edits only the fields present in req
func (s *UserService) UpdateProfile(ctx context.Context, userID kernel.UserID, req user.UpdateProfileRequest) (*user.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	u.ApplyProfile(req)
	if err := s.userRepo.Update(ctx, u); err != nil {
		return nil, errx.Wrap(err, "failed to update profile", errx.TypeInternal)
	}
	return u, nil
}

// DeleteAccount removes the user together with every record they own
func (s *UserService) DeleteAccount(ctx context.Context, userID kernel.UserID) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return errx.Wrap(err, "failed to delete account", errx.TypeInternal)
	}
	logx.Infof("Account %s deleted", userID)
	return nil
}
