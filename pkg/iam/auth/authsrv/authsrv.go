package authsrv

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Abraxas-365/laboral/pkg/errx"
	"github.com/Abraxas-365/laboral/pkg/iam/auth"
	"github.com/Abraxas-365/laboral/pkg/iam/user"
	"github.com/Abraxas-365/laboral/pkg/kernel"
	"github.com/Abraxas-365/laboral/pkg/logx"
)

// AuthService registers users and opens sessions
type AuthService struct {
	userRepo  user.Repository
	passwords auth.PasswordService
	tokens    auth.TokenService
}

func NewAuthService(
	userRepo user.Repository,
	passwords auth.PasswordService,
	tokens auth.TokenService,
) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		passwords: passwords,
		tokens:    tokens,
	}
}

// Register creates a password account and returns a session for it
func (s *AuthService) Register(ctx context.Context, req auth.RegisterRequest) (*auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	email := user.NormalizeEmail(req.Email)
	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, user.ErrUserAlreadyExists().WithDetail("email", email.String())
	} else if !errx.IsCode(err, user.CodeUserNotFound) {
		return nil, errx.Wrap(err, "failed to look up user", errx.TypeInternal)
	}

	hash, err := s.passwords.Hash(req.Password)
	if err != nil {
		return nil, errx.Wrap(err, "failed to hash password", errx.TypeInternal)
	}

	u := newUser(strings.TrimSpace(req.Name), email, hash)
	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, errx.Wrap(err, "failed to create user", errx.TypeInternal)
	}

	logx.Infof("User %s registered", u.ID)
	return s.session(u)
}

// Login checks the password. Unknown email and wrong password look the same to the caller.
func (s *AuthService) Login(ctx context.Context, req auth.LoginRequest) (*auth.AuthResponse, error) {
	u, err := s.userRepo.FindByEmail(ctx, user.NormalizeEmail(req.Email))
	if err != nil {
		if errx.IsCode(err, user.CodeUserNotFound) {
			return nil, auth.ErrInvalidCredentials()
		}
		return nil, errx.Wrap(err, "failed to look up user", errx.TypeInternal)
	}

	if !s.passwords.Verify(u.PasswordHash, req.Password) {
		return nil, auth.ErrInvalidCredentials()
	}

	return s.session(u)
}

// GoogleLogin links the Google id to an existing account or creates one with a random password
// The request is trusted as is: no Google ID token is verified.
func (s *AuthService) GoogleLogin(ctx context.Context, req auth.GoogleLoginRequest) (*auth.AuthResponse, error) {
	if strings.TrimSpace(req.Email) == "" {
		return nil, auth.ErrInvalidRequest().WithDetail("field", "email")
	}
	email := user.NormalizeEmail(req.Email)

	u, err := s.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		u.LinkGoogle(req.GoogleID)
		if err := s.userRepo.Update(ctx, u); err != nil {
			return nil, errx.Wrap(err, "failed to link google account", errx.TypeInternal)
		}
	case errx.IsCode(err, user.CodeUserNotFound):
		hash, err := s.passwords.Hash(randomPassword())
		if err != nil {
			return nil, errx.Wrap(err, "failed to hash password", errx.TypeInternal)
		}
		u = newUser(strings.TrimSpace(req.Name), email, hash)
		u.LinkGoogle(req.GoogleID)
		if err := s.userRepo.Create(ctx, u); err != nil {
			return nil, errx.Wrap(err, "failed to create user", errx.TypeInternal)
		}
		logx.Infof("User %s registered with Google", u.ID)
	default:
		return nil, errx.Wrap(err, "failed to look up user", errx.TypeInternal)
	}

	return s.session(u)
}

func (s *AuthService) session(u *user.User) (*auth.AuthResponse, error) {
	token, err := s.tokens.GenerateAccessToken(u.ID, u.Email)
	if err != nil {
		return nil, errx.Wrap(err, "failed to generate token", errx.TypeInternal)
	}
	return &auth.AuthResponse{Token: token, User: u.ToPublic()}, nil
}

func newUser(name string, email kernel.Email, hash string) *user.User {
	now := time.Now()
	return &user.User{
		ID:           kernel.NewUserID(uuid.NewString()),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func randomPassword() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return uuid.NewString()
	}
	return hex.EncodeToString(buf)
}
