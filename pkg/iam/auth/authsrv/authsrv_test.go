package authsrv

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Abraxas-365/laboral/pkg/errx"
	"github.com/Abraxas-365/laboral/pkg/iam/auth"
	"github.com/Abraxas-365/laboral/pkg/iam/auth/authinfra"
	"github.com/Abraxas-365/laboral/pkg/iam/user"
	"github.com/Abraxas-365/laboral/pkg/kernel"
)

type memoryUsers struct {
	byID map[kernel.UserID]*user.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byID: make(map[kernel.UserID]*user.User)}
}

func (m *memoryUsers) Create(_ context.Context, u *user.User) error {
	for _, existing := range m.byID {
		if existing.Email == u.Email {
			return user.ErrUserAlreadyExists()
		}
	}
	clone := *u
	m.byID[u.ID] = &clone
	return nil
}

func (m *memoryUsers) Update(_ context.Context, u *user.User) error {
	if _, ok := m.byID[u.ID]; !ok {
		return user.ErrUserNotFound()
	}
	clone := *u
	m.byID[u.ID] = &clone
	return nil
}

func (m *memoryUsers) FindByID(_ context.Context, id kernel.UserID) (*user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, user.ErrUserNotFound()
	}
	clone := *u
	return &clone, nil
}

func (m *memoryUsers) FindByEmail(_ context.Context, email kernel.Email) (*user.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, user.ErrUserNotFound()
}

func (m *memoryUsers) Delete(_ context.Context, id kernel.UserID) error {
	if _, ok := m.byID[id]; !ok {
		return user.ErrUserNotFound()
	}
	delete(m.byID, id)
	return nil
}

func newService() (*AuthService, *memoryUsers, *auth.JWTService) {
	users := newMemoryUsers()
	tokens := auth.NewJWTService("test-secret", time.Hour)
	return NewAuthService(users, authinfra.NewBcryptPasswordService(bcrypt.MinCost), tokens), users, tokens
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _, tokens := newService()
	ctx := context.Background()

	reg, err := svc.Register(ctx, auth.RegisterRequest{Name: "Ana", Email: " Ana@Example.cl ", Password: "secreto1"})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if reg.User.Email != "ana@example.cl" {
		t.Errorf("email = %s, want normalized", reg.User.Email)
	}

	claims, err := tokens.ValidateAccessToken(reg.Token)
	if err != nil || claims.UserID != reg.User.ID {
		t.Fatalf("token claims = %+v, err = %v", claims, err)
	}

	login, err := svc.Login(ctx, auth.LoginRequest{Email: "ana@example.cl", Password: "secreto1"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if login.User.ID != reg.User.ID {
		t.Errorf("login user = %s, want %s", login.User.ID, reg.User.ID)
	}
}

func TestRegister_Rejects(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()
	if _, err := svc.Register(ctx, auth.RegisterRequest{Name: "Ana", Email: "ana@example.cl", Password: "secreto1"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		name string
		req  auth.RegisterRequest
		want errx.Code
	}{
		{name: "duplicate", req: auth.RegisterRequest{Name: "Otra", Email: "ANA@example.cl", Password: "secreto2"}, want: user.CodeUserAlreadyExists},
		{name: "short password", req: auth.RegisterRequest{Name: "Bea", Email: "bea@example.cl", Password: "123"}, want: auth.CodeWeakPassword},
		{name: "missing name", req: auth.RegisterRequest{Email: "bea@example.cl", Password: "secreto1"}, want: auth.CodeInvalidRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.req)
			if !errx.IsCode(err, tt.want) {
				t.Errorf("error = %v, want %s", err, tt.want)
			}
		})
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()
	_, _ = svc.Register(ctx, auth.RegisterRequest{Name: "Ana", Email: "ana@example.cl", Password: "secreto1"})

	for _, req := range []auth.LoginRequest{
		{Email: "ana@example.cl", Password: "wrong-pass"},
		{Email: "nadie@example.cl", Password: "secreto1"},
	} {
		if _, err := svc.Login(ctx, req); !errx.IsCode(err, auth.CodeInvalidCredentials) {
			t.Errorf("Login(%s) error = %v, want invalid credentials", req.Email, err)
		}
	}
}

func TestGoogleLogin(t *testing.T) {
	svc, users, _ := newService()
	ctx := context.Background()

	first, err := svc.GoogleLogin(ctx, auth.GoogleLoginRequest{Name: "Ana", Email: "ana@example.cl", GoogleID: "g-1"})
	if err != nil {
		t.Fatalf("GoogleLogin() error = %v", err)
	}
	second, err := svc.GoogleLogin(ctx, auth.GoogleLoginRequest{Name: "Ana", Email: "ana@example.cl", GoogleID: "g-2"})
	if err != nil {
		t.Fatalf("second GoogleLogin() error = %v", err)
	}

	if first.User.ID != second.User.ID {
		t.Errorf("google login created a second account")
	}
	if len(users.byID) != 1 {
		t.Fatalf("users = %d, want 1", len(users.byID))
	}
	stored := users.byID[first.User.ID]
	if stored.GoogleID == nil || *stored.GoogleID != "g-2" {
		t.Errorf("GoogleID = %v, want g-2", stored.GoogleID)
	}
	if stored.PasswordHash == "" {
		t.Error("google accounts still get a password hash")
	}
}
