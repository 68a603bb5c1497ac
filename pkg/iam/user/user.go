package user

import (
	"strings"
	"time"

	"github.com/Abraxas-365/laboral/pkg/kernel"
)

// User is an account holder
type User struct {
	ID           kernel.UserID `db:"id" json:"id"`
	Name         string        `db:"name" json:"name"`
	Email        kernel.Email  `db:"email" json:"email"`
	PasswordHash string        `db:"password_hash" json:"-"`
	GoogleID     *string       `db:"google_id" json:"googleId,omitempty"`
	Photo        string        `db:"photo" json:"photo"`
	Position     string        `db:"position" json:"position"`
	Phone        string        `db:"phone" json:"phone"`
	Address      string        `db:"address" json:"address"`
	CreatedAt    time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time     `db:"updated_at" json:"updatedAt"`
}

// NormalizeEmail lowercases and trims an address so lookups are case-insensitive
func NormalizeEmail(email string) kernel.Email {
	return kernel.Email(strings.ToLower(strings.TrimSpace(email)))
}

// ApplyProfile copies the non-nil fields of req
func (u *User) ApplyProfile(req UpdateProfileRequest) {
	if req.Name != nil {
		u.Name = strings.TrimSpace(*req.Name)
	}
	if req.Photo != nil {
		u.Photo = *req.Photo
	}
	if req.Position != nil {
		u.Position = *req.Position
	}
	if req.Phone != nil {
		u.Phone = *req.Phone
	}
	if req.Address != nil {
		u.Address = *req.Address
	}
	u.UpdatedAt = time.Now()
}

// LinkGoogle records the Google account id
func (u *User) LinkGoogle(googleID string) {
	if googleID == "" {
		return
	}
	u.GoogleID = &googleID
	u.UpdatedAt = time.Now()
}

// ToPublic strips the fields that are never sent back
func (u *User) ToPublic() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
