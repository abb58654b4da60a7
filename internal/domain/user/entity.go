package user

import (
	"time"
)

// Role is the authorization role carried in the bearer token.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

// Token lifetimes for the account flows.
const (
	VerificationTokenTTL = 7 * 24 * time.Hour
	ResetTokenTTL        = 2 * time.Hour
)

// Address is the default shipping address stored on the account.
type Address struct {
	Street     string
	City       string
	Province   string
	PostalCode string
	Country    string
}

// User is the account aggregate root. PasswordHash is a bcrypt hash; the
// entity never sees plaintext passwords.
type User struct {
	ID            uint
	Email         string
	PasswordHash  string
	FullName      string
	Phone         string
	Role          Role
	Active        bool
	EmailVerified bool

	VerificationToken  string
	VerificationExpiry *time.Time
	ResetToken         string
	ResetExpiry        *time.Time

	LastLoginAt *time.Time
	Address     Address

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser creates an active, unverified account.
func NewUser(email, passwordHash, fullName string, role Role) *User {
	now := time.Now()
	return &User{
		Email:        email,
		PasswordHash: passwordHash,
		FullName:     fullName,
		Role:         role,
		Active:       true,
		Address:      Address{Country: "Argentina"},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsAdmin reports whether the account holds the administrator role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// StampLogin records a successful login.
func (u *User) StampLogin(now time.Time) {
	u.LastLoginAt = &now
	u.UpdatedAt = now
}

// BeginEmailVerification stores a fresh verification token.
func (u *User) BeginEmailVerification(token string, now time.Time) {
	expiry := now.Add(VerificationTokenTTL)
	u.VerificationToken = token
	u.VerificationExpiry = &expiry
	u.UpdatedAt = now
}

// ConfirmEmail flips the verified flag if the token matches and has not
// expired, consuming the token.
func (u *User) ConfirmEmail(token string, now time.Time) error {
	if u.VerificationToken == "" || u.VerificationToken != token {
		return ErrVerifyTokenInvalid
	}
	if u.VerificationExpiry == nil || now.After(*u.VerificationExpiry) {
		return ErrVerifyTokenInvalid
	}
	u.EmailVerified = true
	u.VerificationToken = ""
	u.VerificationExpiry = nil
	u.UpdatedAt = now
	return nil
}

// BeginPasswordReset stores a fresh reset token.
func (u *User) BeginPasswordReset(token string, now time.Time) {
	expiry := now.Add(ResetTokenTTL)
	u.ResetToken = token
	u.ResetExpiry = &expiry
	u.UpdatedAt = now
}

// CompletePasswordReset replaces the password hash if the token matches and
// has not expired. The token is single use and cleared on success.
func (u *User) CompletePasswordReset(token, newHash string, now time.Time) error {
	if u.ResetToken == "" || u.ResetToken != token {
		return ErrResetTokenInvalid
	}
	if u.ResetExpiry == nil || now.After(*u.ResetExpiry) {
		return ErrResetTokenInvalid
	}
	u.PasswordHash = newHash
	u.ResetToken = ""
	u.ResetExpiry = nil
	u.UpdatedAt = now
	return nil
}
