package dto

import (
	"time"

	"github.com/tiendamoderna/tienda/internal/domain/user"
	"github.com/tiendamoderna/tienda/pkg/jwt"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"nombre_completo" binding:"required,min=2,max=100"`
	Phone    string `json:"telefono"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"password_actual" binding:"required"`
	NewPassword     string `json:"password_nueva" binding:"required,min=8"`
}

type RecoverPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"password_nueva" binding:"required,min=8"`
}

// UserResponse is the public account profile. The password hash and pending
// tokens never leave the server.
type UserResponse struct {
	ID            uint       `json:"id"`
	Email         string     `json:"email"`
	FullName      string     `json:"nombre_completo"`
	Phone         string     `json:"telefono,omitempty"`
	Role          string     `json:"rol"`
	Active        bool       `json:"activo"`
	EmailVerified bool       `json:"email_verificado"`
	LastLoginAt   *time.Time `json:"ultimo_acceso,omitempty"`
	Street        string     `json:"calle,omitempty"`
	City          string     `json:"ciudad,omitempty"`
	Province      string     `json:"provincia,omitempty"`
	PostalCode    string     `json:"codigo_postal,omitempty"`
	Country       string     `json:"pais,omitempty"`
	CreatedAt     time.Time  `json:"creado_en"`
}

func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		FullName:      u.FullName,
		Phone:         u.Phone,
		Role:          string(u.Role),
		Active:        u.Active,
		EmailVerified: u.EmailVerified,
		LastLoginAt:   u.LastLoginAt,
		Street:        u.Address.Street,
		City:          u.Address.City,
		Province:      u.Address.Province,
		PostalCode:    u.Address.PostalCode,
		Country:       u.Address.Country,
		CreatedAt:     u.CreatedAt,
	}
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expira_en"`
	User      UserResponse `json:"usuario"`
}

func NewAuthResponse(u *user.User, token *jwt.Token) AuthResponse {
	return AuthResponse{
		Token:     token.Value,
		ExpiresAt: token.ExpiresAt,
		User:      NewUserResponse(u),
	}
}
