package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appUser "github.com/tiendamoderna/tienda/internal/application/user"
	"github.com/tiendamoderna/tienda/internal/interface/http/dto"
	"github.com/tiendamoderna/tienda/internal/interface/http/middleware"
	apperrors "github.com/tiendamoderna/tienda/pkg/errors"
	"github.com/tiendamoderna/tienda/pkg/response"
)

// UserHandler serves /api/usuarios.
type UserHandler struct {
	registerUC *appUser.RegisterUseCase
	loginUC    *appUser.LoginUseCase
	logoutUC   *appUser.LogoutUseCase
	passwordUC *appUser.PasswordUseCase
	verifyUC   *appUser.VerifyEmailUseCase
	profileUC  *appUser.ProfileUseCase
}

func NewUserHandler(
	registerUC *appUser.RegisterUseCase,
	loginUC *appUser.LoginUseCase,
	logoutUC *appUser.LogoutUseCase,
	passwordUC *appUser.PasswordUseCase,
	verifyUC *appUser.VerifyEmailUseCase,
	profileUC *appUser.ProfileUseCase,
) *UserHandler {
	return &UserHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		logoutUC:   logoutUC,
		passwordUC: passwordUC,
		verifyUC:   verifyUC,
		profileUC:  profileUC,
	}
}

// Register handles POST /api/usuarios/registrar.
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), appUser.RegisterRequest{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Phone:    req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewAuthResponse(result.User, result.Token))
}

// Login handles POST /api/usuarios/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewAuthResponse(result.User, result.Token))
}

// Logout handles POST /api/usuarios/logout.
func (h *UserHandler) Logout(c *gin.Context) {
	if err := h.logoutUC.Execute(c.Request.Context(), middleware.GetToken(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetByID handles GET /api/usuarios/:id.
func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, apperrors.ErrInvalidParams)
		return
	}

	u, err := h.profileUC.GetByID(c.Request.Context(), uint(id),
		middleware.GetUserID(c), middleware.IsAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewUserResponse(u))
}

// EmailExists handles GET /api/usuarios/email-existe/:email.
func (h *UserHandler) EmailExists(c *gin.Context) {
	exists, err := h.profileUC.EmailExists(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"existe": exists})
}

// ChangePassword handles POST /api/usuarios/cambiar-password.
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	err := h.passwordUC.Change(c.Request.Context(), middleware.GetUserID(c),
		req.CurrentPassword, req.NewPassword)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// RecoverPassword handles POST /api/usuarios/recuperar-password. Always
// succeeds from the caller's point of view so emails cannot be enumerated.
func (h *UserHandler) RecoverPassword(c *gin.Context) {
	var req dto.RecoverPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	if err := h.passwordUC.RequestReset(c.Request.Context(), req.Email); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"mensaje": "si el email existe, se envió un enlace de recuperación"})
}

// ResetPassword handles POST /api/usuarios/restablecer-password.
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrBindError)
		return
	}

	if err := h.passwordUC.Reset(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// VerifyEmail handles GET /api/usuarios/verificar-email/:token.
func (h *UserHandler) VerifyEmail(c *gin.Context) {
	if err := h.verifyUC.Execute(c.Request.Context(), c.Param("token")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"mensaje": "email verificado"})
}
