package user

import (
	"context"
	"log"
	"time"

	"github.com/tiendamoderna/tienda/internal/domain/user"
	"github.com/tiendamoderna/tienda/pkg/jwt"
)

// EventPublisher emits integration events to the broker. The email worker
// delivers verification and reset mails off these events.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
}

// AuthResult is what register and login hand back: the account plus a signed
// bearer token.
type AuthResult struct {
	User  *user.User
	Token *jwt.Token
}

// RegisterUseCase creates an account, issues the email-verification token
// and signs the first bearer token.
type RegisterUseCase struct {
	userRepo  user.Repository
	userSvc   *user.Service
	jwtMgr    *jwt.Manager
	publisher EventPublisher
}

func NewRegisterUseCase(
	userRepo user.Repository,
	userSvc *user.Service,
	jwtMgr *jwt.Manager,
	publisher EventPublisher,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:  userRepo,
		userSvc:   userSvc,
		jwtMgr:    jwtMgr,
		publisher: publisher,
	}
}

type RegisterRequest struct {
	Email    string
	Password string
	FullName string
	Phone    string
}

// Execute registers the account. The very first account on the system is
// promoted to administrator; everyone after that is a customer.
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	count, err := uc.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	role := user.RoleCustomer
	if count == 0 {
		role = user.RoleAdmin
	}

	hash, err := uc.userSvc.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := user.NewUser(req.Email, hash, req.FullName, role)
	u.Phone = req.Phone

	verifyToken, err := uc.userSvc.NewToken()
	if err != nil {
		return nil, err
	}
	u.BeginEmailVerification(verifyToken, time.Now())

	// The unique index on email backs this; a duplicate surfaces as
	// ErrEmailTaken from the repository.
	if err := uc.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	token, err := uc.jwtMgr.Generate(u.ID, u.Email, u.FullName, string(u.Role))
	if err != nil {
		return nil, err
	}

	if pubErr := uc.publisher.Publish(ctx, "user.registered", map[string]interface{}{
		"user_id":            u.ID,
		"email":              u.Email,
		"full_name":          u.FullName,
		"verification_token": verifyToken,
	}); pubErr != nil {
		log.Printf("event publish failed: user.registered: %v", pubErr)
	}

	return &AuthResult{User: u, Token: token}, nil
}
