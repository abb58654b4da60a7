package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tiendamoderna/tienda/internal/domain/user"
	apperrors "github.com/tiendamoderna/tienda/pkg/errors"
)

// userRepository implements user.Repository on MySQL, converting between the
// domain entity and the GORM model and mapping driver errors to domain ones.
type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *user.User) error {
	model := toUserModel(u)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return user.ErrEmailTaken
		}
		return apperrors.Wrap(err, "error al crear el usuario")
	}
	u.ID = model.ID
	u.CreatedAt = model.CreatedAt
	u.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var model UserModel
	if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, apperrors.Wrap(err, "error al buscar el usuario")
	}
	return toUserEntity(&model), nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *userRepository) FindByVerificationToken(ctx context.Context, token string) (*user.User, error) {
	return r.findOne(ctx, "verification_token = ?", token)
}

func (r *userRepository) FindByResetToken(ctx context.Context, token string) (*user.User, error) {
	return r.findOne(ctx, "reset_token = ?", token)
}

func (r *userRepository) findOne(ctx context.Context, query string, arg interface{}) (*user.User, error) {
	var model UserModel
	if err := getDB(ctx, r.db).Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, apperrors.Wrap(err, "error al buscar el usuario")
	}
	return toUserEntity(&model), nil
}

func (r *userRepository) Update(ctx context.Context, u *user.User) error {
	model := toUserModel(u)
	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		if isDuplicateError(err) {
			return user.ErrEmailTaken
		}
		return apperrors.Wrap(err, "error al actualizar el usuario")
	}
	u.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&UserModel{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(err, "error al verificar el email")
	}
	return count > 0, nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := getDB(ctx, r.db).Model(&UserModel{}).Count(&count).Error; err != nil {
		return 0, apperrors.Wrap(err, "error al contar usuarios")
	}
	return count, nil
}

func toUserModel(u *user.User) *UserModel {
	return &UserModel{
		ID:                 u.ID,
		Email:              u.Email,
		PasswordHash:       u.PasswordHash,
		FullName:           u.FullName,
		Phone:              u.Phone,
		Role:               string(u.Role),
		Active:             u.Active,
		EmailVerified:      u.EmailVerified,
		VerificationToken:  u.VerificationToken,
		VerificationExpiry: u.VerificationExpiry,
		ResetToken:         u.ResetToken,
		ResetExpiry:        u.ResetExpiry,
		LastLoginAt:        u.LastLoginAt,
		Street:             u.Address.Street,
		City:               u.Address.City,
		Province:           u.Address.Province,
		PostalCode:         u.Address.PostalCode,
		Country:            u.Address.Country,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}

func toUserEntity(m *UserModel) *user.User {
	return &user.User{
		ID:                 m.ID,
		Email:              m.Email,
		PasswordHash:       m.PasswordHash,
		FullName:           m.FullName,
		Phone:              m.Phone,
		Role:               user.Role(m.Role),
		Active:             m.Active,
		EmailVerified:      m.EmailVerified,
		VerificationToken:  m.VerificationToken,
		VerificationExpiry: m.VerificationExpiry,
		ResetToken:         m.ResetToken,
		ResetExpiry:        m.ResetExpiry,
		LastLoginAt:        m.LastLoginAt,
		Address: user.Address{
			Street:     m.Street,
			City:       m.City,
			Province:   m.Province,
			PostalCode: m.PostalCode,
			Country:    m.Country,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
