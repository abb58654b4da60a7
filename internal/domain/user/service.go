package user

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/tiendamoderna/tienda/pkg/errors"
)

// Service holds the identity rules that need crypto: password hashing and
// random account-token generation.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// HashPassword hashes a plaintext password with bcrypt.
func (s *Service) HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", apperrors.Wrap(err, "error al procesar la contraseña")
	}
	return string(hash), nil
}

// VerifyPassword reports whether plain matches the stored bcrypt hash.
func (s *Service) VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// NewToken generates a 32-character random token for the email-verification
// and password-reset flows.
func (s *Service) NewToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", apperrors.Wrap(err, "error al generar el token")
	}
	return hex.EncodeToString(buf), nil
}
