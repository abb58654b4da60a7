package mysql

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isDuplicateError detects a MySQL unique-index violation (error 1062,
// "Duplicate entry ... for key ...").
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "Duplicate entry")
}
