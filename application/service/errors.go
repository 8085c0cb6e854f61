package service

import (
	"errors"

	"github.com/adgenhq/adgen/internal/database"
	"github.com/adgenhq/adgen/internal/domain"
)

// IsNotFound reports whether an error is a missing-entity error from
// either the store layer or the domain layer.
func IsNotFound(err error) bool {
	return errors.Is(err, database.ErrNotFound) || errors.Is(err, domain.ErrNotFound)
}
