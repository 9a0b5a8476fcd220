package service

import (
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"
)

var (
	ErrValidation = errors.New("validation")
	ErrNotFound   = errors.New("not found")
)

// notFound maps gorm's missing-row error onto ErrNotFound and leaves any
// other error untouched.
func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return err
}

// storable reports whether id fits the signed 64-bit key column. Larger ids
// cannot name a row and are rejected by the SQL driver.
func storable(id uint) bool {
	return uint64(id) <= math.MaxInt64
}
