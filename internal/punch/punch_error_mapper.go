package punch

import (
	"errors"

	puncherrors "go-timeclock/internal/punch/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return puncherrors.ErrPunchNotFound
	}
	return err
}
