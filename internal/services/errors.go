package services

import (
	"errors"
	"fmt"

	"github.com/localnerve/swipefile/internal/database"
	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrUpstream     = errors.New("upstream error")
	ErrNotConnected = errors.New("integration not connected")
)

func notFound(what string, id any) error {
	return fmt.Errorf("%w: %s %v", ErrNotFound, what, id)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func conflict(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

func upstream(service string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrUpstream, service, err)
}

// classify maps storage errors onto the service sentinels
func classify(err error, what string, id any) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound(what, id)
	case database.IsDuplicate(err):
		return conflict("%s already exists", what)
	case database.IsForeignKey(err):
		return conflict("%s is referenced or references a missing row", what)
	}
	return err
}
