package service

import (
	"errors"
	"fmt"

	"github.com/maheshrc27/contentops/internal/repository"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
)

func notFound(entity string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, entity)
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// storeErr turns a repository miss into ErrNotFound and passes anything
// else through.
func storeErr(err error, entity string) error {
	if errors.Is(err, repository.ErrNoRowsAffected) {
		return notFound(entity)
	}
	return err
}
