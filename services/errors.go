package services

import (
	"errors"
	"fmt"
)

// Sentinels classify domain errors for the controllers: ErrNotFound maps to
// 404, ErrConflict to 400, ErrForbidden to 403. Anything else is a 500.
var (
	ErrNotFound  = errors.New("not found")
	ErrConflict  = errors.New("conflict")
	ErrForbidden = errors.New("forbidden")
)

func notFound(msg string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, msg)
}

func conflict(msg string) error {
	return fmt.Errorf("%w: %s", ErrConflict, msg)
}

// Message strips the sentinel prefix for the response envelope.
func Message(err error) string {
	for _, s := range []error{ErrNotFound, ErrConflict, ErrForbidden} {
		if errors.Is(err, s) {
			msg := err.Error()
			prefix := s.Error() + ": "
			if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
				return msg[len(prefix):]
			}
			return msg
		}
	}
	return err.Error()
}
