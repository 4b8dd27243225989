package usersrepo

import (
	"database/sql"
	"errors"
)

const ValidationError = constError("invalid request")

// IsNoRowsError checks if the error is a no rows error.
func IsNoRowsError(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func IsValidationError(err error) bool {
	return errors.Is(err, ValidationError)
}

type constError string

func (e constError) Error() string {
	return string(e)
}
