package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateConstraintError(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: ConstraintEnrollmentUnique,
	}

	assert.True(t, IsDuplicateConstraintError(pgErr, ConstraintEnrollmentUnique))
	assert.False(t, IsDuplicateConstraintError(pgErr, ConstraintActivityNameUnique))
}

func TestIsDuplicateConstraintErrorWrapped(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: ConstraintActivityNameUnique,
	}
	wrapped := fmt.Errorf("error creating activity: %w", pgErr)

	assert.True(t, IsDuplicateConstraintError(wrapped, ConstraintActivityNameUnique))
}

func TestIsDuplicateConstraintErrorOtherCodes(t *testing.T) {
	// A foreign key violation is not a duplicate
	pgErr := &pgconn.PgError{
		Code:           "23503",
		ConstraintName: ConstraintEnrollmentUnique,
	}

	assert.False(t, IsDuplicateConstraintError(pgErr, ConstraintEnrollmentUnique))
	assert.False(t, IsDuplicateConstraintError(errors.New("connection refused"), ConstraintEnrollmentUnique))
	assert.False(t, IsDuplicateConstraintError(nil, ConstraintEnrollmentUnique))
}
