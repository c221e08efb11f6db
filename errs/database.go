package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrDatabaseQuery      = errors.New("database query failed")
	ErrDatabaseConnection = errors.New("database connection failed")
)

// FromDB translates a storage error into the API taxonomy. Record-not-found
// becomes NotFound; unique-index breaches become ConstraintViolation, which
// is how slug collisions and second singleton rows surface.
func FromDB(operation, entity string, cause error) *ApiErr {
	if cause == nil {
		return nil
	}

	if apiErr := (*ApiErr)(nil); errors.As(cause, &apiErr) {
		return apiErr
	}

	if errors.Is(cause, gorm.ErrRecordNotFound) {
		return &ApiErr{
			StatusCode: http.StatusNotFound,
			err:        fmt.Errorf("%s %w", entity, ErrNotFound),
			Cause:      cause,
		}
	}

	details := fmt.Sprintf("failed to %s %s", operation, entity)
	errStr := cause.Error()
	switch {
	case isDuplicateKey(errStr):
		return &ApiErr{
			StatusCode: http.StatusConflict,
			err:        ErrConstraintViolation,
			Details:    fmt.Sprintf("%s already exists", entity),
			Cause:      cause,
		}
	case strings.Contains(errStr, "FOREIGN KEY constraint") ||
		strings.Contains(errStr, "foreign key constraint"):
		return &ApiErr{
			StatusCode: http.StatusBadRequest,
			err:        fmt.Errorf("invalid reference in %s", entity),
			Details:    "the referenced resource does not exist or cannot be linked",
			Cause:      cause,
		}
	case strings.Contains(errStr, "connection"):
		return &ApiErr{
			StatusCode: http.StatusServiceUnavailable,
			err:        ErrDatabaseConnection,
			Details:    details,
			Cause:      cause,
		}
	}

	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrDatabaseQuery,
		Details:    details,
		Cause:      cause,
	}
}

// isDuplicateKey matches the wording of both the postgres driver and sqlite,
// which the tests run against.
func isDuplicateKey(errStr string) bool {
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "UNIQUE constraint failed") ||
		strings.Contains(errStr, "SQLSTATE 23505")
}
