package repository

import (
	"database/sql/driver"
	"errors"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
	sqlite "modernc.org/sqlite"
)

func init() {
	// built-in lower() and LIKE fold ASCII only
	sqlite.MustRegisterDeterministicScalarFunction("casefold", 1, casefold)
}

// casefold lower-cases text values with Go's Unicode rules, other values pass through
func casefold(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}

// errCritical is passed to the repeater as the stop condition
var errCritical = errors.New("critical")

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string { return e.err.Error() }
func (e *criticalError) Unwrap() error { return e.err }

// Is matches errCritical so the repeater treats the error as final
func (e *criticalError) Is(target error) bool { return target == errCritical }

func critical(err error) error {
	return &criticalError{err: err}
}

// newRetrier makes the backoff used for writes contending on the SQLite lock
func newRetrier() *repeater.Repeater {
	return repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}

// likePattern escapes LIKE wildcards in s and wraps it for substring match.
// The result is lower-cased to compare against casefold() columns.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(s)) + "%"
}
