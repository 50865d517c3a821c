package store

import (
	"database/sql"
	"errors"
	"fmt"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/slr71/mgmt/pkg/types"
)

// mapErr converts driver-level errors to the package sentinels. SQLite
// constraint failures (missing foreign-key targets, NOT NULL, UNIQUE) become
// types.ErrConstraintViolation; sql.ErrNoRows becomes types.ErrNotFound.
// Other errors pass through unchanged.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return types.ErrNotFound
	}
	var se *sqlite.Error
	if errors.As(err, &se) && se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
		return fmt.Errorf("%v: %w", err, types.ErrConstraintViolation)
	}
	return err
}
