package store

import (
	"database/sql"
	"fmt"

	"github.com/slr71/mgmt/pkg/types"
)

// seedValueTypes inserts the standard value type names. Names already present
// are left untouched, so reseeding an existing database changes nothing.
func (s *Store) seedValueTypes(db *sql.DB) error {
	for _, name := range types.SeededValueTypes {
		if _, err := db.Exec(
			"INSERT OR IGNORE INTO config_value_types (name) VALUES (?)", name); err != nil {
			return fmt.Errorf("seeding value type %s: %w", name, err)
		}
	}
	return nil
}
