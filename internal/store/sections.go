package store

import (
	"database/sql"
	"fmt"

	"github.com/slr71/mgmt/pkg/types"
)

// AddSection inserts a named configuration section and returns its id.
// Adding a section that already exists returns the existing id.
func (s *Store) AddSection(name string) (int64, error) {
	if name == "" {
		return 0, types.ErrInvalidName
	}
	db, err := s.conn()
	if err != nil {
		return 0, err
	}

	if _, err := db.Exec(
		"INSERT INTO config_sections (name) VALUES (?) ON CONFLICT(name) DO NOTHING", name); err != nil {
		return 0, fmt.Errorf("adding section %s: %w", name, mapErr(err))
	}
	return sectionID(db, name)
}

// SectionID resolves a section name to its id.
// Returns ErrNotFound when no section has that name.
func (s *Store) SectionID(name string) (int64, error) {
	db, err := s.conn()
	if err != nil {
		return 0, err
	}
	return sectionID(db, name)
}

func sectionID(db *sql.DB, name string) (int64, error) {
	var id int64
	err := db.QueryRow("SELECT id FROM config_sections WHERE name = ?", name).Scan(&id)
	if err != nil {
		return 0, mapErr(err)
	}
	return id, nil
}

// DeleteSection removes a section by name. The cascade removes the section's
// config values and defaults along with it.
// Returns ErrNotFound when no section has that name.
func (s *Store) DeleteSection(name string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	res, err := db.Exec("DELETE FROM config_sections WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("deleting section %s: %w", name, mapErr(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting section %s: %w", name, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// ListSections returns all section names in name order.
func (s *Store) ListSections() ([]string, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT name FROM config_sections ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("listing sections: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning section: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
