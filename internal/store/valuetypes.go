package store

import (
	"fmt"

	"github.com/slr71/mgmt/pkg/types"
)

// AddValueType inserts a named value type and returns its id.
// Returns ErrConstraintViolation when the name already exists.
func (s *Store) AddValueType(name string) (int64, error) {
	if name == "" {
		return 0, types.ErrInvalidName
	}
	db, err := s.conn()
	if err != nil {
		return 0, err
	}

	res, err := db.Exec("INSERT INTO config_value_types (name) VALUES (?)", name)
	if err != nil {
		return 0, fmt.Errorf("adding value type %s: %w", name, mapErr(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading new value type id: %w", err)
	}
	return id, nil
}

// ValueTypeID resolves a value type name to its id.
// Returns ErrNotFound when no type has that name.
func (s *Store) ValueTypeID(name string) (int64, error) {
	db, err := s.conn()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := db.QueryRow(
		"SELECT id FROM config_value_types WHERE name = ?", name).Scan(&id); err != nil {
		return 0, mapErr(err)
	}
	return id, nil
}

// ListValueTypes returns all value types in name order.
func (s *Store) ListValueTypes() ([]types.ValueType, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT id, name FROM config_value_types ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("listing value types: %w", err)
	}
	defer rows.Close()

	var out []types.ValueType
	for rows.Next() {
		var vt types.ValueType
		if err := rows.Scan(&vt.ID, &vt.Name); err != nil {
			return nil, fmt.Errorf("scanning value type: %w", err)
		}
		out = append(out, vt)
	}
	return out, rows.Err()
}

// DeleteValueType removes a value type by name. The delete fails with
// ErrConstraintViolation while any config value or default still references
// the type; the referencing rows are left unchanged.
func (s *Store) DeleteValueType(name string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	res, err := db.Exec("DELETE FROM config_value_types WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("deleting value type %s: %w", name, mapErr(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting value type %s: %w", name, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}
