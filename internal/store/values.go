package store

import (
	"fmt"

	"github.com/slr71/mgmt/pkg/types"
)

// AddValue inserts a fully resolved configuration value and returns its fresh
// id. Ids are engine-assigned and never reused; inserting the same value
// twice yields two rows with distinct ids. A missing parent row for any of
// the three references fails with ErrConstraintViolation and persists nothing.
func (s *Store) AddValue(v types.ConfigValue) (int64, error) {
	if err := v.Validate(); err != nil {
		return 0, err
	}
	db, err := s.conn()
	if err != nil {
		return 0, err
	}

	res, err := db.Exec(`
		INSERT INTO config_values (section_id, cfg_key, cfg_value, value_type_id, default_id)
		VALUES (?, ?, ?, ?, ?)`,
		v.SectionID, v.Key, v.Value, v.ValueTypeID, v.DefaultID)
	if err != nil {
		return 0, fmt.Errorf("adding value %s: %w", v.Key, mapErr(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading new value id: %w", err)
	}
	return id, nil
}

// SetValue inserts a configuration value resolving every reference by name:
// the section and value type by their names, and the default by the
// section/key pair. A name that resolves to nothing leaves the corresponding
// column NULL, so the insert fails with ErrConstraintViolation.
func (s *Store) SetValue(section, key, value, valueType string) (int64, error) {
	db, err := s.conn()
	if err != nil {
		return 0, err
	}

	res, err := db.Exec(`
		INSERT INTO config_values (section_id, cfg_key, cfg_value, value_type_id, default_id)
		VALUES (
			(SELECT id FROM config_sections WHERE name = ?),
			?,
			?,
			(SELECT id FROM config_value_types WHERE name = ?),
			(SELECT d.id FROM config_defaults d
			 JOIN config_sections cs ON cs.id = d.section_id
			 WHERE cs.name = ? AND d.cfg_key = ?)
		)`,
		section, key, value, valueType, section, key)
	if err != nil {
		return 0, fmt.Errorf("setting value %s.%s: %w", section, key, mapErr(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading new value id: %w", err)
	}
	return id, nil
}

// GetValue retrieves a configuration value by id.
// Returns ErrNotFound when no row has that id.
func (s *Store) GetValue(id int64) (types.ConfigValue, error) {
	db, err := s.conn()
	if err != nil {
		return types.ConfigValue{}, err
	}

	var v types.ConfigValue
	err = db.QueryRow(`
		SELECT id, section_id, cfg_key, cfg_value, value_type_id, default_id
		FROM config_values WHERE id = ?`, id).
		Scan(&v.ID, &v.SectionID, &v.Key, &v.Value, &v.ValueTypeID, &v.DefaultID)
	if err != nil {
		return types.ConfigValue{}, mapErr(err)
	}
	return v, nil
}

// ListValues returns a section's values in insertion order.
func (s *Store) ListValues(section string) ([]types.ConfigValue, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT v.id, v.section_id, v.cfg_key, v.cfg_value, v.value_type_id, v.default_id
		FROM config_values v
		JOIN config_sections s ON s.id = v.section_id
		WHERE s.name = ?
		ORDER BY v.id`,
		section)
	if err != nil {
		return nil, fmt.Errorf("listing values for %s: %w", section, err)
	}
	defer rows.Close()

	var out []types.ConfigValue
	for rows.Next() {
		var v types.ConfigValue
		if err := rows.Scan(&v.ID, &v.SectionID, &v.Key, &v.Value, &v.ValueTypeID, &v.DefaultID); err != nil {
			return nil, fmt.Errorf("scanning value: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// UpdateValue rewrites an existing value row in place. The id is preserved;
// all other columns take the struct's fields, subject to the same referential
// checks as AddValue. Returns ErrNotFound when no row has the id.
func (s *Store) UpdateValue(v types.ConfigValue) error {
	if err := v.Validate(); err != nil {
		return err
	}
	db, err := s.conn()
	if err != nil {
		return err
	}

	res, err := db.Exec(`
		UPDATE config_values
		SET section_id = ?, cfg_key = ?, cfg_value = ?, value_type_id = ?, default_id = ?
		WHERE id = ?`,
		v.SectionID, v.Key, v.Value, v.ValueTypeID, v.DefaultID, v.ID)
	if err != nil {
		return fmt.Errorf("updating value %d: %w", v.ID, mapErr(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating value %d: %w", v.ID, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// DeleteValue removes a single value row by id.
// Returns ErrNotFound when no row has that id.
func (s *Store) DeleteValue(id int64) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	res, err := db.Exec("DELETE FROM config_values WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting value %d: %w", id, mapErr(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting value %d: %w", id, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}
