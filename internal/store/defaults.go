package store

import (
	"fmt"

	"github.com/slr71/mgmt/pkg/types"
)

// SetDefault upserts the fallback value for (section, key), resolving the
// section and value type by name, and returns the default's id. A section or
// value type name that resolves to nothing fails with ErrConstraintViolation.
func (s *Store) SetDefault(section, key, value, valueType string) (int64, error) {
	db, err := s.conn()
	if err != nil {
		return 0, err
	}

	_, err = db.Exec(`
		INSERT INTO config_defaults (section_id, cfg_key, cfg_value, value_type_id)
		VALUES (
			(SELECT id FROM config_sections WHERE name = ?),
			?,
			?,
			(SELECT id FROM config_value_types WHERE name = ?)
		)
		ON CONFLICT(section_id, cfg_key) DO UPDATE SET
			cfg_value = excluded.cfg_value,
			value_type_id = excluded.value_type_id`,
		section, key, value, valueType)
	if err != nil {
		return 0, fmt.Errorf("setting default %s.%s: %w", section, key, mapErr(err))
	}

	var id int64
	err = db.QueryRow(`
		SELECT d.id FROM config_defaults d
		JOIN config_sections s ON s.id = d.section_id
		WHERE s.name = ? AND d.cfg_key = ?`,
		section, key).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("resolving default %s.%s: %w", section, key, mapErr(err))
	}
	return id, nil
}

// DefaultID resolves the default record for a section/key pair.
// Returns ErrNotFound when no default exists for the pair.
func (s *Store) DefaultID(sectionID int64, key string) (int64, error) {
	db, err := s.conn()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := db.QueryRow(
		"SELECT id FROM config_defaults WHERE section_id = ? AND cfg_key = ?",
		sectionID, key).Scan(&id); err != nil {
		return 0, mapErr(err)
	}
	return id, nil
}

// ListDefaults returns a section's defaults in key order.
func (s *Store) ListDefaults(section string) ([]types.ConfigDefault, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT d.id, d.section_id, d.cfg_key, d.cfg_value, d.value_type_id
		FROM config_defaults d
		JOIN config_sections s ON s.id = d.section_id
		WHERE s.name = ?
		ORDER BY d.cfg_key`,
		section)
	if err != nil {
		return nil, fmt.Errorf("listing defaults for %s: %w", section, err)
	}
	defer rows.Close()

	var out []types.ConfigDefault
	for rows.Next() {
		var d types.ConfigDefault
		if err := rows.Scan(&d.ID, &d.SectionID, &d.Key, &d.Value, &d.ValueTypeID); err != nil {
			return nil, fmt.Errorf("scanning default: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// DeleteDefault removes a default by id. The delete fails with
// ErrConstraintViolation while any config value still references the default;
// the referencing rows are left unchanged.
func (s *Store) DeleteDefault(id int64) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	res, err := db.Exec("DELETE FROM config_defaults WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting default %d: %w", id, mapErr(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting default %d: %w", id, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}
