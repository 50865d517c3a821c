package store

import (
	"database/sql"
	"fmt"

	"github.com/slr71/mgmt/pkg/types"
)

// UpsertEnvironment inserts an environment or updates the namespace of an
// existing one, and returns the environment's id.
func (s *Store) UpsertEnvironment(name, namespace string) (int64, error) {
	if name == "" {
		return 0, types.ErrInvalidName
	}
	db, err := s.conn()
	if err != nil {
		return 0, err
	}

	_, err = db.Exec(`
		INSERT INTO environments (name, namespace) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET namespace = excluded.namespace`,
		name, namespace)
	if err != nil {
		return 0, fmt.Errorf("upserting environment %s: %w", name, mapErr(err))
	}
	return environmentID(db, name)
}

// EnvironmentID resolves an environment name to its id.
// Returns ErrNotFound when no environment has that name.
func (s *Store) EnvironmentID(name string) (int64, error) {
	db, err := s.conn()
	if err != nil {
		return 0, err
	}
	return environmentID(db, name)
}

func environmentID(db *sql.DB, name string) (int64, error) {
	var id int64
	err := db.QueryRow("SELECT id FROM environments WHERE name = ?", name).Scan(&id)
	if err != nil {
		return 0, mapErr(err)
	}
	return id, nil
}

// ListEnvironments returns all environments in name order.
func (s *Store) ListEnvironments() ([]types.Environment, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT id, name, namespace FROM environments ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("listing environments: %w", err)
	}
	defer rows.Close()

	var out []types.Environment
	for rows.Next() {
		var e types.Environment
		if err := rows.Scan(&e.ID, &e.Name, &e.Namespace); err != nil {
			return nil, fmt.Errorf("scanning environment: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// DeleteEnvironment removes an environment by name. The cascade removes its
// join rows; the config values themselves stay.
// Returns ErrNotFound when no environment has that name.
func (s *Store) DeleteEnvironment(name string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	res, err := db.Exec("DELETE FROM environments WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("deleting environment %s: %w", name, mapErr(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting environment %s: %w", name, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// AddEnvironmentValue links a config value into an environment. Linking the
// same pair twice is a no-op; a missing environment or value fails with
// ErrConstraintViolation.
func (s *Store) AddEnvironmentValue(envID, valueID int64) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	// OR IGNORE absorbs the duplicate-pair conflict only; foreign key
	// violations still surface as errors.
	_, err = db.Exec(`
		INSERT OR IGNORE INTO environments_config_values (environment_id, config_value_id)
		VALUES (?, ?)`,
		envID, valueID)
	if err != nil {
		return fmt.Errorf("linking value %d to environment %d: %w", valueID, envID, mapErr(err))
	}
	return nil
}

// EnvironmentValues returns the config values linked to an environment, in
// insertion order.
func (s *Store) EnvironmentValues(env string) ([]types.ConfigValue, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT v.id, v.section_id, v.cfg_key, v.cfg_value, v.value_type_id, v.default_id
		FROM config_values v
		JOIN environments_config_values ecv ON ecv.config_value_id = v.id
		JOIN environments e ON e.id = ecv.environment_id
		WHERE e.name = ?
		ORDER BY v.id`,
		env)
	if err != nil {
		return nil, fmt.Errorf("listing values for environment %s: %w", env, err)
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
