package store

import (
	"database/sql"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/slr71/mgmt/pkg/types"
)

// defaultsQuery selects every default joined with its section and type names.
const defaultsQuery = `
	SELECT s.name, d.cfg_key, d.cfg_value, t.name
	FROM config_defaults d
	JOIN config_sections s ON s.id = d.section_id
	JOIN config_value_types t ON t.id = d.value_type_id
	ORDER BY s.name, d.cfg_key`

// envValuesQuery selects an environment's values joined with section and type
// names. Ordered by value id so the latest insert for a key wins the overlay.
const envValuesQuery = `
	SELECT s.name, v.cfg_key, v.cfg_value, t.name
	FROM config_values v
	JOIN environments_config_values ecv ON ecv.config_value_id = v.id
	JOIN environments e ON e.id = ecv.environment_id
	JOIN config_sections s ON s.id = v.section_id
	JOIN config_value_types t ON t.id = v.value_type_id
	WHERE e.name = ?
	ORDER BY s.name, v.cfg_key, v.id`

// RenderDefaults writes every section's defaults to w as a YAML document:
// a top-level map keyed by section name, each section a map of key to value
// decoded per its declared type.
func (s *Store) RenderDefaults(w io.Writer) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	doc := make(map[string]map[string]any)
	if err := collectInto(doc, db, defaultsQuery); err != nil {
		return err
	}
	return writeYAML(w, doc)
}

// RenderValues writes the merged configuration for an environment to w:
// every section's defaults overlaid with the values linked to the
// environment. Returns ErrNotFound when the environment does not exist.
func (s *Store) RenderValues(w io.Writer, env string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	if _, err := environmentID(db, env); err != nil {
		return err
	}

	doc := make(map[string]map[string]any)
	if err := collectInto(doc, db, defaultsQuery); err != nil {
		return err
	}
	if err := collectInto(doc, db, envValuesQuery, env); err != nil {
		return err
	}
	return writeYAML(w, doc)
}

// collectInto runs a (section, key, value, type) query and folds the decoded
// rows into doc. Rows for a key already present overwrite it.
func collectInto(doc map[string]map[string]any, db *sql.DB, query string, args ...any) error {
	rows, err := db.Query(query, args...)
	if err != nil {
		return fmt.Errorf("collecting render rows: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var section, key, raw, typeName string
		if err := rows.Scan(&section, &key, &raw, &typeName); err != nil {
			return fmt.Errorf("scanning render row: %w", err)
		}
		val, err := types.DecodeValue(typeName, raw)
		if err != nil {
			return fmt.Errorf("decoding %s.%s: %w", section, key, err)
		}
		if doc[section] == nil {
			doc[section] = make(map[string]any)
		}
		doc[section][key] = val
	}
	return rows.Err()
}

// writeYAML encodes doc to w with two-space indentation.
func writeYAML(w io.Writer, doc map[string]map[string]any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		enc.Close()
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}
