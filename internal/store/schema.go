// Package store implements the SQLite-backed configuration store for mgmt.
// Sections group typed configuration values, defaults provide the fallback
// for each key, and environments select the values rendered for a deployment.
package store

// Schema DDL. Every statement is guarded with IF NOT EXISTS so reopening an
// existing database is a no-op.
const (
	createConfigSections = `CREATE TABLE IF NOT EXISTS config_sections (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE
);`

	createConfigValueTypes = `CREATE TABLE IF NOT EXISTS config_value_types (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE
);`

	createConfigDefaults = `CREATE TABLE IF NOT EXISTS config_defaults (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    section_id INTEGER NOT NULL,
    cfg_key TEXT NOT NULL,
    cfg_value TEXT NOT NULL,
    value_type_id INTEGER NOT NULL,
    UNIQUE (section_id, cfg_key),
    FOREIGN KEY (section_id) REFERENCES config_sections(id) ON DELETE CASCADE,
    FOREIGN KEY (value_type_id) REFERENCES config_value_types(id)
);`

	createConfigValues = `CREATE TABLE IF NOT EXISTS config_values (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    section_id INTEGER NOT NULL,
    cfg_key TEXT NOT NULL,
    cfg_value TEXT NOT NULL,
    value_type_id INTEGER NOT NULL,
    default_id INTEGER NOT NULL,
    FOREIGN KEY (section_id) REFERENCES config_sections(id) ON DELETE CASCADE,
    FOREIGN KEY (value_type_id) REFERENCES config_value_types(id),
    FOREIGN KEY (default_id) REFERENCES config_defaults(id)
);`

	createEnvironments = `CREATE TABLE IF NOT EXISTS environments (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    namespace TEXT NOT NULL
);`

	createEnvironmentsConfigValues = `CREATE TABLE IF NOT EXISTS environments_config_values (
    environment_id INTEGER NOT NULL,
    config_value_id INTEGER NOT NULL,
    PRIMARY KEY (environment_id, config_value_id),
    FOREIGN KEY (environment_id) REFERENCES environments(id) ON DELETE CASCADE,
    FOREIGN KEY (config_value_id) REFERENCES config_values(id) ON DELETE CASCADE
);`
)

// Index DDL for the foreign-key lookup paths.
const (
	idxValuesSection   = `CREATE INDEX IF NOT EXISTS idx_config_values_section ON config_values(section_id);`
	idxValuesType      = `CREATE INDEX IF NOT EXISTS idx_config_values_type ON config_values(value_type_id);`
	idxValuesDefault   = `CREATE INDEX IF NOT EXISTS idx_config_values_default ON config_values(default_id);`
	idxDefaultsSection = `CREATE INDEX IF NOT EXISTS idx_config_defaults_section ON config_defaults(section_id);`
	idxEnvValuesValue  = `CREATE INDEX IF NOT EXISTS idx_env_values_value ON environments_config_values(config_value_id);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createConfigSections,
	createConfigValueTypes,
	createConfigDefaults,
	createConfigValues,
	createEnvironments,
	createEnvironmentsConfigValues,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxValuesSection,
	idxValuesType,
	idxValuesDefault,
	idxDefaultsSection,
	idxEnvValuesValue,
}
