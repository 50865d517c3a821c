package types

// ConfigValue is one concrete configuration value for a section, typed and
// traceable to the default it overrides.
type ConfigValue struct {
	ID          int64  // Engine-assigned surrogate key, never reused.
	SectionID   int64  // Owning section (required).
	Key         string // Configuration key name (required).
	Value       string // Value as text; interpretation follows the value type.
	ValueTypeID int64  // Declared type of Value (required).
	DefaultID   int64  // Default record this value overrides (required).
}

// Validate checks that every required field is supplied.
// Returns ErrConstraintViolation when one is missing.
func (v ConfigValue) Validate() error {
	if v.SectionID == 0 || v.Key == "" || v.Value == "" || v.ValueTypeID == 0 || v.DefaultID == 0 {
		return ErrConstraintViolation
	}
	return nil
}
