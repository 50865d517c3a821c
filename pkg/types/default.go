package types

// ConfigDefault is the fallback value for a configuration key within a
// section. Every ConfigValue points back at the default it overrides.
type ConfigDefault struct {
	ID          int64  // Engine-assigned surrogate key.
	SectionID   int64  // Owning section (required).
	Key         string // Configuration key name (required).
	Value       string // Fallback value as text (required).
	ValueTypeID int64  // Declared type of Value (required).
}

// Validate checks that every required field is supplied.
// Returns ErrConstraintViolation when one is missing.
func (d ConfigDefault) Validate() error {
	if d.SectionID == 0 || d.Key == "" || d.Value == "" || d.ValueTypeID == 0 {
		return ErrConstraintViolation
	}
	return nil
}
