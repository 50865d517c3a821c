package types

// Environment is a named deployment target. Each environment selects the
// subset of configuration values rendered for its deployment, and carries
// the namespace those services are deployed into.
type Environment struct {
	ID        int64  // Engine-assigned surrogate key.
	Name      string // Unique environment name (required).
	Namespace string // Deployment namespace (required).
}
