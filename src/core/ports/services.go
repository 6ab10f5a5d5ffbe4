package ports

// Component is a named dependency whose health is reported by /health/detailed.
type Component struct {
	Name    string
	Checker Repository
}
