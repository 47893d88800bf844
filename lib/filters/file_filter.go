package filters

// FileFilter decides on a template name, given as a slash separated path relative to its source.
type FileFilter func(name string) bool

type FileFilterWithUsage interface {
	Filter(name string) UsageType

	// Decide does not receive DontCare handling from the caller, so it must resolve it
	Decide(u UsageType) bool
}
