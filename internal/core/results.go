package core

// Demo names.
const (
	DemoVariadic = "variadic"
	DemoPrint    = "print"
	DemoDispatch = "dispatch"
	DemoThreads  = "threads"
)

// DemoResult holds the lines one demo printed.
type DemoResult struct {
	Name  string   `json:"name"`
	Lines []string `json:"lines"`
}

// AllResult holds every demo's result in run order.
type AllResult struct {
	Demos []DemoResult `json:"demos"`
}
