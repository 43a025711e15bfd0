package core

// Config is runtime configuration for the demos.
type Config struct {
	Digits  int
	Threads ThreadsConfig
}

// ThreadsConfig sets the worker demo's bundles and take counts.
type ThreadsConfig struct {
	RecordID   int
	RecordName string
	Series     []float64
	DoubleTake int
	PowerTake  int
	ListTake   int
}
