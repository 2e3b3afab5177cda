package batch

// Config holds configuration for the batch orchestrator.
type Config struct {
	// Workers bounds how many entity loads run in parallel during the
	// dependency phase.
	Workers int `mapstructure:"workers" default:"3"`
}

// WorkerCount returns the configured pool size, falling back to 3 when the
// value is unset or nonsensical.
func (c Config) WorkerCount() int {
	if c.Workers <= 0 {
		return 3
	}
	return c.Workers
}
