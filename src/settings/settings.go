package settings

import "sync"

type Arguments struct {
	// Directory where snapshot files are written
	DataDir string

	// Optional snapshot file name to save after loading; empty disables it
	SnapshotFile string

	// Path to a .env file with overrides; empty means ./.env when present
	EnvFile string

	// Strongly verbose logging
	Verbose bool

	Debug bool
}

var (
	instance *Arguments
	once     sync.Once
)

// GetSettings returns the global settings instance.
func GetSettings() *Arguments {
	once.Do(func() {
		instance = &Arguments{}
	})
	return instance
}
