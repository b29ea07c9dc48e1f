package config

// DefaultStoreDir is where datasets are written when nothing else is configured.
const DefaultStoreDir = "output_data"

// DefaultEnvFile is the local environment-definition file read at startup.
const DefaultEnvFile = ".env"

// Database fields have no defaults: a missing value surfaces as a connect
// failure, not as a silently substituted host or port.
func (c *Config) applyDefaults() {
	if c.Store.Dir == "" {
		c.Store.Dir = DefaultStoreDir
	}
}
