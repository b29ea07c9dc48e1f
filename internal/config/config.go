package config

// Config is the root configuration.
type Config struct {
	Database DBConfig    `yaml:"database"`
	Store    StoreConfig `yaml:"store"`
}

// DBConfig holds the connection parameters for a single database.
// All fields are kept as strings, the way they arrive from the environment.
type DBConfig struct {
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Name     string `yaml:"name"`
}

// StoreConfig holds dataset store settings.
type StoreConfig struct {
	Dir string `yaml:"dir"`
}

// Environment variable names.
const (
	EnvDBUser     = "DB_USER"
	EnvDBPassword = "DB_PASSWORD"
	EnvDBHost     = "DB_HOST"
	EnvDBPort     = "DB_PORT"
	EnvDBName     = "DB_NAME"
	EnvOutputDir  = "OUTPUT_DIR"
)
