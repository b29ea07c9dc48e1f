package database

import (
	"fmt"
	"net/url"

	"github.com/rickgao/datautils/internal/config"
)

// BuildConnString builds a PostgreSQL connection string from config.
// Empty fields are not filled in; the resulting string fails at parse or
// connect time instead.
func BuildConnString(cfg config.DBConfig) string {
	// Escape userinfo to handle special characters in credentials
	userinfo := url.UserPassword(cfg.User, cfg.Password).String()

	return fmt.Sprintf(
		"postgresql://%s@%s:%s/%s",
		userinfo,
		cfg.Host,
		cfg.Port,
		cfg.Name,
	)
}
