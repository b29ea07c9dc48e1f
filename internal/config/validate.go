package config

import (
	"errors"
	"fmt"
)

// ErrMissing is returned (wrapped) by Validate for each absent required field.
var ErrMissing = errors.New("required value missing")

// Validate reports database fields that are empty. It does not reject
// anything else; callers decide whether a missing field is fatal.
func (c *Config) Validate() error {
	return c.Database.validate("database")
}

func (db *DBConfig) validate(prefix string) error {
	var errs []error
	check := func(field, value, env string) {
		if value == "" {
			errs = append(errs, fmt.Errorf("%s.%s (%s): %w", prefix, field, env, ErrMissing))
		}
	}
	check("user", db.User, EnvDBUser)
	check("password", db.Password, EnvDBPassword)
	check("host", db.Host, EnvDBHost)
	check("port", db.Port, EnvDBPort)
	check("name", db.Name, EnvDBName)
	return errors.Join(errs...)
}
