// Package config builds the explicit configuration for datautils.
//
// Values come from the process environment, optionally seeded from a local
// .env file, or from a YAML file that supports ${VAR} interpolation.
// Configuration is read once at startup and passed down by value.
package config
