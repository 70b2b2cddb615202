// Package config defines the application configuration structure and
// loads it from files and environment variables.
package config
