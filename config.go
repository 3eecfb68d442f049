package snowflakeclient

import (
	sf "github.com/snowflakedb/gosnowflake"
)

// ConfigBool is a tri-state boolean for Config fields whose absence means
// something different from false.
type ConfigBool uint8

const (
	configBoolNotSet ConfigBool = iota // Reflects not set for the config field
	// ConfigBoolTrue represents true for the config field
	ConfigBoolTrue
	// ConfigBoolFalse represents false for the config field
	ConfigBoolFalse
)

// Config holds the parameters used to establish a Snowflake session.
// Account, User and Password are required; the remaining session fields are
// optional and stay out of the session when left empty.
type Config struct {
	Account  string // Account identifier
	User     string // Username
	Password string // Password (requires User)

	Warehouse string // Virtual warehouse
	Database  string // Database name
	Schema    string // Schema name
	Role      string // Role name

	// Application is the application tag reported to the server. Empty
	// selects this library's own tag.
	Application string

	// LazyConnect controls whether ExecuteQuery establishes the session on
	// demand when the client is not yet connected. Not set means enabled.
	LazyConnect ConfigBool

	// Logger receives this client's log records. Nil selects a
	// logrus-backed default. The logger is always wrapped with secret
	// masking before use.
	Logger Logger
}

func (cfg *Config) validate() error {
	if cfg.Account == "" {
		return ErrEmptyAccount
	}
	if cfg.User == "" {
		return ErrEmptyUsername
	}
	if cfg.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}

func (cfg *Config) lazyConnectEnabled() bool {
	return cfg.LazyConnect != ConfigBoolFalse
}

// toDriverConfig derives the driver session config. Optional fields left
// empty stay zero so the driver treats them as absent.
func (cfg *Config) toDriverConfig() *sf.Config {
	dc := &sf.Config{
		Account:     cfg.Account,
		User:        cfg.User,
		Password:    cfg.Password,
		Warehouse:   cfg.Warehouse,
		Database:    cfg.Database,
		Schema:      cfg.Schema,
		Role:        cfg.Role,
		Application: cfg.Application,
	}
	if dc.Application == "" {
		dc.Application = clientApplication
	}
	return dc
}
