package snowflakeclient

import "os"

// Environment variables read by ConfigFromEnv.
const (
	EnvAccount   = "SNOWFLAKE_ACCOUNT"
	EnvUser      = "SNOWFLAKE_USER"
	EnvPassword  = "SNOWFLAKE_PASSWORD"
	EnvWarehouse = "SNOWFLAKE_WAREHOUSE"
	EnvDatabase  = "SNOWFLAKE_DATABASE"
	EnvSchema    = "SNOWFLAKE_SCHEMA"
	EnvRole      = "SNOWFLAKE_ROLE"
)

// envParam binds one Config field to an environment variable.
type envParam struct {
	target        *string
	envName       string
	failOnMissing bool
}

// ConfigFromEnv builds a Config from SNOWFLAKE_* environment variables.
// SNOWFLAKE_ACCOUNT, SNOWFLAKE_USER and SNOWFLAKE_PASSWORD are required;
// the remaining variables are optional and leave their fields empty when
// absent. An empty variable counts as absent.
func ConfigFromEnv() (*Config, error) {
	cfg := &Config{}
	params := []envParam{
		{&cfg.Account, EnvAccount, true},
		{&cfg.User, EnvUser, true},
		{&cfg.Password, EnvPassword, true},
		{&cfg.Warehouse, EnvWarehouse, false},
		{&cfg.Database, EnvDatabase, false},
		{&cfg.Schema, EnvSchema, false},
		{&cfg.Role, EnvRole, false},
	}
	for _, p := range params {
		value, err := getFromEnv(p.envName, p.failOnMissing)
		if err != nil {
			return nil, err
		}
		*p.target = value
	}
	return cfg, nil
}

func getFromEnv(name string, failOnMissing bool) (string, error) {
	if value := os.Getenv(name); value != "" {
		return value, nil
	}
	if failOnMissing {
		return "", &Error{
			Number:      ErrCodeEnvVarMissing,
			Message:     errMsgEnvVarMissing,
			MessageArgs: []interface{}{name},
		}
	}
	return "", nil
}

// NewClientFromEnv builds a Client from SNOWFLAKE_* environment variables.
// The client is returned disconnected; with lazy connect enabled the first
// query establishes the session.
func NewClientFromEnv() (*Client, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return NewClient(*cfg)
}
