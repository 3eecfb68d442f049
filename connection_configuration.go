package snowflakeclient

import (
	"errors"
	"os"
	path "path/filepath"
	"runtime"
	"strings"

	toml "github.com/BurntSushi/toml"
)

// Environment variables controlling connections.toml resolution.
const (
	EnvSnowflakeHome         = "SNOWFLAKE_HOME"
	EnvDefaultConnectionName = "SNOWFLAKE_DEFAULT_CONNECTION_NAME"
)

var isWindows = runtime.GOOS == "windows"

// LoadConnectionProfile returns a Config loaded from the named profile in
// connections.toml. By default the file lives in os.home/snowflake; the
// directory can be overridden with SNOWFLAKE_HOME. An empty name selects
// SNOWFLAKE_DEFAULT_CONNECTION_NAME, falling back to "default".
//
// Keys outside this package's Config surface, such as host or
// authenticator, are ignored.
func LoadConnectionProfile(name string) (*Config, error) {
	profile := connectionProfileName(name)
	configDir, err := snowflakeConfigDir(os.Getenv(EnvSnowflakeHome))
	if err != nil {
		return nil, &Error{Number: ErrCodeProfileReadFailed, Message: errMsgProfileReadFailed, Err: err}
	}
	tomlFilePath := path.Join(configDir, "connections.toml")
	if err = validateFilePermission(tomlFilePath); err != nil {
		return nil, &Error{Number: ErrCodeProfileReadFailed, Message: errMsgProfileReadFailed, Err: err}
	}
	tomlInfo := make(map[string]interface{})
	if _, err = toml.DecodeFile(tomlFilePath, &tomlInfo); err != nil {
		return nil, &Error{Number: ErrCodeProfileParseFailed, Message: errMsgProfileParseFailed, Err: err}
	}
	connection, exist := tomlInfo[profile]
	if !exist {
		return nil, &Error{
			Number:      ErrCodeProfileNotFound,
			Message:     errMsgProfileNotFound,
			MessageArgs: []interface{}{profile},
		}
	}
	fields, ok := connection.(map[string]interface{})
	if !ok {
		return nil, &Error{
			Number:      ErrCodeProfileParseFailed,
			Message:     errMsgProfileBadValue,
			MessageArgs: []interface{}{profile, connection},
		}
	}
	cfg := &Config{}
	if err = parseProfile(cfg, fields); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewClientFromProfile builds a Client from the named connections.toml
// profile. The client is returned disconnected.
func NewClientFromProfile(name string) (*Client, error) {
	cfg, err := LoadConnectionProfile(name)
	if err != nil {
		return nil, err
	}
	return NewClient(*cfg)
}

func parseProfile(cfg *Config, connection map[string]interface{}) error {
	for key, value := range connection {
		var target *string
		switch strings.ToLower(key) {
		case "account":
			target = &cfg.Account
		case "user", "username":
			target = &cfg.User
		case "password":
			target = &cfg.Password
		case "warehouse":
			target = &cfg.Warehouse
		case "database":
			target = &cfg.Database
		case "schema":
			target = &cfg.Schema
		case "role":
			target = &cfg.Role
		case "application":
			target = &cfg.Application
		default:
			// Driver-level keys are outside this package's surface.
			continue
		}
		v, ok := value.(string)
		if !ok {
			return &Error{
				Number:      ErrCodeProfileParseFailed,
				Message:     errMsgProfileBadValue,
				MessageArgs: []interface{}{key, value},
			}
		}
		*target = v
	}
	return nil
}

func connectionProfileName(name string) string {
	if len(name) != 0 {
		return name
	}
	if v := os.Getenv(EnvDefaultConnectionName); len(v) != 0 {
		return v
	}
	return "default"
}

func snowflakeConfigDir(dirPath string) (string, error) {
	if len(dirPath) != 0 {
		if path.IsAbs(dirPath) {
			return dirPath, nil
		}
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dirPath = path.Join(homeDir, "snowflake")
	}
	absDir, err := path.Abs(dirPath)
	if err != nil {
		return "", err
	}
	return absDir, nil
}

func validateFilePermission(filePath string) error {
	if isWindows {
		return nil
	}
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return err
	}
	if permission := fileInfo.Mode().Perm(); permission != os.FileMode(0600) {
		return errors.New("your access to the file was denied")
	}
	return nil
}
