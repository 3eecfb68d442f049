package snowflakeclient

import (
	"errors"
	"fmt"
)

// Error is the error type returned by this package. Number identifies the
// failure and places it in one of three classes: configuration errors
// (codes 360xxx), connection errors (361xxx) and query errors (362xxx).
// Err, when set, carries the underlying driver error.
type Error struct {
	Number      int
	Message     string
	MessageArgs []interface{}
	Err         error
}

func (e *Error) Error() string {
	message := e.Message
	if len(e.MessageArgs) > 0 {
		message = fmt.Sprintf(e.Message, e.MessageArgs...)
	}
	if e.Err != nil {
		return fmt.Sprintf("%06d: %s: %s", e.Number, message, e.Err)
	}
	return fmt.Sprintf("%06d: %s", e.Number, message)
}

// Unwrap returns the underlying error so errors.Is and errors.As can reach
// driver errors through the wrapper.
func (e *Error) Unwrap() error {
	return e.Err
}

const (
	// configuration

	// ErrCodeEmptyAccount is an error code for the case where a Config doesn't include the account.
	ErrCodeEmptyAccount = 360001
	// ErrCodeEmptyUsername is an error code for the case where a Config doesn't include the user.
	ErrCodeEmptyUsername = 360002
	// ErrCodeEmptyPassword is an error code for the case where a Config doesn't include the password.
	ErrCodeEmptyPassword = 360003
	// ErrCodeEnvVarMissing is an error code for the case where a required SNOWFLAKE_* environment variable is not set.
	ErrCodeEnvVarMissing = 360004
	// ErrCodeProfileNotFound is an error code for the case where connections.toml doesn't contain the requested profile.
	ErrCodeProfileNotFound = 360005
	// ErrCodeProfileParseFailed is an error code for the case where connections.toml cannot be parsed.
	ErrCodeProfileParseFailed = 360006
	// ErrCodeProfileReadFailed is an error code for the case where connections.toml cannot be read.
	ErrCodeProfileReadFailed = 360007

	// connection

	// ErrCodeConnectionFailed is an error code for the case where the driver could not establish a session.
	ErrCodeConnectionFailed = 361001
	// ErrCodeNotConnected is an error code for the case where a query is issued on a disconnected client with lazy connect disabled.
	ErrCodeNotConnected = 361002

	// query

	// ErrCodeQueryFailed is an error code for the case where statement execution or result retrieval failed.
	ErrCodeQueryFailed = 362001
)

const (
	errMsgEnvVarMissing      = "%v environment variable is not set"
	errMsgProfileNotFound    = "connection profile %v was not found in connections.toml"
	errMsgProfileParseFailed = "failed to parse connections.toml"
	errMsgProfileBadValue    = "invalid value in connections.toml. key: %v, value: %v"
	errMsgProfileReadFailed  = "failed to read connections.toml"
	errMsgConnectionFailed   = "failed to connect to Snowflake"
	errMsgNotConnected       = "client is not connected and lazy connect is disabled"
	errMsgQueryFailed        = "failed to execute query"
	errMsgQueryFetchFailed   = "failed to fetch query results"
)

var (
	// preformatted errors

	// ErrEmptyAccount is returned if a Config doesn't include the account.
	ErrEmptyAccount = &Error{
		Number:  ErrCodeEmptyAccount,
		Message: "account is empty",
	}
	// ErrEmptyUsername is returned if a Config doesn't include the user.
	ErrEmptyUsername = &Error{
		Number:  ErrCodeEmptyUsername,
		Message: "user is empty",
	}
	// ErrEmptyPassword is returned if a Config doesn't include the password.
	ErrEmptyPassword = &Error{
		Number:  ErrCodeEmptyPassword,
		Message: "password is empty",
	}
)

// IsConfigError reports whether err is an Error describing invalid or
// incomplete configuration.
func IsConfigError(err error) bool {
	return errClass(err) == 360
}

// IsConnectionError reports whether err is an Error describing a failure to
// establish or hold a session.
func IsConnectionError(err error) bool {
	return errClass(err) == 361
}

// IsQueryError reports whether err is an Error describing a failed statement
// or result fetch.
func IsQueryError(err error) bool {
	return errClass(err) == 362
}

func errClass(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return 0
	}
	return e.Number / 1000
}
