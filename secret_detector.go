package snowflakeclient

import "regexp"

const (
	connectionTokenPattern = `(?i)(token|assertion content)([\'\"\s:=]+)([a-z0-9=/_\-\+]{8,})`
	passwordPattern        = `(?i)(password|pwd)([\'\"\s:=]+)([a-z0-9!\"#\$%&\\\'\(\)\*\+\,-\./:;<=>\?\@\[\]\^_\{\|\}~]{8,})`
	dsnPasswordPattern     = `([^/:]+):([^@/:]{3,})@` // Matches user:password@host format in DSN strings
)

var (
	connectionTokenRegexp = regexp.MustCompile(connectionTokenPattern)
	passwordRegexp        = regexp.MustCompile(passwordPattern)
	dsnPasswordRegexp     = regexp.MustCompile(dsnPasswordPattern)
)

func maskConnectionToken(text string) string {
	return connectionTokenRegexp.ReplaceAllString(text, "$1${2}****")
}

func maskPassword(text string) string {
	return passwordRegexp.ReplaceAllString(text, "$1${2}****")
}

func maskDsnPassword(text string) string {
	return dsnPasswordRegexp.ReplaceAllString(text, "$1:****@")
}

// maskSecrets masks credential material that can surface in config dumps or
// driver errors before it reaches a log record.
func maskSecrets(text string) string {
	return maskDsnPassword(maskPassword(maskConnectionToken(text)))
}
