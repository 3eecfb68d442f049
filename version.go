package snowflakeclient

// SnowflakeClientVersion is the version of this client library.
const SnowflakeClientVersion = "1.0.0"

// clientApplication identifies this library to the server when a Config
// does not set its own Application tag.
const clientApplication = "snowflake-client-go/" + SnowflakeClientVersion
