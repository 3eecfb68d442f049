package snowflakeclient

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Row is a single result row keyed by column name as reported by the
// server. Snowflake upper-cases unquoted identifiers, so a column selected
// as "count" comes back under "COUNT".
type Row map[string]interface{}

// InitContext names the database and schema to activate before a query
// runs. Empty fields are skipped.
type InitContext struct {
	Database string
	Schema   string
}

// QueryOptions carries the optional parts of an ExecuteQuery call.
type QueryOptions struct {
	// Params are named bind parameters resolved by the driver. A query
	// refers to them as ":name" placeholders.
	Params map[string]interface{}

	// Init, when non-nil, activates a database and schema before running
	// the query. The switch outlives the query.
	Init *InitContext
}

// ExecuteQuery runs a statement and returns every result row eagerly. The
// result set is closed before ExecuteQuery returns, also on fetch errors.
// A query with no results returns a nil slice and no error.
//
// On a disconnected client the session is established first, unless lazy
// connect was disabled in the Config.
func (c *Client) ExecuteQuery(ctx context.Context, query string, opts *QueryOptions) ([]Row, error) {
	if c.db == nil {
		if !c.cfg.lazyConnectEnabled() {
			return nil, &Error{Number: ErrCodeNotConnected, Message: errMsgNotConnected}
		}
		c.logger.Debugf("not connected, establishing session before query")
		if err := c.Connect(ctx); err != nil {
			return nil, err
		}
	}
	if opts != nil && opts.Init != nil {
		if err := c.InitializeContext(ctx, opts.Init.Database, opts.Init.Schema); err != nil {
			return nil, err
		}
	}

	requestID := uuid.New()
	start := time.Now()
	var args []interface{}
	if opts != nil && len(opts.Params) > 0 {
		args = namedArgs(opts.Params)
	}
	c.logger.Debugf("Query: %#v, requestID: %v, binds: %v", query, requestID, len(args))

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		c.logger.Errorf("failed to execute query. requestID: %v, err: %v", requestID, err)
		return nil, &Error{Number: ErrCodeQueryFailed, Message: errMsgQueryFailed, Err: err}
	}
	defer func() {
		_ = rows.Close()
	}()

	result, err := fetchAll(rows)
	if err != nil {
		c.logger.Errorf("failed to fetch query results. requestID: %v, err: %v", requestID, err)
		return nil, &Error{Number: ErrCodeQueryFailed, Message: errMsgQueryFetchFailed, Err: err}
	}
	c.logger.Infof("query finished. requestID: %v, rows: %v, duration: %v", requestID, len(result), time.Since(start))
	return result, nil
}

// InitializeContext activates the given database and schema for the
// current session by issuing USE statements. Identifiers are trusted input:
// they are interpolated into the statement text without quoting or
// validation. Empty arguments are skipped.
func (c *Client) InitializeContext(ctx context.Context, database, schema string) error {
	if database != "" {
		if _, err := c.ExecuteQuery(ctx, fmt.Sprintf("USE DATABASE %v", database), nil); err != nil {
			c.logger.Errorf("failed to activate database. database: %v, err: %v", database, err)
			return err
		}
		c.logger.Infof("database context set. database: %v", database)
	}
	if schema != "" {
		if _, err := c.ExecuteQuery(ctx, fmt.Sprintf("USE SCHEMA %v", schema), nil); err != nil {
			c.logger.Errorf("failed to activate schema. schema: %v, err: %v", schema, err)
			return err
		}
		c.logger.Infof("schema context set. schema: %v", schema)
	}
	return nil
}

// CreateDatabase creates a database with the given name. The name is
// trusted input and is interpolated into the statement without quoting.
func CreateDatabase(ctx context.Context, client *Client, name string) error {
	_, err := client.ExecuteQuery(ctx, fmt.Sprintf("CREATE DATABASE %v", name), nil)
	return err
}

// fetchAll drains rows into memory, mapping every row by column name.
func fetchAll(rows *sql.Rows) ([]Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	var result []Row
	for rows.Next() {
		values := make([]interface{}, len(columns))
		valuePtrs := make([]interface{}, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}
		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, err
		}
		row := make(Row, len(columns))
		for i, name := range columns {
			row[name] = values[i]
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// namedArgs converts the params mapping to driver-native named binds,
// ordered by name so statements are reproducible.
func namedArgs(params map[string]interface{}) []interface{} {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	args := make([]interface{}, 0, len(names))
	for _, name := range names {
		args = append(args, sql.Named(name, params[name]))
	}
	return args
}
