package snowflakeclient

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"testing"
)

var (
	_ driver.Connector      = (*fakeConnector)(nil)
	_ driver.Conn           = (*fakeConn)(nil)
	_ driver.QueryerContext = (*fakeConn)(nil)
	_ driver.Pinger         = (*fakeConn)(nil)
	_ driver.Rows           = (*fakeRows)(nil)
)

// fakeConnector hands out a single shared fakeConn and counts how many
// sessions were opened through it.
type fakeConnector struct {
	conn         *fakeConn
	connectErr   error
	connectCalls int
}

func (fc *fakeConnector) Connect(_ context.Context) (driver.Conn, error) {
	fc.connectCalls++
	fc.conn.events = append(fc.conn.events, "connect")
	if fc.connectErr != nil {
		return nil, fc.connectErr
	}
	return fc.conn, nil
}

func (fc *fakeConnector) Driver() driver.Driver {
	return fakeDriver{}
}

type fakeDriver struct{}

func (fakeDriver) Open(string) (driver.Conn, error) {
	return nil, errors.New("open by DSN is not supported by the fake driver")
}

// fakeConn records every statement and its binds in execution order. The
// events list interleaves session opens, pings and statements so tests can
// assert cross-call ordering.
type fakeConn struct {
	// queryFunc, when set, decides the result of each statement. A nil
	// result stands for an empty result set.
	queryFunc func(query string, args []driver.NamedValue) (*fakeRows, error)

	events     []string
	stmts      []string
	binds      [][]driver.NamedValue
	pings      int
	pingErr    error
	closeCalls int
}

func (fc *fakeConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepared statements are not supported by the fake driver")
}

func (fc *fakeConn) Begin() (driver.Tx, error) {
	return nil, errors.New("transactions are not supported by the fake driver")
}

func (fc *fakeConn) Close() error {
	fc.closeCalls++
	return nil
}

func (fc *fakeConn) Ping(_ context.Context) error {
	fc.pings++
	fc.events = append(fc.events, "ping")
	return fc.pingErr
}

func (fc *fakeConn) QueryContext(_ context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	fc.events = append(fc.events, "query "+query)
	fc.stmts = append(fc.stmts, query)
	fc.binds = append(fc.binds, args)
	var rows *fakeRows
	if fc.queryFunc != nil {
		var err error
		rows, err = fc.queryFunc(query, args)
		if err != nil {
			return nil, err
		}
	}
	if rows == nil {
		rows = &fakeRows{}
	}
	return rows, nil
}

// fakeRows serves canned values and counts closes.
type fakeRows struct {
	columns    []string
	values     [][]driver.Value
	pos        int
	nextErr    error // returned once the canned values are exhausted
	closeCalls int
}

func newFakeRows(columns []string, values ...[]driver.Value) *fakeRows {
	return &fakeRows{columns: columns, values: values}
}

func (fr *fakeRows) Columns() []string {
	return fr.columns
}

func (fr *fakeRows) Close() error {
	fr.closeCalls++
	return nil
}

func (fr *fakeRows) Next(dest []driver.Value) error {
	if fr.pos >= len(fr.values) {
		if fr.nextErr != nil {
			return fr.nextErr
		}
		return io.EOF
	}
	copy(dest, fr.values[fr.pos])
	fr.pos++
	return nil
}

// recordingLogger captures formatted log records for assertions.
type recordingLogger struct {
	records []string
}

func (rl *recordingLogger) logf(format string, args ...interface{}) {
	rl.records = append(rl.records, fmt.Sprintf(format, args...))
}

func (rl *recordingLogger) Debugf(format string, args ...interface{}) { rl.logf(format, args...) }
func (rl *recordingLogger) Infof(format string, args ...interface{})  { rl.logf(format, args...) }
func (rl *recordingLogger) Warnf(format string, args ...interface{})  { rl.logf(format, args...) }
func (rl *recordingLogger) Errorf(format string, args ...interface{}) { rl.logf(format, args...) }

func (rl *recordingLogger) all() string {
	joined := ""
	for _, record := range rl.records {
		joined += record + "\n"
	}
	return joined
}

func testConfig() Config {
	return Config{
		Account:  "testaccount",
		User:     "testuser",
		Password: "testpassword",
	}
}

// newTestClient returns a client whose sessions come from a fake driver
// connection instead of the network.
func newTestClient(t *testing.T, cfg Config, conn *fakeConn) (*Client, *fakeConnector) {
	t.Helper()
	if conn == nil {
		conn = &fakeConn{}
	}
	client, err := NewClient(cfg)
	assertNilF(t, err, "failed to create client")
	connector := &fakeConnector{conn: conn}
	client.connector = func() driver.Connector {
		return connector
	}
	return client, connector
}
