package snowflakeclient

import (
	"context"
	"database/sql"
	"database/sql/driver"

	sf "github.com/snowflakedb/gosnowflake"
)

// Client owns at most one Snowflake session and runs all work over it, so
// session state such as the active database and schema applies to every
// subsequent query. A Client is not safe for concurrent use.
type Client struct {
	cfg    Config
	logger Logger

	// connector opens driver sessions; replaced in tests.
	connector func() driver.Connector

	db *sql.DB
}

// NewClient validates cfg and returns a disconnected Client. With lazy
// connect enabled (the default) no explicit Connect call is needed; the
// first ExecuteQuery establishes the session.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	c := &Client{cfg: cfg}
	inner := cfg.Logger
	if inner == nil {
		inner = NewDefaultLogger()
	}
	c.logger = wrapWithSecretMasking(inner)
	c.connector = c.driverConnector
	return c, nil
}

func (c *Client) driverConnector() driver.Connector {
	return sf.NewConnector(sf.SnowflakeDriver{}, *c.cfg.toDriverConfig())
}

// Connect establishes the session and verifies it with a ping. Connecting
// an already connected client replaces the current handle without closing
// it; call Close first to release the previous session.
func (c *Client) Connect(ctx context.Context) error {
	db := sql.OpenDB(c.connector())
	// Pin the pool to a single session so USE statements stick for every
	// subsequent query.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		c.logger.Errorf("failed to connect to Snowflake. account: %v, user: %v, err: %v", c.cfg.Account, c.cfg.User, err)
		return &Error{Number: ErrCodeConnectionFailed, Message: errMsgConnectionFailed, Err: err}
	}
	c.db = db
	c.logger.Infof("connected to Snowflake. account: %v, user: %v", c.cfg.Account, c.cfg.User)
	return nil
}

// Close releases the session. Closing a disconnected client is a no-op.
func (c *Client) Close() error {
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	if err != nil {
		c.logger.Warnf("failed to close connection. err: %v", err)
		return err
	}
	c.logger.Infof("disconnected from Snowflake. account: %v", c.cfg.Account)
	return nil
}

// IsConnected reports whether the client currently holds a session handle.
func (c *Client) IsConnected() bool {
	return c.db != nil
}

// WithSession connects, runs fn and releases the session afterwards,
// whether fn returned an error or panicked. An error from fn wins over any
// error from the release.
func (c *Client) WithSession(ctx context.Context, fn func(*Client) error) (err error) {
	if err = c.Connect(ctx); err != nil {
		return err
	}
	defer func() {
		closeErr := c.Close()
		if err == nil {
			err = closeErr
		}
	}()
	return fn(c)
}
