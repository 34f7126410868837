package monitordb

import (
	"fmt"
	"time"
)

// Config holds configuration options for the Client
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string

	MaxConns       int32
	ConnectTimeout time.Duration
	PingTimeout    time.Duration

	verbose bool
}

const (
	defaultMaxConns       = 10
	defaultConnectTimeout = 5 * time.Second
	defaultPingTimeout    = 3 * time.Second
)

// NewConfig builds a Config from the standard DB_* connection parameters.
func NewConfig(host, port, user, password, dbName string, verbose bool) Config {
	config := Config{
		Host:           host,
		Port:           port,
		User:           user,
		Password:       password,
		DBName:         dbName,
		SSLMode:        "prefer",
		MaxConns:       defaultMaxConns,
		ConnectTimeout: defaultConnectTimeout,
		PingTimeout:    defaultPingTimeout,
		verbose:        verbose,
	}

	return config
}

// DSN renders the config as a key/value connection string understood by pgx.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
