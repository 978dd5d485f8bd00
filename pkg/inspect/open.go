package inspect

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	// registers the "sqlite" database/sql driver
	_ "modernc.org/sqlite"
)

const defaultMySQLPort = "3306"

// DialectFor returns the dialect served by a URL scheme. A "+driver" suffix
// is ignored, so "postgresql+psycopg2" is PostgreSQL.
func DialectFor(scheme string) (Dialect, error) {
	base, _, _ := strings.Cut(strings.ToLower(scheme), "+")

	switch base {
	case "postgres", "postgresql":
		return Postgres, nil
	case "mysql", "mariadb":
		return MySQL, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	case "clickhouse", "tcp":
		return ClickHouse, nil
	default:
		return "", errors.Errorf("unsupported database scheme %q", scheme)
	}
}

// Open connects to the database at rawURL and checks that it answers. Any
// failure, including an unparseable or unsupported URL, is returned as a
// *ConnectivityError.
func Open(ctx context.Context, rawURL string, opts Options) (Catalog, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		// url.Error repeats the raw URL, password included
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, &ConnectivityError{Target: "database", Err: errors.Wrap(err, "invalid database url")}
	}

	dialect, err := DialectFor(u.Scheme)
	if err != nil {
		return nil, &ConnectivityError{Target: u.Redacted(), Err: err}
	}

	slog.Debug("Connecting to database", "dialect", dialect, "url", u.Redacted())

	var catalog Catalog
	switch dialect {
	case Postgres:
		catalog, err = openPostgres(ctx, u, opts)
	case MySQL:
		catalog, err = openMySQL(ctx, u, opts)
	case SQLite:
		catalog, err = openSQLite(ctx, u)
	case ClickHouse:
		catalog, err = openClickHouse(ctx, u, opts)
	}

	if err != nil {
		return nil, &ConnectivityError{Dialect: dialect, Target: u.Redacted(), Err: err}
	}

	return catalog, nil
}

func openPostgres(ctx context.Context, u *url.URL, opts Options) (*sqlCatalog, error) {
	dsn := *u
	dsn.Scheme = "postgres"

	if opts.TLSEnabled() {
		q := dsn.Query()
		if q.Get("sslmode") == "" {
			q.Set("sslmode", "verify-full")
		}
		setIfPresent(q, "sslrootcert", opts.CAFile)
		setIfPresent(q, "sslcert", opts.CertFile)
		setIfPresent(q, "sslkey", opts.KeyFile)
		dsn.RawQuery = q.Encode()
	}

	connector, err := pq.NewConnector(dsn.String())
	if err != nil {
		return nil, errors.Wrap(err, "invalid connection settings")
	}

	// Postgres connects to the database named after the user when none is given
	database := strings.TrimPrefix(u.Path, "/")
	if database == "" {
		database = u.User.Username()
	}

	return newSQLCatalog(ctx, sql.OpenDB(connector), Postgres, database, postgresQueries)
}

func openMySQL(ctx context.Context, u *url.URL, opts Options) (*sqlCatalog, error) {
	cfg, err := mysql.ParseDSN(mysqlDSN(u))
	if err != nil {
		return nil, errors.Wrap(err, "invalid connection settings")
	}

	if opts.TLSEnabled() {
		tlsConfig, err := TLSConfig(opts)
		if err != nil {
			return nil, err
		}
		tlsConfig.ServerName = u.Hostname()
		cfg.TLS = tlsConfig
	}

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "invalid connection settings")
	}

	return newSQLCatalog(ctx, sql.OpenDB(connector), MySQL, cfg.DBName, mysqlQueries)
}

// mysqlDSN converts a mysql:// URL into the driver's DSN format,
// user:password@tcp(host:port)/database?params.
func mysqlDSN(u *url.URL) string {
	var b strings.Builder

	if u.User != nil {
		b.WriteString(u.User.Username())
		if password, ok := u.User.Password(); ok {
			b.WriteString(":" + password)
		}
		b.WriteString("@")
	}

	host, port := u.Hostname(), u.Port()
	if host == "" {
		host = "127.0.0.1"
	}
	if port == "" {
		port = defaultMySQLPort
	}

	fmt.Fprintf(&b, "tcp(%s)/%s", net.JoinHostPort(host, port), strings.TrimPrefix(u.Path, "/"))

	if u.RawQuery != "" {
		b.WriteString("?" + u.RawQuery)
	}

	return b.String()
}

// openSQLite opens the file named by everything after "sqlite://", so both
// sqlite://data/app.db and sqlite:///var/lib/app.db work.
func openSQLite(ctx context.Context, u *url.URL) (*sqlCatalog, error) {
	path := u.Host + u.Path
	if path == "" {
		return nil, errors.New("missing database file path")
	}

	// The driver creates missing files; inspecting one would silently succeed.
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, "failed to access database file: %s", path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database file: %s", path)
	}

	database := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return newSQLCatalog(ctx, db, SQLite, database, sqliteQueries)
}

func openClickHouse(ctx context.Context, u *url.URL, opts Options) (*clickHouseCatalog, error) {
	dsn := *u
	dsn.Scheme = "clickhouse"

	options, err := clickhouse.ParseDSN(dsn.String())
	if err != nil {
		return nil, errors.Wrap(err, "invalid connection settings")
	}

	if opts.TLSEnabled() {
		tlsConfig, err := TLSConfig(opts)
		if err != nil {
			return nil, err
		}
		options.TLS = tlsConfig
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open connection")
	}

	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}

	database := options.Auth.Database
	if database == "" {
		database = "default"
	}

	return &clickHouseCatalog{conn: conn, database: database}, nil
}

func setIfPresent(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
