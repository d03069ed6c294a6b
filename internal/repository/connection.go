// repository/connection.go
package repository

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

const Driver = "postgres"

// ConnectDB opens and pings a connection to the relational store.
func ConnectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open(Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db.Ping: %w", err)
	}
	return db, nil
}
