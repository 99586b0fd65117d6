package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/ryanrhee/snowboard-db-sub000/internal/logging"
)

func tableExists(db *sql.DB, name string) (bool, error) {
	var found string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, name).Scan(&found)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// copyTableRows copies every row of table from src to dst using
// INSERT OR REPLACE, assuming both sides share the same column set
// (true for every legacy cache table, whose schema is unchanged by
// the primary/cache DB split).
func copyTableRows(src, dst *sql.DB, table string) error {
	rows, err := src.Query(fmt.Sprintf("SELECT * FROM %s", table))
	if err != nil {
		return fmt.Errorf("read %s: %w", table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("columns of %s: %w", table, err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(columns)), ",")
	insertSQL := fmt.Sprintf("INSERT OR REPLACE INTO %s (%s) VALUES (%s)", table, strings.Join(columns, ","), placeholders)

	tx, err := dst.Begin()
	if err != nil {
		return fmt.Errorf("begin copy into %s: %w", table, err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		return fmt.Errorf("prepare copy into %s: %w", table, err)
	}
	defer stmt.Close()

	values := make([]interface{}, len(columns))
	ptrs := make([]interface{}, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}

	var rowCount int
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return fmt.Errorf("scan row from %s: %w", table, err)
		}
		if _, err := stmt.Exec(values...); err != nil {
			return fmt.Errorf("copy row into %s: %w", table, err)
		}
		rowCount++
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	logging.StoreDebug("copied %d rows from legacy table %s", rowCount, table)
	return nil
}
