// Copyright 2026 The Jusogo Authors
// SPDX-License-Identifier: Apache-2.0

package dataset

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2" // register duckdb driver
)

// Load reads a CSV or Parquet file into a Table through an in-memory
// DuckDB. Every cell round-trips as text; the file format is chosen by
// extension.
func Load(path string) (*Table, error) {
	relation, err := readRelation(path)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query("SELECT * FROM " + relation)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading columns: %w", err)
	}

	t := New(columns)

	values := make([]any, len(columns))
	ptrs := make([]any, len(columns))

	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		row := make([]string, len(columns))
		for i, v := range values {
			row[i] = cellString(v)
		}

		if err := t.AppendRow(row); err != nil {
			return nil, err
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}

	return t, nil
}

// Save writes a Table to a CSV or Parquet file through an in-memory
// DuckDB, preserving row and column order.
func Save(t *Table, path string) error {
	format, err := copyFormat(path)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", "")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	columns := t.Columns()

	quoted := make([]string, len(columns))
	for i, name := range columns {
		quoted[i] = quoteIdent(name) + " VARCHAR"
	}

	if _, err := db.Exec("CREATE TABLE dataset (" + strings.Join(quoted, ", ") + ")"); err != nil {
		return fmt.Errorf("creating export table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")

	stmt, err := tx.Prepare("INSERT INTO dataset VALUES (" + placeholders + ")")
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}

	for i := range t.Len() {
		row := t.Row(i)

		args := make([]any, len(row))
		for j, v := range row {
			args[j] = v
		}

		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("inserting row %d: %w", i, err)
		}
	}

	if err := stmt.Close(); err != nil {
		return fmt.Errorf("closing insert: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing rows: %w", err)
	}

	copySQL := fmt.Sprintf("COPY dataset TO %s (%s)", stringLiteral(path), format)
	if _, err := db.Exec(copySQL); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

func readRelation(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return fmt.Sprintf("read_csv_auto(%s, all_varchar=true)", stringLiteral(path)), nil
	case ".parquet":
		return fmt.Sprintf("read_parquet(%s)", stringLiteral(path)), nil
	default:
		return "", fmt.Errorf("unsupported dataset format %q: expected .csv or .parquet", filepath.Ext(path))
	}
}

func copyFormat(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return "FORMAT CSV, HEADER", nil
	case ".parquet":
		return "FORMAT PARQUET", nil
	default:
		return "", fmt.Errorf("unsupported dataset format %q: expected .csv or .parquet", filepath.Ext(path))
	}
}

func cellString(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case []byte:
		return string(value)
	default:
		return fmt.Sprint(value)
	}
}

func stringLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
