// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cdl

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"
)

// LoadCatalog reads the cached catalog table from the SQLite snapshot and
// returns an in-memory Catalog. Item links are built from itemTemplate and
// the item identifier.
func LoadCatalog(ctx context.Context, dbPath, itemTemplate string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", dbPath+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT id, title FROM cdl_items ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying cdl_items: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.Title); err != nil {
			return nil, fmt.Errorf("scanning cdl_items row: %w", err)
		}
		item.URL = fmt.Sprintf(itemTemplate, item.ID)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading cdl_items rows: %w", err)
	}

	return NewCatalog(items), nil
}

// SaveItems writes an item snapshot into the SQLite cache, replacing any
// previous snapshot. Row order is preserved; Search depends on it.
func SaveItems(ctx context.Context, dbPath string, items []Item) error {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("opening catalog database: %w", err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS cdl_items (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL
		)`,
		`DELETE FROM cdl_items`,
	}
	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("preparing cdl_items table: %w", err)
		}
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO cdl_items (id, title) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, item := range items {
		if _, err := stmt.ExecContext(ctx, item.ID, item.Title); err != nil {
			return fmt.Errorf("inserting item %s: %w", item.ID, err)
		}
	}

	return tx.Commit()
}

// ReadItemsDump loads a YAML catalog dump: a list of {id, title} entries
// exported from the digital-library platform.
func ReadItemsDump(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog dump: %w", err)
	}
	var items []Item
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsing catalog dump: %w", err)
	}
	return items, nil
}
