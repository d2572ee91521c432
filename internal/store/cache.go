// Package store provides a SQLite-backed cache of parsed budget datasets.
// Everything in it is derived from the input CSV: clearing the database
// only costs a re-parse on the next load.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"budgetlens/internal/model"
	"budgetlens/internal/source"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Cache provides SQLite-backed dataset caching.
type Cache struct {
	db *sql.DB
}

// Open opens or creates the cache database at the given path.
func Open(dbPath string) (*Cache, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Lookup returns the cached dataset for sourcePath when its tracked
// mtime and size still match. ok is false on a miss or a stale entry.
func (c *Cache) Lookup(sourcePath string, mtimeNs, sizeBytes int64) (*source.Dataset, bool, error) {
	var trackedMtime, trackedSize int64
	err := c.db.QueryRow(
		"SELECT mtime_ns, size_bytes FROM datasets WHERE source_path = ?",
		sourcePath,
	).Scan(&trackedMtime, &trackedSize)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if trackedMtime != mtimeNs || trackedSize != sizeBytes {
		return nil, false, nil
	}

	years, err := c.loadYears(sourcePath)
	if err != nil {
		return nil, false, err
	}
	records, err := c.loadRecords(sourcePath)
	if err != nil {
		return nil, false, err
	}
	if len(years) == 0 || len(records) == 0 {
		return nil, false, nil
	}

	return &source.Dataset{
		Wide:    rebuildWide(years, records),
		Records: records,
		Years:   years,
	}, true, nil
}

func (c *Cache) loadYears(sourcePath string) ([]model.YearColumn, error) {
	rows, err := c.db.Query(
		"SELECT label, year FROM dataset_years WHERE source_path = ? ORDER BY position",
		sourcePath,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var years []model.YearColumn
	for rows.Next() {
		var y model.YearColumn
		if err := rows.Scan(&y.Label, &y.Year); err != nil {
			return nil, err
		}
		years = append(years, y)
	}
	return years, rows.Err()
}

func (c *Cache) loadRecords(sourcePath string) ([]model.Record, error) {
	rows, err := c.db.Query(
		"SELECT department, year, budget FROM records WHERE source_path = ? ORDER BY position",
		sourcePath,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var records []model.Record
	for rows.Next() {
		var r model.Record
		if err := rows.Scan(&r.Department, &r.Year, &r.Budget); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// rebuildWide reconstructs the wide table from cached records. Cells the
// reshape dropped simply stay invalid, same as after a fresh parse.
func rebuildWide(years []model.YearColumn, records []model.Record) *model.WideTable {
	yearIdx := make(map[int]int, len(years))
	for i, y := range years {
		yearIdx[y.Year] = i
	}

	wide := &model.WideTable{Years: years}
	rowIdx := make(map[string]int)
	for _, r := range records {
		i, ok := rowIdx[r.Department]
		if !ok {
			i = len(wide.Rows)
			rowIdx[r.Department] = i
			wide.Rows = append(wide.Rows, model.WideRow{
				Department: r.Department,
				Cells:      make([]model.Cell, len(years)),
			})
		}
		if ci, ok := yearIdx[r.Year]; ok {
			wide.Rows[i].Cells[ci] = model.Cell{Value: r.Budget, Valid: true}
		}
	}
	return wide
}

// Save stores a parsed dataset and its staleness-tracking metadata,
// replacing any previous entry for the same source path.
func (c *Cache) Save(sourcePath, contentHash string, mtimeNs, sizeBytes int64, ds *source.Dataset) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = tx.Exec(`INSERT OR REPLACE INTO datasets
		(source_path, content_hash, mtime_ns, size_bytes, parsed_at)
		VALUES (?, ?, ?, ?, ?)`,
		sourcePath, contentHash, mtimeNs, sizeBytes, now,
	)
	if err != nil {
		return err
	}

	// INSERT OR REPLACE on datasets does not cascade, so clear children.
	if _, err := tx.Exec("DELETE FROM dataset_years WHERE source_path = ?", sourcePath); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM records WHERE source_path = ?", sourcePath); err != nil {
		return err
	}

	for i, y := range ds.Years {
		_, err = tx.Exec(`INSERT INTO dataset_years (source_path, position, label, year)
			VALUES (?, ?, ?, ?)`, sourcePath, i, y.Label, y.Year)
		if err != nil {
			return err
		}
	}
	for i, r := range ds.Records {
		_, err = tx.Exec(`INSERT INTO records (source_path, position, department, year, budget)
			VALUES (?, ?, ?, ?, ?)`, sourcePath, i, r.Department, r.Year, r.Budget)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Stats summarizes cache contents for the cache status command.
type Stats struct {
	Datasets int
	Records  int
}

// Stats returns dataset and record counts.
func (c *Cache) Stats() (Stats, error) {
	var s Stats
	if err := c.db.QueryRow("SELECT COUNT(*) FROM datasets").Scan(&s.Datasets); err != nil {
		return s, err
	}
	if err := c.db.QueryRow("SELECT COUNT(*) FROM records").Scan(&s.Records); err != nil {
		return s, err
	}
	return s, nil
}

// Clear removes all cached datasets.
func (c *Cache) Clear() error {
	_, err := c.db.Exec("DELETE FROM datasets")
	return err
}
