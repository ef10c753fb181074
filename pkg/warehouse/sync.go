package warehouse

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DefaultBatchSize is the number of rows per multi-row INSERT.
const DefaultBatchSize = 500

// Syncer pushes generated CSV files into a SQL warehouse.
type Syncer struct {
	db        *sql.DB
	driver    string
	batchSize int
}

// Open connects to the warehouse. driver must be "postgres" or "sqlite3".
func Open(driver, dsn string, batchSize int) (*Syncer, error) {
	if driver != "postgres" && driver != "sqlite3" {
		return nil, fmt.Errorf("unsupported warehouse driver: %s", driver)
	}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open warehouse connection: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to reach warehouse: %w", err)
	}
	return &Syncer{db: db, driver: driver, batchSize: batchSize}, nil
}

// Close releases the underlying connection.
func (s *Syncer) Close() error {
	return s.db.Close()
}

// EnsureSchema creates every warehouse table and records the schema version.
func (s *Syncer) EnsureSchema(ctx context.Context) error {
	const meta = `CREATE TABLE IF NOT EXISTS schema_meta (
  version INTEGER NOT NULL
)`
	if _, err := s.db.ExecContext(ctx, meta); err != nil {
		return fmt.Errorf("failed to create schema_meta: %w", err)
	}

	for _, t := range Tables {
		if _, err := s.db.ExecContext(ctx, t.CreateStatement(s.driver)); err != nil {
			return fmt.Errorf("failed to create table %s: %w", t.Name, err)
		}
	}

	var version int
	err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_meta LIMIT 1").Scan(&version)
	switch {
	case err == sql.ErrNoRows:
		if _, err := s.db.ExecContext(ctx, s.rebind("INSERT INTO schema_meta (version) VALUES (?)"), SchemaVersion); err != nil {
			return fmt.Errorf("failed to record schema version: %w", err)
		}
	case err != nil:
		return fmt.Errorf("failed to read schema version: %w", err)
	case version != SchemaVersion:
		return fmt.Errorf("warehouse schema version %d does not match expected %d", version, SchemaVersion)
	}
	return nil
}

// Clear deletes all rows from every warehouse table. The schema stays in place.
func (s *Syncer) Clear(ctx context.Context) error {
	for i := len(Tables) - 1; i >= 0; i-- {
		t := Tables[i]
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+t.Name); err != nil {
			return fmt.Errorf("failed to clear table %s: %w", t.Name, err)
		}
	}
	return nil
}

// LoadDir loads every table's CSV file from dir and returns rows loaded
// per table.
func (s *Syncer) LoadDir(ctx context.Context, dir string) (map[string]int, error) {
	counts := make(map[string]int, len(Tables))
	for _, t := range Tables {
		n, err := s.loadTable(ctx, t, filepath.Join(dir, t.File))
		if err != nil {
			return counts, err
		}
		counts[t.Name] = n
		log.Printf("✅ synced %s (%d rows)", t.Name, n)
	}
	return counts, nil
}

func (s *Syncer) loadTable(ctx context.Context, t Table, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read header of %s: %w", path, err)
	}
	colIdx, err := mapColumns(t, header)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}

	records, err := r.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", path, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for start := 0; start < len(records); start += s.batchSize {
		end := start + s.batchSize
		if end > len(records) {
			end = len(records)
		}
		if err := s.insertBatch(ctx, tx, t, colIdx, records[start:end]); err != nil {
			return 0, fmt.Errorf("failed to insert into %s: %w", t.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit %s: %w", t.Name, err)
	}
	return len(records), nil
}

// mapColumns resolves each declared column to its CSV header position.
func mapColumns(t Table, header []string) ([]int, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[strings.TrimSpace(h)] = i
	}
	idx := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		p, ok := pos[c.Name]
		if !ok {
			return nil, fmt.Errorf("missing column %s", c.Name)
		}
		idx[i] = p
	}
	return idx, nil
}

func (s *Syncer) insertBatch(ctx context.Context, tx *sql.Tx, t Table, colIdx []int, records [][]string) error {
	ncols := len(t.Columns)
	args := make([]interface{}, 0, len(records)*ncols)
	rows := make([]string, 0, len(records))

	for _, rec := range records {
		marks := make([]string, ncols)
		for i, c := range t.Columns {
			v, err := convertValue(c, rec[colIdx[i]])
			if err != nil {
				return fmt.Errorf("column %s: %w", c.Name, err)
			}
			args = append(args, v)
			marks[i] = "?"
		}
		rows = append(rows, "("+strings.Join(marks, ", ")+")")
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s",
		t.Name, strings.Join(t.ColumnNames(), ", "), strings.Join(rows, ", "))
	_, err := tx.ExecContext(ctx, s.rebind(query), args...)
	return err
}

// convertValue parses a CSV cell into a driver-friendly value. Empty cells
// of nullable columns become NULL.
func convertValue(c Column, raw string) (interface{}, error) {
	if raw == "" && c.Nullable {
		return nil, nil
	}
	switch c.Type {
	case TypeInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", raw, err)
		}
		return n, nil
	case TypeFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", raw, err)
		}
		return f, nil
	case TypeBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid boolean %q: %w", raw, err)
		}
		return b, nil
	default:
		return raw, nil
	}
}

// rebind rewrites ? placeholders into the $n form lib/pq expects.
func (s *Syncer) rebind(query string) string {
	if s.driver != "postgres" {
		return query
	}
	var b strings.Builder
	n := 0
	for _, ch := range query {
		if ch == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(ch)
	}
	return b.String()
}
