package store

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLExecutor is the subset of *pgxpool.Pool the migrator needs.
type SQLExecutor interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Migrator applies the {version}_{name}.sql files found in dir, in version
// order, recording each one in the _migrations table.
type Migrator struct {
	fsys fs.FS
	dir  string
}

func NewMigrator(fsys fs.FS, dir string) *Migrator {
	return &Migrator{fsys: fsys, dir: dir}
}

type Migration struct {
	Version int
	Name    string
	SQL     string
}

type MigrationResult struct {
	Applied  []int
	Skipped  []int
	Duration time.Duration
}

var migrationFilePattern = regexp.MustCompile(`^(\d+)_(.+)\.sql$`)

// ParseMigrations reads the migration files sorted by version. Files that do
// not follow the naming pattern are ignored; duplicate versions are an error.
func (m *Migrator) ParseMigrations() ([]Migration, error) {
	entries, err := fs.ReadDir(m.fsys, m.dir)
	if err != nil {
		return nil, fmt.Errorf("migrate: read dir: %w", err)
	}

	seen := make(map[int]string)
	var out []Migration
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		matches := migrationFilePattern.FindStringSubmatch(e.Name())
		if matches == nil {
			continue
		}
		version, _ := strconv.Atoi(matches[1])
		if prev, dup := seen[version]; dup {
			return nil, fmt.Errorf("migrate: version %d used by %s and %s", version, prev, e.Name())
		}
		seen[version] = e.Name()

		content, err := fs.ReadFile(m.fsys, path.Join(m.dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("migrate: reading %s: %w", e.Name(), err)
		}
		out = append(out, Migration{Version: version, Name: matches[2], SQL: string(content)})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	return out, nil
}

// Run applies pending migrations. Each migration runs in its own
// transaction together with its bookkeeping row.
func (m *Migrator) Run(ctx context.Context, exec SQLExecutor) (*MigrationResult, error) {
	start := time.Now()
	result := &MigrationResult{}

	if _, err := exec.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS _migrations (
			version    INT PRIMARY KEY,
			name       TEXT NOT NULL,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`); err != nil {
		return result, fmt.Errorf("migrate: creating migrations table: %w", err)
	}

	applied, err := appliedVersions(ctx, exec)
	if err != nil {
		return result, err
	}

	migrations, err := m.ParseMigrations()
	if err != nil {
		return result, err
	}

	for _, mig := range migrations {
		if applied[mig.Version] {
			result.Skipped = append(result.Skipped, mig.Version)
			continue
		}
		err := pgx.BeginFunc(ctx, exec, func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, mig.SQL); err != nil {
				return err
			}
			_, err := tx.Exec(ctx, "INSERT INTO _migrations (version, name) VALUES ($1, $2)", mig.Version, mig.Name)
			return err
		})
		if err != nil {
			result.Duration = time.Since(start)
			return result, fmt.Errorf("migrate: applying %d_%s: %w", mig.Version, mig.Name, err)
		}
		result.Applied = append(result.Applied, mig.Version)
	}

	result.Duration = time.Since(start)
	return result, nil
}

func appliedVersions(ctx context.Context, exec SQLExecutor) (map[int]bool, error) {
	rows, err := exec.Query(ctx, "SELECT version FROM _migrations")
	if err != nil {
		return nil, fmt.Errorf("migrate: listing applied: %w", err)
	}
	versions, err := pgx.CollectRows(rows, pgx.RowTo[int32])
	if err != nil {
		return nil, fmt.Errorf("migrate: listing applied: %w", err)
	}
	applied := make(map[int]bool, len(versions))
	for _, v := range versions {
		applied[int(v)] = true
	}
	return applied, nil
}
