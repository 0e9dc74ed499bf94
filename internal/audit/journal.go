// Copyright (c) 2026 Keymaster Team
// ssr - SSH known_hosts manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package audit keeps an optional journal of removed known_hosts entries in a
// SQL database, so a removed line can be found (and re-added by hand) later.
package audit

import (
	"context"
	"database/sql"
	"fmt"
	"os/user"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Removal is one journal record.
type Removal struct {
	ID        int64
	RemovedAt time.Time
	Username  string
	Path      string
	Target    string
	HostField string
	Line      string
}

// RemovalModel maps the removals table.
type RemovalModel struct {
	bun.BaseModel `bun:"table:removals"`
	ID            int64     `bun:"id,pk,autoincrement"`
	RemovedAt     time.Time `bun:"removed_at,notnull"`
	Username      string    `bun:"username"`
	Path          string    `bun:"path"`
	Target        string    `bun:"target"`
	HostField     string    `bun:"host_field"`
	Line          string    `bun:"line"`
}

// Journal is a bun-backed removal journal.
type Journal struct {
	db  *bun.DB
	now func() time.Time
}

// Open connects to the journal database and creates the table if needed.
// dbType is one of "sqlite", "postgres" or "mysql".
func Open(ctx context.Context, dbType, dsn string) (*Journal, error) {
	driverName := dbType
	// The pgx stdlib registers driver name "pgx"; map "postgres" to that driver.
	if dbType == "postgres" {
		driverName = "pgx"
	}
	sqlDB, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal database: %w", err)
	}
	if dbType == "sqlite" {
		// One connection keeps ":memory:" databases visible across calls.
		sqlDB.SetMaxOpenConns(1)
	}

	bdb, err := newBunDB(sqlDB, dbType)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	if _, err := bdb.NewCreateTable().Model((*RemovalModel)(nil)).IfNotExists().Exec(ctx); err != nil {
		_ = bdb.Close()
		return nil, fmt.Errorf("failed to create journal table: %w", err)
	}
	return &Journal{db: bdb, now: time.Now}, nil
}

func newBunDB(sqlDB *sql.DB, dbType string) (*bun.DB, error) {
	switch dbType {
	case "sqlite":
		return bun.NewDB(sqlDB, sqlitedialect.New()), nil
	case "postgres":
		return bun.NewDB(sqlDB, pgdialect.New()), nil
	case "mysql":
		return bun.NewDB(sqlDB, mysqldialect.New()), nil
	default:
		return nil, fmt.Errorf("unsupported journal database type %q", dbType)
	}
}

// Record stores removals in a single transaction. RemovedAt and Username are
// filled in when empty.
func (j *Journal) Record(ctx context.Context, removals []Removal) error {
	if len(removals) == 0 {
		return nil
	}
	now := j.now().UTC()
	username := currentUsername()
	rows := make([]RemovalModel, 0, len(removals))
	for _, r := range removals {
		if r.RemovedAt.IsZero() {
			r.RemovedAt = now
		}
		if r.Username == "" {
			r.Username = username
		}
		rows = append(rows, RemovalModel{
			RemovedAt: r.RemovedAt,
			Username:  r.Username,
			Path:      r.Path,
			Target:    r.Target,
			HostField: r.HostField,
			Line:      r.Line,
		})
	}
	return j.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(&rows).Exec(ctx)
		return err
	})
}

// Recent returns up to limit records, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]Removal, error) {
	var rows []RemovalModel
	q := j.db.NewSelect().Model(&rows).OrderExpr("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, err
	}
	out := make([]Removal, 0, len(rows))
	for _, r := range rows {
		out = append(out, Removal{
			ID:        r.ID,
			RemovedAt: r.RemovedAt,
			Username:  r.Username,
			Path:      r.Path,
			Target:    r.Target,
			HostField: r.HostField,
			Line:      r.Line,
		})
	}
	return out, nil
}

// Close releases the database handle.
func (j *Journal) Close() error {
	return j.db.Close()
}

func currentUsername() string {
	curUser, err := user.Current()
	if err != nil {
		return "unknown"
	}
	if parts := strings.Split(curUser.Username, `\`); len(parts) > 1 {
		return parts[1]
	}
	return curUser.Username
}
