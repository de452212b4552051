// Copyright (C) 2023 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.
package sink

import (
	"context"
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ClusterCockpit/terms-of-interest/internal/pipeline"
)

//go:embed migrations/sqlite3
var migrationFiles embed.FS

const namedResultInsert = `INSERT INTO results (term, message_id) VALUES (:term, :message_id);`

// SQL is the secondary sink from spec §4.10/§6: a write-only relational
// table (id autoinc, term, message_id, created_on = today). Disabled by
// default: when db_uri is empty the CLI writes results to the Stdout sink
// instead.
type SQL struct {
	DB *sqlx.DB
}

// OpenSQLite opens (creating if necessary) a sqlite3 database at path and
// migrates the results table into existence, mirroring
// internal/repository/migration.go's checkDBVersion/MigrateDB split in
// the teacher, but collapsed to the one table this sink needs.
func OpenSQLite(path string) (*SQL, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sink: open sqlite3 %q: %w", path, err)
	}

	driver, err := sqlite3.WithInstance(db.DB, &sqlite3.Config{})
	if err != nil {
		return nil, fmt.Errorf("sink: migration driver: %w", err)
	}
	source, err := iofs.New(migrationFiles, "migrations/sqlite3")
	if err != nil {
		return nil, fmt.Errorf("sink: migration source: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return nil, fmt.Errorf("sink: migrate.NewWithInstance: %w", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return nil, fmt.Errorf("sink: migrate up: %w", err)
	}

	return &SQL{DB: db}, nil
}

func (s *SQL) Write(ctx context.Context, r pipeline.MatchResult) error {
	_, err := s.DB.NamedExecContext(ctx, namedResultInsert, r)
	return err
}

func (s *SQL) Close() error {
	return s.DB.Close()
}
