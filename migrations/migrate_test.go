// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The CipherShare Authors

package migrations

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // goose drives the connection itself; unmatched calls fail it

	err = Migrate(db)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrationFiles_OrderedAndComplete(t *testing.T) {
	entries, err := embedMigrations.ReadDir(".")
	if err != nil {
		t.Fatalf("failed to read embedded migrations: %v", err)
	}

	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".sql") {
			names = append(names, e.Name())
		}
	}

	want := []string{
		"00001_create_users.sql",
		"00002_create_files.sql",
		"00003_create_shared_links.sql",
	}

	if len(names) != len(want) {
		t.Fatalf("expected %d migration files, got %d: %v", len(want), len(names), names)
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("migration %d: expected %s, got %s", i, name, names[i])
		}
	}
}

func TestMigrationFiles_ReferencedTablesCreatedFirst(t *testing.T) {
	users, err := embedMigrations.ReadFile("00001_create_users.sql")
	if err != nil {
		t.Fatalf("read users migration: %v", err)
	}
	files, err := embedMigrations.ReadFile("00002_create_files.sql")
	if err != nil {
		t.Fatalf("read files migration: %v", err)
	}
	links, err := embedMigrations.ReadFile("00003_create_shared_links.sql")
	if err != nil {
		t.Fatalf("read shared_links migration: %v", err)
	}

	if !strings.Contains(string(users), `CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`) {
		t.Error("users migration must guard the UUID generation capability")
	}
	if !strings.Contains(string(files), "REFERENCES users(id) ON DELETE CASCADE") {
		t.Error("files migration must cascade from users")
	}
	if !strings.Contains(string(links), "REFERENCES files(id) ON DELETE CASCADE") {
		t.Error("shared_links migration must cascade from files")
	}
	if !strings.Contains(string(links), "REFERENCES users(id) ON DELETE CASCADE") {
		t.Error("shared_links migration must cascade from users")
	}
}
