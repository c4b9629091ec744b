package main

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/uptrace/bun/dialect"
	_ "modernc.org/sqlite"

	"github.com/padraicbc/gymapi/config"
	bundb "github.com/padraicbc/gymapi/db"
	"github.com/padraicbc/gymapi/repo"
)

// legacySource builds a database shaped like the legacy MySQL schema.
func legacySource(t *testing.T) *sql.DB {
	t.Helper()
	src, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "legacy.db"))
	if err != nil {
		t.Fatalf("open legacy db: %v", err)
	}
	t.Cleanup(func() { src.Close() })

	stmts := []string{
		`CREATE TABLE trainers (id INTEGER PRIMARY KEY, name VARCHAR(255) NOT NULL)`,
		`CREATE TABLE members (id INTEGER PRIMARY KEY, name VARCHAR(255) NOT NULL, age INTEGER NOT NULL, trainer_id INTEGER NOT NULL)`,
		`CREATE TABLE Workout_Sessions (id INTEGER PRIMARY KEY, date DATE NOT NULL, duration_minutes INTEGER NOT NULL,
			calories_burned INTEGER NOT NULL, member_id INTEGER NOT NULL, trainer_id INTEGER NOT NULL)`,
		`INSERT INTO trainers (id, name) VALUES (1, 'Sam'), (4, 'Jo')`,
		`INSERT INTO members (id, name, age, trainer_id) VALUES (3, 'Alice', 30, 1), (8, 'Bob', 41, 4)`,
		`INSERT INTO Workout_Sessions VALUES
			(10, '2024-01-15', 45, 400, 3, 1),
			(11, '2024-01-16', 30, 250, 3, 1),
			(12, '2024-01-17', 60, 600, 99, 4)`,
	}
	for _, s := range stmts {
		if _, err := src.Exec(s); err != nil {
			t.Fatalf("seed legacy db: %v\n%s", err, s)
		}
	}
	return src
}

func TestCopyAll(t *testing.T) {
	ctx := context.Background()
	src := legacySource(t)

	cfg := &config.Config{DBDriver: config.DriverSQLite, DBName: filepath.Join(t.TempDir(), "gym.db")}
	dst, err := bundb.Open(ctx, cfg)
	if err != nil {
		t.Fatalf("open target: %v", err)
	}
	defer dst.Close()
	if err := bundb.CreateTables(ctx, dst); err != nil {
		t.Fatalf("CreateTables: %v", err)
	}

	// Second run must not duplicate rows.
	for i := 0; i < 2; i++ {
		if err := copyAll(ctx, src, dst); err != nil {
			t.Fatalf("copyAll run %d: %v", i+1, err)
		}
	}

	trainers, err := repo.ListTrainers(ctx, dst)
	if err != nil {
		t.Fatalf("ListTrainers: %v", err)
	}
	if len(trainers) != 2 || trainers[1].ID != 4 || trainers[1].Name != "Jo" {
		t.Errorf("trainers = %+v", trainers)
	}

	alice, err := repo.GetMember(ctx, dst, 3)
	if err != nil {
		t.Fatalf("GetMember(3): %v", err)
	}
	if alice.Name != "Alice" || alice.Age != 30 || alice.TrainerID != 1 {
		t.Errorf("alice = %+v", alice)
	}

	sessions, err := repo.ListWorkoutSessions(ctx, dst)
	if err != nil {
		t.Fatalf("ListWorkoutSessions: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(sessions))
	}

	forAlice, err := repo.ListWorkoutSessionsForMember(ctx, dst, 3)
	if err != nil {
		t.Fatalf("ListWorkoutSessionsForMember: %v", err)
	}
	if len(forAlice) != 2 {
		t.Errorf("expected 2 sessions for alice, got %d", len(forAlice))
	}
	for _, s := range forAlice {
		if s.ID == 10 && s.Date.String() != "2024-01-15" {
			t.Errorf("session 10 date = %s, want 2024-01-15", s.Date)
		}
	}
}

func TestFKToggle(t *testing.T) {
	tests := []struct {
		name dialect.Name
		off  string
	}{
		{dialect.MySQL, "SET FOREIGN_KEY_CHECKS = 0"},
		{dialect.SQLite, "PRAGMA foreign_keys = OFF"},
		{dialect.PG, "SET session_replication_role = 'replica'"},
	}
	for _, tt := range tests {
		off, on := fkToggle(tt.name)
		if off != tt.off {
			t.Errorf("fkToggle(%s) off = %q, want %q", tt.name, off, tt.off)
		}
		if on == "" {
			t.Errorf("fkToggle(%s) on is empty", tt.name)
		}
	}
}
